package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 只提供教育经历时，有且仅有 instituteName 和 degree 非空、
// 长度合规、duration 格式正确，错误集合才为空。
func TestValidateEducation(t *testing.T) {
	testcases := []struct {
		name     string
		entry    EducationEntry
		wantKeys []string
	}{
		{
			name: "完整合法",
			entry: EducationEntry{
				InstituteName: "MIT",
				Degree:        "BSc Computer Science",
				Percentage:    "85%",
				Duration:      "2019-2023",
			},
		},
		{
			name: "只有必填项",
			entry: EducationEntry{
				InstituteName: "MIT",
				Degree:        "BSc",
			},
		},
		{
			name: "缺学校",
			entry: EducationEntry{
				Degree: "BSc",
			},
			wantKeys: []string{"education[0].instituteName"},
		},
		{
			name: "缺学位",
			entry: EducationEntry{
				InstituteName: "MIT",
			},
			wantKeys: []string{"education[0].degree"},
		},
		{
			name: "月份写法的时间段",
			entry: EducationEntry{
				InstituteName: "MIT",
				Degree:        "BSc",
				Duration:      "June 2019 - May 2023",
			},
		},
		{
			name: "进行中的时间段",
			entry: EducationEntry{
				InstituteName: "MIT",
				Degree:        "BSc",
				Duration:      "Sep. 2023 - Present",
			},
		},
		{
			name: "非法时间段",
			entry: EducationEntry{
				InstituteName: "MIT",
				Degree:        "BSc",
				Duration:      "since forever",
			},
			wantKeys: []string{"education[0].duration"},
		},
		{
			name: "学校名超长",
			entry: EducationEntry{
				InstituteName: strings.Repeat("a", 201),
				Degree:        "BSc",
			},
			wantKeys: []string{"education[0].instituteName"},
		},
		{
			name: "非法成绩",
			entry: EducationEntry{
				InstituteName: "MIT",
				Degree:        "BSc",
				Percentage:    "top of class",
			},
			wantKeys: []string{"education[0].percentage"},
		},
		{
			name:  "整条为空不报错",
			entry: EducationEntry{},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			errs := make(map[string]string)
			ValidateEducation(errs, []EducationEntry{tc.entry})
			if len(tc.wantKeys) == 0 {
				assert.Empty(t, errs)
				return
			}
			assert.Len(t, errs, len(tc.wantKeys))
			for _, key := range tc.wantKeys {
				assert.Contains(t, errs, key)
			}
		})
	}
}

func TestValidatePersonal(t *testing.T) {
	testcases := []struct {
		name     string
		resume   Resume
		wantKeys []string
	}{
		{
			name: "合法",
			resume: Resume{
				FirstName: "Ada",
				LastName:  "Lovelace",
				Email:     "ada@example.com",
				PhoneNo:   "+8613812345678",
				Linkedin:  "https://linkedin.com/in/ada",
				Github:    "github.com/ada",
			},
		},
		{
			name:     "必填缺失",
			resume:   Resume{},
			wantKeys: []string{"firstName", "lastName"},
		},
		{
			name: "邮箱格式错误",
			resume: Resume{
				FirstName: "Ada",
				LastName:  "Lovelace",
				Email:     "not-an-email",
			},
			wantKeys: []string{"email"},
		},
		{
			name: "电话位数不足",
			resume: Resume{
				FirstName: "Ada",
				LastName:  "Lovelace",
				PhoneNo:   "12345",
			},
			wantKeys: []string{"phoneNo"},
		},
		{
			name: "名字带注入特征",
			resume: Resume{
				FirstName: `{"$gt": ""}`,
				LastName:  "Lovelace",
			},
			wantKeys: []string{"firstName"},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			errs := make(map[string]string)
			tc.resume.ValidatePersonal(errs)
			if len(tc.wantKeys) == 0 {
				assert.Empty(t, errs)
				return
			}
			assert.Len(t, errs, len(tc.wantKeys))
			for _, key := range tc.wantKeys {
				assert.Contains(t, errs, key)
			}
		})
	}
}

func TestValidateSkills(t *testing.T) {
	errs := make(map[string]string)
	ValidateSkills(errs, []string{"Go", strings.Repeat("x", MaxSkillLen+1)})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "skills[1]")
}

// Validate 是纯函数，跑两次结果一致且不改草稿
func TestValidatePure(t *testing.T) {
	r := Resume{FirstName: "Ada"}
	first := r.Validate()
	second := r.Validate()
	assert.Equal(t, first, second)
	assert.Equal(t, "Ada", r.FirstName)
}
