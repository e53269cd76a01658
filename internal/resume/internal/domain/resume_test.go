package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetField(t *testing.T) {
	testcases := []struct {
		name    string
		key     string
		value   string
		check   func(t *testing.T, r Resume)
		wantErr error
	}{
		{
			name:  "firstName",
			key:   "firstName",
			value: "Ada",
			check: func(t *testing.T, r Resume) {
				assert.Equal(t, "Ada", r.FirstName)
			},
		},
		{
			name:  "email",
			key:   "email",
			value: "ada@example.com",
			check: func(t *testing.T, r Resume) {
				assert.Equal(t, "ada@example.com", r.Email)
			},
		},
		{
			name:    "未知字段",
			key:     "salary",
			value:   "1",
			wantErr: ErrUnknownField,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Resume{}.SetField(tc.key, tc.value)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, res)
		})
	}
}

// 修改操作都是值语义，原草稿不能被改动
func TestOperationsDoNotMutateOriginal(t *testing.T) {
	original := Resume{
		Education: []EducationEntry{{InstituteName: "MIT", Degree: "BSc"}},
		Skills:    []string{"Go"},
	}

	updated, err := original.UpdateEducation(0, EducationEntry{InstituteName: "CMU"})
	require.NoError(t, err)
	assert.Equal(t, "MIT", original.Education[0].InstituteName)
	assert.Equal(t, "CMU", updated.Education[0].InstituteName)

	appended := original.AppendEducation(EducationEntry{InstituteName: "Stanford"})
	assert.Len(t, original.Education, 1)
	assert.Len(t, appended.Education, 2)

	removed, err := original.RemoveEntry(SectionEducation, 0)
	require.NoError(t, err)
	assert.Len(t, original.Education, 1)
	assert.Len(t, removed.Education, 0)
}

func TestAppendThenRemoveTailRoundTrip(t *testing.T) {
	r := Resume{
		Projects: []ProjectEntry{
			{ProjectName: "p0", Description: "d0"},
			{ProjectName: "p1", Description: "d1"},
		},
	}
	appended := r.AppendProject(ProjectEntry{ProjectName: "p2"})
	removed, err := appended.RemoveEntry(SectionProjects, len(appended.Projects)-1)
	require.NoError(t, err)
	// 追加再删掉末尾，回到原来的列表
	assert.Equal(t, r.Projects, removed.Projects)
}

func TestRemoveEntryShiftsIndices(t *testing.T) {
	r := Resume{}
	for i := 0; i < 3; i++ {
		r = r.AppendProject(ProjectEntry{ProjectName: fmt.Sprintf("p%d", i)})
	}
	r, err := r.RemoveEntry(SectionProjects, 1)
	require.NoError(t, err)
	require.Len(t, r.Projects, 2)
	assert.Equal(t, "p0", r.Projects[0].ProjectName)
	assert.Equal(t, "p2", r.Projects[1].ProjectName)
}

func TestIndexOutOfRange(t *testing.T) {
	r := Resume{
		WorkExperience: []WorkEntry{{CompanyName: "Acme"}},
	}
	_, err := r.UpdateWorkExperience(1, WorkEntry{})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = r.UpdateWorkExperience(-1, WorkEntry{})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = r.RemoveEntry(SectionWorkExperience, 1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = r.RemoveEntry(Section(99), 0)
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestSetSkillsCap(t *testing.T) {
	skills := make([]string, MaxSkills+1)
	for i := range skills {
		skills[i] = fmt.Sprintf("skill-%d", i)
	}
	r, err := Resume{}.SetSkills(skills)
	assert.ErrorIs(t, err, ErrTooManySkills)
	// 拒绝而不是截断
	assert.Len(t, r.Skills, 0)

	r, err = Resume{}.SetSkills(skills[:MaxSkills])
	require.NoError(t, err)
	assert.Len(t, r.Skills, MaxSkills)
}
