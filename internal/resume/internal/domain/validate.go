// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ecodeclub/resumeverse/internal/pkg/sanitize"
)

// 各字段长度上限
const (
	maxNameLen    = 60
	maxTitleLen   = 100
	maxAddressLen = 200
	maxDescLen    = 2000
	maxEntryLen   = 200
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	urlRe   = regexp.MustCompile(`^(https?://)?[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)+(/[^\s]*)?$`)
	// 百分比或绩点，例如 85%、85.5、9.2 CGPA
	percentageRe = regexp.MustCompile(`^[0-9]{1,3}(\.[0-9]{1,2})?\s*(%|CGPA|GPA)?$`)
	// 起止时间，2019-2023 或 June 2019 - May 2023
	durationRe = regexp.MustCompile(`^([0-9]{4}\s*-\s*[0-9]{4}|[A-Za-z]+\.?\s+[0-9]{4}\s*-\s*([A-Za-z]+\.?\s+[0-9]{4}|[Pp]resent))$`)
)

// Validate 对整份草稿做校验，返回 字段key -> 错误信息。
// 纯函数：不改输入，空 map 等价于校验通过。
// 重复条目的字段用下标做命名空间，比如 education[2].degree。
func (r Resume) Validate() map[string]string {
	errs := make(map[string]string)
	r.ValidatePersonal(errs)
	ValidateEducation(errs, r.Education)
	ValidateWorkExperience(errs, r.WorkExperience)
	ValidateSkills(errs, r.Skills)
	ValidateProjects(errs, r.Projects)
	return errs
}

// ValidatePersonal 校验个人信息这一步的标量字段。
func (r Resume) ValidatePersonal(errs map[string]string) {
	checkRequired(errs, "firstName", r.FirstName)
	checkRequired(errs, "lastName", r.LastName)
	checkLen(errs, "firstName", r.FirstName, maxNameLen)
	checkLen(errs, "lastName", r.LastName, maxNameLen)
	checkLen(errs, "jobTitle", r.JobTitle, maxTitleLen)
	checkLen(errs, "title", r.Title, maxTitleLen)
	checkLen(errs, "address", r.Address, maxAddressLen)

	checkFormat(errs, "email", r.Email, emailRe, "邮箱格式不正确")
	checkFormat(errs, "phoneNo", r.PhoneNo, phoneRe, "电话号码需要10到15位数字")
	checkFormat(errs, "linkedin", r.Linkedin, urlRe, "链接格式不正确")
	checkFormat(errs, "github", r.Github, urlRe, "链接格式不正确")

	checkInjection(errs, "firstName", r.FirstName)
	checkInjection(errs, "lastName", r.LastName)
	checkInjection(errs, "address", r.Address)
	checkInjection(errs, "jobTitle", r.JobTitle)
	checkInjection(errs, "title", r.Title)
}

// ValidateEducation 整条为空的占位条目不报错，保存时会被丢弃。
func ValidateEducation(errs map[string]string, entries []EducationEntry) {
	for i, edu := range entries {
		if edu.Blank() {
			continue
		}
		prefix := fmt.Sprintf("education[%d].", i)
		checkRequired(errs, prefix+"instituteName", edu.InstituteName)
		checkRequired(errs, prefix+"degree", edu.Degree)
		checkLen(errs, prefix+"instituteName", edu.InstituteName, maxEntryLen)
		checkLen(errs, prefix+"degree", edu.Degree, maxEntryLen)
		checkFormat(errs, prefix+"percentage", edu.Percentage, percentageRe, "成绩格式不正确")
		checkFormat(errs, prefix+"duration", edu.Duration, durationRe, "时间段格式应为 2019-2023 或 June 2019 - May 2023")
		checkInjection(errs, prefix+"instituteName", edu.InstituteName)
		checkInjection(errs, prefix+"degree", edu.Degree)
	}
}

func ValidateWorkExperience(errs map[string]string, entries []WorkEntry) {
	for i, work := range entries {
		if work.Blank() {
			continue
		}
		prefix := fmt.Sprintf("workExperience[%d].", i)
		checkRequired(errs, prefix+"companyName", work.CompanyName)
		checkRequired(errs, prefix+"role", work.Role)
		checkLen(errs, prefix+"companyName", work.CompanyName, maxEntryLen)
		checkLen(errs, prefix+"role", work.Role, maxEntryLen)
		checkLen(errs, prefix+"description", work.Description, maxDescLen)
		checkFormat(errs, prefix+"duration", work.Duration, durationRe, "时间段格式应为 2019-2023 或 June 2019 - May 2023")
		checkInjection(errs, prefix+"companyName", work.CompanyName)
		checkInjection(errs, prefix+"role", work.Role)
		checkInjection(errs, prefix+"description", work.Description)
	}
}

func ValidateProjects(errs map[string]string, entries []ProjectEntry) {
	for i, proj := range entries {
		if proj.Blank() {
			continue
		}
		prefix := fmt.Sprintf("projects[%d].", i)
		checkRequired(errs, prefix+"projectName", proj.ProjectName)
		checkLen(errs, prefix+"projectName", proj.ProjectName, maxEntryLen)
		checkLen(errs, prefix+"description", proj.Description, maxDescLen)
		checkInjection(errs, prefix+"projectName", proj.ProjectName)
		checkInjection(errs, prefix+"description", proj.Description)
	}
}

func ValidateSkills(errs map[string]string, skills []string) {
	if len(skills) > MaxSkills {
		errs["skills"] = fmt.Sprintf("技能最多%d项", MaxSkills)
	}
	for i, skill := range skills {
		key := fmt.Sprintf("skills[%d]", i)
		if len(skill) > MaxSkillLen {
			errs[key] = fmt.Sprintf("单项技能最长%d个字符", MaxSkillLen)
		}
		checkInjection(errs, key, skill)
	}
}

func checkRequired(errs map[string]string, key, val string) {
	if strings.TrimSpace(val) == "" {
		errs[key] = "不能为空"
	}
}

func checkLen(errs map[string]string, key, val string, max int) {
	if _, ok := errs[key]; ok {
		return
	}
	if len(val) > max {
		errs[key] = fmt.Sprintf("最长%d个字符", max)
	}
}

// checkFormat 只在字段非空时校验格式，格式字段都是可选的
func checkFormat(errs map[string]string, key, val string, re *regexp.Regexp, msg string) {
	if val == "" {
		return
	}
	if _, ok := errs[key]; ok {
		return
	}
	if !re.MatchString(val) {
		errs[key] = msg
	}
}

// checkInjection 注入特征检查独立于其他规则，直接覆盖已有错误信息
func checkInjection(errs map[string]string, key, val string) {
	if sanitize.ContainsInjection(val) {
		errs[key] = "包含非法字符"
	}
}
