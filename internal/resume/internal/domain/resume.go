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
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("条目下标越界")
	ErrTooManySkills   = errors.New("技能数量超过上限")
	ErrUnknownSection  = errors.New("未知的简历分区")
	ErrUnknownField    = errors.New("未知的字段")
)

const (
	// MaxSkills 技能列表上限，超出直接拒绝，不做静默截断
	MaxSkills = 20
	// MaxSkillLen 单个技能长度上限
	MaxSkillLen = 50
)

// Section 简历里可重复条目的分区。
// 用封闭枚举代替字符串 key，杜绝非法分区在运行期才暴露。
type Section uint8

const (
	SectionEducation Section = iota + 1
	SectionWorkExperience
	SectionProjects
)

func (s Section) String() string {
	switch s {
	case SectionEducation:
		return "education"
	case SectionWorkExperience:
		return "workExperience"
	case SectionProjects:
		return "projects"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Resume 一次编辑会话里的完整简历草稿。
// 由 (Uid, ID) 唯一标识，创建之后不再变化。
type Resume struct {
	Uid   int64
	ID    string
	Title string

	FirstName string
	LastName  string
	Address   string
	Email     string
	PhoneNo   string
	Linkedin  string
	Github    string
	JobTitle  string

	Education      []EducationEntry
	WorkExperience []WorkEntry
	Skills         []string
	Projects       []ProjectEntry

	Utime int64
	Ctime int64
}

type EducationEntry struct {
	InstituteName string `json:"instituteName"`
	Degree        string `json:"degree"`
	Percentage    string `json:"percentage"`
	Duration      string `json:"duration"`
}

func (e EducationEntry) Blank() bool {
	return e.InstituteName == "" && e.Degree == "" && e.Percentage == "" && e.Duration == ""
}

type WorkEntry struct {
	CompanyName string `json:"companyName"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

func (w WorkEntry) Blank() bool {
	return w.CompanyName == "" && w.Role == "" && w.Duration == "" && w.Description == ""
}

type ProjectEntry struct {
	ProjectName string `json:"projectName"`
	Description string `json:"description"`
}

func (p ProjectEntry) Blank() bool {
	return p.ProjectName == "" && p.Description == ""
}

// SetField 返回修改了一个标量字段的新草稿，原值不动。
func (r Resume) SetField(key, value string) (Resume, error) {
	switch key {
	case "firstName":
		r.FirstName = value
	case "lastName":
		r.LastName = value
	case "address":
		r.Address = value
	case "email":
		r.Email = value
	case "phoneNo":
		r.PhoneNo = value
	case "linkedin":
		r.Linkedin = value
	case "github":
		r.Github = value
	case "jobTitle":
		r.JobTitle = value
	case "title":
		r.Title = value
	default:
		return r, fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	return r, nil
}

// AppendEducation 在教育经历末尾追加一条。
func (r Resume) AppendEducation(e EducationEntry) Resume {
	r.Education = appendCopy(r.Education, e)
	return r
}

func (r Resume) AppendWorkExperience(w WorkEntry) Resume {
	r.WorkExperience = appendCopy(r.WorkExperience, w)
	return r
}

func (r Resume) AppendProject(p ProjectEntry) Resume {
	r.Projects = appendCopy(r.Projects, p)
	return r
}

// UpdateEducation 更新指定下标的教育经历，下标越界返回 ErrIndexOutOfRange。
func (r Resume) UpdateEducation(index int, e EducationEntry) (Resume, error) {
	list, err := updateCopy(r.Education, index, e)
	if err != nil {
		return r, err
	}
	r.Education = list
	return r, nil
}

func (r Resume) UpdateWorkExperience(index int, w WorkEntry) (Resume, error) {
	list, err := updateCopy(r.WorkExperience, index, w)
	if err != nil {
		return r, err
	}
	r.WorkExperience = list
	return r, nil
}

func (r Resume) UpdateProject(index int, p ProjectEntry) (Resume, error) {
	list, err := updateCopy(r.Projects, index, p)
	if err != nil {
		return r, err
	}
	r.Projects = list
	return r, nil
}

// RemoveEntry 删除指定分区指定下标的条目，后面的条目整体前移。
func (r Resume) RemoveEntry(section Section, index int) (Resume, error) {
	var err error
	switch section {
	case SectionEducation:
		r.Education, err = removeCopy(r.Education, index)
	case SectionWorkExperience:
		r.WorkExperience, err = removeCopy(r.WorkExperience, index)
	case SectionProjects:
		r.Projects, err = removeCopy(r.Projects, index)
	default:
		return r, fmt.Errorf("%w: %d", ErrUnknownSection, section)
	}
	if err != nil {
		return r, err
	}
	return r, nil
}

// SetSkills 整体替换技能列表。超过上限直接拒绝，不做静默截断。
func (r Resume) SetSkills(skills []string) (Resume, error) {
	if len(skills) > MaxSkills {
		return r, fmt.Errorf("%w: %d > %d", ErrTooManySkills, len(skills), MaxSkills)
	}
	res := make([]string, len(skills))
	copy(res, skills)
	r.Skills = res
	return r, nil
}

func appendCopy[T any](list []T, item T) []T {
	res := make([]T, len(list), len(list)+1)
	copy(res, list)
	return append(res, item)
}

func updateCopy[T any](list []T, index int, item T) ([]T, error) {
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: index=%d len=%d", ErrIndexOutOfRange, index, len(list))
	}
	res := make([]T, len(list))
	copy(res, list)
	res[index] = item
	return res, nil
}

func removeCopy[T any](list []T, index int) ([]T, error) {
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: index=%d len=%d", ErrIndexOutOfRange, index, len(list))
	}
	res := make([]T, 0, len(list)-1)
	res = append(res, list[:index]...)
	return append(res, list[index+1:]...), nil
}
