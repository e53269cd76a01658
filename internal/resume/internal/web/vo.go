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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/domain"
)

type CreateReq struct {
	Title string `json:"title"`
}

type RidReq struct {
	Rid string `json:"rid"`
}

type SaveReq struct {
	Resume Resume `json:"resume"`
}

type Resume struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	PhoneNo   string `json:"phoneNo"`
	Linkedin  string `json:"linkedin"`
	Github    string `json:"github"`
	JobTitle  string `json:"jobTitle"`

	Education      []Education `json:"education"`
	WorkExperience []Work      `json:"workExperience"`
	Skills         []string    `json:"skills"`
	Projects       []Project   `json:"projects"`

	Utime int64 `json:"utime"`
}

type Education struct {
	InstituteName string `json:"instituteName"`
	Degree        string `json:"degree"`
	Percentage    string `json:"percentage"`
	Duration      string `json:"duration"`
}

type Work struct {
	CompanyName string `json:"companyName"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Project struct {
	ProjectName string `json:"projectName"`
	Description string `json:"description"`
}

type ListResp struct {
	Resumes []Resume `json:"resumes"`
}

func (r Resume) toDomain(uid int64) domain.Resume {
	return domain.Resume{
		Uid:       uid,
		ID:        r.ID,
		Title:     r.Title,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		Email:     r.Email,
		PhoneNo:   r.PhoneNo,
		Linkedin:  r.Linkedin,
		Github:    r.Github,
		JobTitle:  r.JobTitle,
		Education: slice.Map(r.Education, func(idx int, src Education) domain.EducationEntry {
			return domain.EducationEntry(src)
		}),
		WorkExperience: slice.Map(r.WorkExperience, func(idx int, src Work) domain.WorkEntry {
			return domain.WorkEntry(src)
		}),
		Skills: r.Skills,
		Projects: slice.Map(r.Projects, func(idx int, src Project) domain.ProjectEntry {
			return domain.ProjectEntry(src)
		}),
	}
}

func newResume(r domain.Resume) Resume {
	return Resume{
		ID:        r.ID,
		Title:     r.Title,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		Email:     r.Email,
		PhoneNo:   r.PhoneNo,
		Linkedin:  r.Linkedin,
		Github:    r.Github,
		JobTitle:  r.JobTitle,
		Education: slice.Map(r.Education, func(idx int, src domain.EducationEntry) Education {
			return Education(src)
		}),
		WorkExperience: slice.Map(r.WorkExperience, func(idx int, src domain.WorkEntry) Work {
			return Work(src)
		}),
		Skills: r.Skills,
		Projects: slice.Map(r.Projects, func(idx int, src domain.ProjectEntry) Project {
			return Project(src)
		}),
		Utime: r.Utime,
	}
}
