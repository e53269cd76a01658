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

package service

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/resumeverse/internal/preview/internal/domain"
	"github.com/ecodeclub/resumeverse/internal/resume"
)

type Service interface {
	// Render 纯投影，不改草稿也不碰任何外部依赖
	Render(r resume.Resume) domain.DocumentView
	// RenderHTML 给导出管线用的 A4 纵向版式
	RenderHTML(view domain.DocumentView) (string, error)
}

type service struct{}

func NewService() Service {
	return &service{}
}

func (s *service) Render(r resume.Resume) domain.DocumentView {
	view := domain.DocumentView{
		FullName: strings.TrimSpace(r.FirstName + " " + r.LastName),
		JobTitle: r.JobTitle,
		Address:  r.Address,
		Email:    r.Email,
		PhoneNo:  r.PhoneNo,
		Linkedin: r.Linkedin,
		Github:   r.Github,
	}

	// 不能用 ekit 的 FilterDelete，它会原地改切片
	education := keep(r.Education, func(e resume.EducationEntry) bool {
		return !e.Blank()
	})
	if len(education) > 0 {
		view.Education = slice.Map(education, func(idx int, src resume.EducationEntry) domain.EducationView {
			return domain.EducationView(src)
		})
	}

	work := keep(r.WorkExperience, func(w resume.WorkEntry) bool {
		return !w.Blank()
	})
	if len(work) > 0 {
		view.WorkExperience = slice.Map(work, func(idx int, src resume.WorkEntry) domain.WorkView {
			return domain.WorkView(src)
		})
	}

	skills := keep(r.Skills, func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
	if len(skills) > 0 {
		view.Skills = skills
	}

	projects := keep(r.Projects, func(p resume.ProjectEntry) bool {
		return !p.Blank()
	})
	if len(projects) > 0 {
		view.Projects = slice.Map(projects, func(idx int, src resume.ProjectEntry) domain.ProjectView {
			return domain.ProjectView(src)
		})
	}
	return view
}

func keep[T any](list []T, pred func(T) bool) []T {
	res := make([]T, 0, len(list))
	for _, item := range list {
		if pred(item) {
			res = append(res, item)
		}
	}
	return res
}
