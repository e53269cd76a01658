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

package dao

import (
	"testing"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUpsertColumns(t *testing.T) {
	testcases := []struct {
		name string
		r    Resume
		want []string
	}{
		{
			name: "全空只更新时间",
			r:    Resume{Uid: 1, Rid: "r1"},
			want: []string{"utime"},
		},
		{
			name: "只提交个人信息那一步",
			r: Resume{
				Uid:       1,
				Rid:       "r1",
				FirstName: "Ada",
				LastName:  "Lovelace",
				Email:     "ada@example.com",
			},
			want: []string{"utime", "first_name", "last_name", "email"},
		},
		{
			name: "只提交技能那一步",
			r: Resume{
				Uid: 1,
				Rid: "r1",
				Skills: sqlx.JsonColumn[[]string]{
					Valid: true,
					Val:   []string{"Go", "Kafka"},
				},
			},
			want: []string{"utime", "skills"},
		},
		{
			name: "全量提交",
			r: Resume{
				Uid:       1,
				Rid:       "r1",
				Title:     "后端简历",
				FirstName: "Ada",
				LastName:  "Lovelace",
				Address:   "London",
				Email:     "ada@example.com",
				PhoneNo:   "12345678901",
				Linkedin:  "in/ada",
				Github:    "github.com/ada",
				JobTitle:  "Engineer",
				Education: sqlx.JsonColumn[[]domain.EducationEntry]{
					Valid: true,
					Val:   []domain.EducationEntry{{InstituteName: "Cambridge"}},
				},
				WorkExperience: sqlx.JsonColumn[[]domain.WorkEntry]{
					Valid: true,
					Val:   []domain.WorkEntry{{CompanyName: "ACME"}},
				},
				Skills: sqlx.JsonColumn[[]string]{
					Valid: true,
					Val:   []string{"Go"},
				},
				Projects: sqlx.JsonColumn[[]domain.ProjectEntry]{
					Valid: true,
					Val:   []domain.ProjectEntry{{ProjectName: "p"}},
				},
			},
			want: []string{
				"utime", "title", "first_name", "last_name", "address",
				"email", "phone_no", "linkedin", "github", "job_title",
				"education", "work_experience", "skills", "projects",
			},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ElementsMatch(t, tc.want, upsertColumns(tc.r))
		})
	}
}
