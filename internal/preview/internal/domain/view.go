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

// DocumentView 草稿的只读投影。
// 空分区整个不出现，避免渲染出光杆标题。
type DocumentView struct {
	FullName string
	JobTitle string
	Address  string
	Email    string
	PhoneNo  string
	Linkedin string
	Github   string

	Education      []EducationView
	WorkExperience []WorkView
	Skills         []string
	Projects       []ProjectView
}

type EducationView struct {
	InstituteName string
	Degree        string
	Percentage    string
	Duration      string
}

type WorkView struct {
	CompanyName string
	Role        string
	Duration    string
	Description string
}

type ProjectView struct {
	ProjectName string
	Description string
}
