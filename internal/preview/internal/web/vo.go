package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/resumeverse/internal/preview/internal/domain"
)

type PreviewReq struct {
	Rid string `json:"rid"`
}

type DocumentView struct {
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle,omitempty"`
	Address  string `json:"address,omitempty"`
	Email    string `json:"email,omitempty"`
	PhoneNo  string `json:"phoneNo,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	Github   string `json:"github,omitempty"`

	Education      []Education `json:"education,omitempty"`
	WorkExperience []Work      `json:"workExperience,omitempty"`
	Skills         []string    `json:"skills,omitempty"`
	Projects       []Project   `json:"projects,omitempty"`
}

type Education struct {
	InstituteName string `json:"instituteName"`
	Degree        string `json:"degree"`
	Percentage    string `json:"percentage,omitempty"`
	Duration      string `json:"duration,omitempty"`
}

type Work struct {
	CompanyName string `json:"companyName"`
	Role        string `json:"role"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

type Project struct {
	ProjectName string `json:"projectName"`
	Description string `json:"description,omitempty"`
}

func newDocumentView(view domain.DocumentView) DocumentView {
	return DocumentView{
		FullName: view.FullName,
		JobTitle: view.JobTitle,
		Address:  view.Address,
		Email:    view.Email,
		PhoneNo:  view.PhoneNo,
		Linkedin: view.Linkedin,
		Github:   view.Github,
		Education: slice.Map(view.Education, func(idx int, src domain.EducationView) Education {
			return Education(src)
		}),
		WorkExperience: slice.Map(view.WorkExperience, func(idx int, src domain.WorkView) Work {
			return Work(src)
		}),
		Skills: view.Skills,
		Projects: slice.Map(view.Projects, func(idx int, src domain.ProjectView) Project {
			return Project(src)
		}),
	}
}
