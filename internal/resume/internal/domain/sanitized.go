package domain

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/resumeverse/internal/pkg/sanitize"
)

// Sanitized 返回一份所有自由文本字段都清洗过的草稿。
// 清洗是幂等的，保存前统一走一遍。
func (r Resume) Sanitized() Resume {
	r.Title = sanitize.Sanitize(r.Title)
	r.FirstName = sanitize.Sanitize(r.FirstName)
	r.LastName = sanitize.Sanitize(r.LastName)
	r.Address = sanitize.Sanitize(r.Address)
	r.Email = sanitize.Sanitize(r.Email)
	r.PhoneNo = sanitize.Sanitize(r.PhoneNo)
	r.Linkedin = sanitize.Sanitize(r.Linkedin)
	r.Github = sanitize.Sanitize(r.Github)
	r.JobTitle = sanitize.Sanitize(r.JobTitle)

	r.Education = slice.Map(r.Education, func(idx int, src EducationEntry) EducationEntry {
		return EducationEntry{
			InstituteName: sanitize.Sanitize(src.InstituteName),
			Degree:        sanitize.Sanitize(src.Degree),
			Percentage:    sanitize.Sanitize(src.Percentage),
			Duration:      sanitize.Sanitize(src.Duration),
		}
	})
	r.WorkExperience = slice.Map(r.WorkExperience, func(idx int, src WorkEntry) WorkEntry {
		return WorkEntry{
			CompanyName: sanitize.Sanitize(src.CompanyName),
			Role:        sanitize.Sanitize(src.Role),
			Duration:    sanitize.Sanitize(src.Duration),
			Description: sanitize.Sanitize(src.Description),
		}
	})
	r.Skills = slice.Map(r.Skills, func(idx int, src string) string {
		return sanitize.Sanitize(src)
	})
	r.Projects = slice.Map(r.Projects, func(idx int, src ProjectEntry) ProjectEntry {
		return ProjectEntry{
			ProjectName: sanitize.Sanitize(src.ProjectName),
			Description: sanitize.Sanitize(src.Description),
		}
	})
	return r
}
