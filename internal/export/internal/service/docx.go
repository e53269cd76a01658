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
	"bytes"
	"fmt"
	"strings"

	"github.com/ecodeclub/resumeverse/internal/preview"
	"github.com/lukasjarosch/go-docx"
)

type DocxRenderer interface {
	Render(view preview.DocumentView) ([]byte, error)
}

// TemplateDocxRenderer 基于占位符模板生成 Word 文档。
// 直接写入的方法只有商用包才有，退而求其次用占位符替换。
type TemplateDocxRenderer struct {
	// 模板里的占位符：full-name、job-title、contact、
	// education、experience、skills、projects
	TemplatePath string
}

func NewTemplateDocxRenderer(templatePath string) *TemplateDocxRenderer {
	return &TemplateDocxRenderer{TemplatePath: templatePath}
}

func (t *TemplateDocxRenderer) Render(view preview.DocumentView) ([]byte, error) {
	doc, err := docx.Open(t.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("打开模版docx文件失败: %w", err)
	}
	err = doc.ReplaceAll(docx.PlaceholderMap{
		"full-name":  view.FullName,
		"job-title":  view.JobTitle,
		"contact":    t.contactLine(view),
		"education":  t.educationBlock(view),
		"experience": t.experienceBlock(view),
		"skills":     strings.Join(view.Skills, ", "),
		"projects":   t.projectBlock(view),
	})
	if err != nil {
		return nil, fmt.Errorf("替换元素失败: %w", err)
	}
	var buf bytes.Buffer
	if err = doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("写出docx失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (t *TemplateDocxRenderer) contactLine(view preview.DocumentView) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{view.Email, view.PhoneNo, view.Address, view.Linkedin, view.Github} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

func (t *TemplateDocxRenderer) educationBlock(view preview.DocumentView) string {
	lines := make([]string, 0, len(view.Education))
	for _, e := range view.Education {
		line := fmt.Sprintf("%s, %s", e.InstituteName, e.Degree)
		if e.Duration != "" {
			line += " (" + e.Duration + ")"
		}
		if e.Percentage != "" {
			line += " " + e.Percentage
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (t *TemplateDocxRenderer) experienceBlock(view preview.DocumentView) string {
	lines := make([]string, 0, len(view.WorkExperience))
	for _, w := range view.WorkExperience {
		line := fmt.Sprintf("%s, %s", w.Role, w.CompanyName)
		if w.Duration != "" {
			line += " (" + w.Duration + ")"
		}
		if w.Description != "" {
			line += "\n" + w.Description
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n\n")
}

func (t *TemplateDocxRenderer) projectBlock(view preview.DocumentView) string {
	lines := make([]string, 0, len(view.Projects))
	for _, p := range view.Projects {
		line := p.ProjectName
		if p.Description != "" {
			line += "\n" + p.Description
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n\n")
}
