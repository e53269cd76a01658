package service

import (
	"bytes"
	"html/template"

	"github.com/ecodeclub/resumeverse/internal/preview/internal/domain"
)

// 导出用的版式。A4 纵向一种规格，页边距交给打印参数控制。
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4 portrait; }
  body { font-family: "Helvetica Neue", Arial, sans-serif; color: #222; margin: 0; }
  h1 { font-size: 26px; margin: 0 0 2px 0; }
  h2 { font-size: 15px; border-bottom: 1px solid #444; padding-bottom: 2px; margin: 18px 0 8px 0; text-transform: uppercase; }
  .job-title { font-size: 15px; color: #555; margin-bottom: 4px; }
  .contact { font-size: 12px; color: #555; }
  .entry { margin-bottom: 10px; }
  .entry-head { display: flex; justify-content: space-between; font-weight: bold; font-size: 13px; }
  .entry-sub { font-size: 12px; color: #555; }
  .entry-desc { font-size: 12px; margin-top: 2px; white-space: pre-wrap; }
  .skills span { display: inline-block; font-size: 12px; border: 1px solid #888; border-radius: 3px; padding: 1px 6px; margin: 0 4px 4px 0; }
</style>
</head>
<body>
<h1>{{.FullName}}</h1>
{{if .JobTitle}}<div class="job-title">{{.JobTitle}}</div>{{end}}
<div class="contact">
  {{if .Email}}{{.Email}}{{end}}
  {{if .PhoneNo}} · {{.PhoneNo}}{{end}}
  {{if .Address}} · {{.Address}}{{end}}
  {{if .Linkedin}} · {{.Linkedin}}{{end}}
  {{if .Github}} · {{.Github}}{{end}}
</div>

{{if .Education}}
<h2>Education</h2>
{{range .Education}}
<div class="entry">
  <div class="entry-head"><span>{{.InstituteName}}</span><span>{{.Duration}}</span></div>
  <div class="entry-sub">{{.Degree}}{{if .Percentage}} · {{.Percentage}}{{end}}</div>
</div>
{{end}}
{{end}}

{{if .WorkExperience}}
<h2>Work Experience</h2>
{{range .WorkExperience}}
<div class="entry">
  <div class="entry-head"><span>{{.Role}} · {{.CompanyName}}</span><span>{{.Duration}}</span></div>
  {{if .Description}}<div class="entry-desc">{{.Description}}</div>{{end}}
</div>
{{end}}
{{end}}

{{if .Skills}}
<h2>Skills</h2>
<div class="skills">{{range .Skills}}<span>{{.}}</span>{{end}}</div>
{{end}}

{{if .Projects}}
<h2>Projects</h2>
{{range .Projects}}
<div class="entry">
  <div class="entry-head"><span>{{.ProjectName}}</span></div>
  {{if .Description}}<div class="entry-desc">{{.Description}}</div>{{end}}
</div>
{{end}}
{{end}}
</body>
</html>`

var documentTmpl = template.Must(template.New("document").Parse(documentTemplate))

func (s *service) RenderHTML(view domain.DocumentView) (string, error) {
	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
