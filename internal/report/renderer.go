package report

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const (
	issueTemplateNameConstant        = "issue_report"
	issueTemplateRenderErrorTemplate = "unable to render issue report: %w"
)

//go:embed report_template.md.tmpl
var issueTemplateContent string

var issueTemplate = template.Must(
	template.New(issueTemplateNameConstant).Funcs(sprig.TxtFuncMap()).Parse(issueTemplateContent),
)

// RenderReport substitutes the classified file lists into the issue template.
func RenderReport(reportData ReportData) (string, error) {
	renderedReport := strings.Builder{}
	if renderError := issueTemplate.Execute(&renderedReport, reportData); renderError != nil {
		return "", fmt.Errorf(issueTemplateRenderErrorTemplate, renderError)
	}
	return renderedReport.String(), nil
}
