package assets

import (
	"fmt"
	"io"
	"time"
)

// Report is the data of an exported highlighting result.
type Report struct {
	Title       string
	Source      string
	Date        time.Time
	Highlighted string
	Terms       []ReportTerm
	Explanation string
}

type ReportTerm struct {
	Term       string
	Definition string
}

func RenderReport(output io.Writer, templatePath string, report Report) error {
	tmpl, err := ParseReportTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseReportTemplate(%s) > %w", templatePath, err)
	}
	if report.Title == "" {
		report.Title = "Hukuki Terimler"
	}
	if report.Date.IsZero() {
		report.Date = time.Now()
	}

	if err := tmpl.Execute(output, report); err != nil {
		return fmt.Errorf("tmpl.Execute > %w", err)
	}
	return nil
}
