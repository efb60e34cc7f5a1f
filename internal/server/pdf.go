package server

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/rahul8600/govt-job-board/internal/jobparse"
)

// writeNoticePDF renders a parsed record as a single-column A4 notice.
// Layout is intentionally simple: a bold title, then one labelled block
// per populated section.
func writeNoticePDF(w io.Writer, job jobparse.ParsedJob) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 8, job.Title, "", "L", false)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5, job.Department, "", "L", false)
	pdf.Ln(4)

	pdf.MultiCell(0, 5, job.ShortInfo, "", "L", false)
	pdf.Ln(2)

	heading := func(text string) {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, text, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
	}
	row := func(label, value string) {
		pdf.MultiCell(0, 5, label+": "+value, "", "L", false)
	}

	if len(job.VacancyDetails) > 0 {
		heading("Vacancy Details")
		for _, v := range job.VacancyDetails {
			line := v.PostName + ": " + v.TotalPost
			if v.Eligibility != "" {
				line += " (" + v.Eligibility + ")"
			}
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
	}
	if len(job.ApplicationFee) > 0 {
		heading("Application Fee")
		for _, f := range job.ApplicationFee {
			row(f.Category, f.Fee)
		}
	}
	if len(job.ImportantDates) > 0 {
		heading("Important Dates")
		for _, d := range job.ImportantDates {
			row(d.Label, d.Date)
		}
	}
	if len(job.AgeLimit) > 0 {
		heading("Age Limit")
		for _, a := range job.AgeLimit {
			row(a.Category, a.MinAge+" to "+a.MaxAge+" years")
		}
	}
	if job.Qualification != "" {
		heading("Qualification")
		pdf.MultiCell(0, 5, job.Qualification, "", "L", false)
	}
	if len(job.SelectionProcess) > 0 {
		heading("Selection Process")
		for _, stage := range job.SelectionProcess {
			pdf.MultiCell(0, 5, "- "+stage, "", "L", false)
		}
	}
	if len(job.PhysicalEligibility) > 0 {
		heading("Physical Eligibility")
		for _, p := range job.PhysicalEligibility {
			row(p.Criteria, "Male "+p.Male+" / Female "+p.Female)
		}
	}

	links := []struct{ label, url string }{
		{"Apply Online", job.ApplyOnlineURL},
		{"Notification", job.NotificationURL},
		{"Admit Card", job.AdmitCardURL},
		{"Result", job.ResultURL},
		{"Answer Key", job.AnswerKeyURL},
		{"Official Website", job.OfficialWebsiteURL},
	}
	var have bool
	for _, l := range links {
		if l.url == "" {
			continue
		}
		if !have {
			heading("Important Links")
			have = true
		}
		pdf.Write(5, l.label+": ")
		pdf.WriteLinkString(5, l.url, l.url)
		pdf.Ln(6)
	}

	return pdf.Output(w)
}
