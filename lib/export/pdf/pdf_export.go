package pdfexport

import (
	"bytes"
	"fmt"
	dbmodels "jobboard-backend/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type column struct {
	title string
	width float64
}

var candidateColumns = []column{
	{"#", 10},
	{"Full name", 50},
	{"Email", 55},
	{"Phone", 35},
	{"Applied at", 25},
	{"Status", 20},
}

const lineHt = 7.0

// CandidateList renders the ordered candidate list of a job as an A4 table
func CandidateList(jobName string, list []dbmodels.Candidate) (buf *bytes.Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("CandidateList panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(jobName), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(jobName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Candidates: %d", len(list)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(221, 235, 247)
	for _, col := range candidateColumns {
		pdf.CellFormat(col.width, lineHt, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, rec := range list {
		appliedAt := ""
		if !rec.AppliedAt.IsZero() {
			appliedAt = rec.AppliedAt.Format("02.01.2006")
		}
		values := []string{
			fmt.Sprintf("%d", rec.Order),
			rec.FullName,
			rec.Email,
			rec.PhoneNumber,
			appliedAt,
			string(rec.Status),
		}
		for k, col := range candidateColumns {
			pdf.CellFormat(col.width, lineHt, tr(values[k]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf = new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "failed to render pdf")
	}
	return buf, nil
}
