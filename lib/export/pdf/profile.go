package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

// CandidateProfile renders the candidate record with its timeline as a PDF.
// Core fonts only, so no font assets are needed on disk.
func CandidateProfile(rec dbmodels.Candidate, jobTitle string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("CandidateProfile panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, rec.Name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, rec.Email, "", 1, "L", false, 0, "")
	if rec.Phone != "" {
		pdf.CellFormat(0, 6, rec.Phone, "", 1, "L", false, 0, "")
	}
	if jobTitle != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("Position: %s", jobTitle), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Current stage: %s", rec.Stage), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Timeline", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, event := range rec.Timeline {
		pdf.CellFormat(0, 5, timelineLine(event), "", 1, "L", false, 0, "")
	}

	if len(rec.Notes) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, note := range rec.Notes {
			pdf.MultiCell(0, 5, fmt.Sprintf("%s %s: %s",
				note.CreatedAt.Format("2006-01-02"), note.Author, note.Text), "", "L", false)
		}
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := bytes.Buffer{}
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "serializing profile pdf")
	}
	return buf.Bytes(), nil
}

func timelineLine(event dbmodels.TimelineEvent) string {
	when := event.CreatedAt.Format("2006-01-02 15:04")
	switch event.Type {
	case models.TimelineStageChange:
		return fmt.Sprintf("%s  moved %s -> %s", when, event.PreviousStage, event.NewStage)
	case models.TimelineNote:
		return fmt.Sprintf("%s  note added", when)
	default:
		return fmt.Sprintf("%s  added at stage %s", when, event.NewStage)
	}
}
