package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	dbmodels "talentflow-backend/models/db"
)

const sheetName = "Candidates"

var headers = []string{"Name", "Email", "Phone", "Stage", "Job", "Notes", "Applied at"}

// CandidateList renders the filtered candidate list as an xlsx workbook held
// fully in memory.
func CandidateList(list []dbmodels.Candidate, jobTitles map[string]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, errors.Wrap(err, "creating export sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "dropping default sheet")
	}

	row, err := writeHeader(f, sheetName, 0, headers)
	if err != nil {
		return nil, errors.Wrap(err, "writing export header")
	}
	for _, candidate := range list {
		row++
		values := []interface{}{
			candidate.Name,
			candidate.Email,
			candidate.Phone,
			string(candidate.Stage),
			jobTitles[candidate.JobID],
			len(candidate.Notes),
			candidate.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, value := range values {
			if err := writeColumn(f, sheetName, col+1, row, value); err != nil {
				return nil, errors.Wrap(err, "writing export row")
			}
		}
	}

	buf := bytes.Buffer{}
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "serializing workbook")
	}
	return buf.Bytes(), nil
}

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return row, err
	}
	cellFirst, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return row, err
	}
	cellLast, err := excelize.CoordinatesToCellName(len(headers), row)
	if err != nil {
		return row, err
	}
	if err = f.SetCellStyle(sheet, cellFirst, cellLast, style); err != nil {
		return row, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, 25); err != nil {
		return row, err
	}
	for idx, value := range headers {
		if err = writeColumn(f, sheet, idx+1, row, value); err != nil {
			return row, err
		}
	}
	return row, nil
}
