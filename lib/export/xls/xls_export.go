package xlsexport

import (
	"bytes"
	dbmodels "jobboard-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportCandidateList(jobName string, list []dbmodels.Candidate) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const sheetName = "Candidates"

var candidateHeaders = []string{"Order", "Full name", "Email", "Phone", "Gender", "Domicile", "LinkedIn", "Date of birth", "Applied at", "Status"}

func (i impl) ExportCandidateList(jobName string, list []dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "failed to name sheet")
	}
	row := 1
	if err := writeColumn(f, sheetName, 1, row, jobName); err != nil {
		return nil, errors.Wrap(err, "failed to write title")
	}
	row, err := writeHeader(f, sheetName, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		if _, err = writeCandidateData(f, sheetName, list, row); err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data")
		}
	}
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []dbmodels.Candidate, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.Order,
			item.FullName,
			item.Email,
			item.PhoneNumber,
			item.Gender,
			item.Domicile,
			item.Linkedin,
			item.DateOfBirth,
			"",
			string(item.Status),
		}
		if !item.AppliedAt.IsZero() {
			values[8] = item.AppliedAt.Format("02.01.2006 15:04")
		}
		for col, value := range values {
			if err := writeColumn(f, sheet, col+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
