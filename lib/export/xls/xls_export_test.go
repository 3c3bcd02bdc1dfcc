package xlsexport

import (
	"jobboard-backend/models"
	dbmodels "jobboard-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportCandidateList(t *testing.T) {
	t.Run(`candidate rows check`, func(t *testing.T) {
		list := []dbmodels.Candidate{
			{ID: "A", JobID: "J1", Order: 1, Status: models.CandidateStatusApproved, FullName: "Ann Lee", Email: "ann@example.com",
				AppliedAt: time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)},
			{ID: "B", JobID: "J1", Order: 2, Status: models.CandidateStatusPending, FullName: "Bob Ray"},
		}
		buf, err := impl{}.ExportCandidateList("Go developer", list)
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		title, err := f.GetCellValue(sheetName, "A1")
		require.Nil(t, err)
		require.Equal(t, "Go developer", title)

		header, err := f.GetCellValue(sheetName, "B2")
		require.Nil(t, err)
		require.Equal(t, "Full name", header)

		rows, err := f.GetRows(sheetName)
		require.Nil(t, err)
		require.Len(t, rows, 4)
		require.Equal(t, "1", rows[2][0])
		require.Equal(t, "Ann Lee", rows[2][1])
		require.Equal(t, "04.03.2026 10:30", rows[2][8])
		require.Equal(t, "approved", rows[2][9])
		require.Equal(t, "Bob Ray", rows[3][1])
	})

	t.Run(`empty list check`, func(t *testing.T) {
		buf, err := impl{}.ExportCandidateList("Empty", nil)
		require.Nil(t, err)
		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()
		rows, err := f.GetRows(sheetName)
		require.Nil(t, err)
		require.Len(t, rows, 2)
	})
}
