package candidatestore

import (
	"context"
	"jobboard-backend/models"
	dbmodels "jobboard-backend/models/db"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Run(`empty store check`, func(t *testing.T) {
		store := NewFileInstance(filepath.Join(t.TempDir(), "applications.json"))
		list, err := store.LoadAll(context.TODO())
		require.Nil(t, err)
		require.NotNil(t, list)
		require.Len(t, list, 0)
	})

	t.Run(`full replace check`, func(t *testing.T) {
		store := NewFileInstance(filepath.Join(t.TempDir(), "applications.json"))
		appliedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		first := []dbmodels.Candidate{
			{ID: "A", JobID: "J1", Order: 1, Status: models.CandidateStatusPending, AppliedAt: appliedAt, FullName: "Ann"},
			{ID: "B", JobID: "J2", Order: 1, Status: models.CandidateStatusApproved, AppliedAt: appliedAt},
		}
		require.Nil(t, store.SaveAll(context.TODO(), first))
		list, err := store.LoadAll(context.TODO())
		require.Nil(t, err)
		require.Equal(t, first, list)

		require.Nil(t, store.SaveAll(context.TODO(), nil))
		list, err = store.LoadAll(context.TODO())
		require.Nil(t, err)
		require.Len(t, list, 0)
	})
}
