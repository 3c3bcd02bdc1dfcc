package candidatestore

import (
	"context"
	dbmodels "jobboard-backend/models/db"
)

// Provider loads and persists the whole candidate collection regardless of job.
// A load returns the latest save, a save replaces all prior content.
type Provider interface {
	LoadAll(ctx context.Context) ([]dbmodels.Candidate, error)
	SaveAll(ctx context.Context, list []dbmodels.Candidate) error
}
