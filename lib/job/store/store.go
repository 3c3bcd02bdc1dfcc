package jobstore

import (
	"context"
	"jobboard-backend/models"
	dbmodels "jobboard-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.Job) (id string, err error)
	Update(ctx context.Context, rec dbmodels.Job) error
	// GetByID returns nil when the job is not found
	GetByID(ctx context.Context, id string) (*dbmodels.Job, error)
	// List returns jobs newest first, an empty status means all
	List(ctx context.Context, status models.JobStatus) ([]dbmodels.Job, error)
	Delete(ctx context.Context, id string) (found bool, err error)
}
