package jobhandler

import (
	"context"
	jobstore "jobboard-backend/lib/job/store"
	initchecker "jobboard-backend/lib/utils/init-checker"
	"jobboard-backend/models"
	jobapimodels "jobboard-backend/models/api/job"
	dbmodels "jobboard-backend/models/db"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(ctx context.Context, data jobapimodels.JobData) (dbmodels.Job, error)
	GetByID(ctx context.Context, id string) (dbmodels.Job, error)
	Update(ctx context.Context, id string, data jobapimodels.JobUpdate) (dbmodels.Job, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter jobapimodels.JobFilter) ([]dbmodels.Job, error)
	FormRequirements(ctx context.Context, id string) (jobapimodels.FormRequirementsView, error)
}

var Instance Provider

func NewHandler(store jobstore.Provider) {
	initchecker.CheckInit("job store", store)
	Instance = impl{
		store: store,
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) Create(ctx context.Context, data jobapimodels.JobData) (dbmodels.Job, error) {
	if err := data.Validate(); err != nil {
		return dbmodels.Job{}, err
	}
	now := time.Now().UTC()
	rec := dbmodels.Job{
		BaseModel: dbmodels.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		JobName:         data.JobName,
		JobType:         data.JobType,
		JobDescription:  data.JobDescription,
		CandidateNumber: data.CandidateNumber,
		Salary: dbmodels.Salary{
			MinSalary: data.MinSalary,
			MaxSalary: data.MaxSalary,
		},
		Status:           models.JobStatusActive,
		FormRequirements: data.FormRequirements.WithDefaults(),
	}
	id, err := i.store.Create(ctx, rec)
	if err != nil {
		return dbmodels.Job{}, models.NewStorageError(err, "failed to create job")
	}
	i.getLogger(id).Info("job created")
	return rec, nil
}

func (i impl) GetByID(ctx context.Context, id string) (dbmodels.Job, error) {
	rec, err := i.get(ctx, id)
	if err != nil {
		return dbmodels.Job{}, err
	}
	return *rec, nil
}

func (i impl) Update(ctx context.Context, id string, data jobapimodels.JobUpdate) (dbmodels.Job, error) {
	if err := data.Validate(); err != nil {
		return dbmodels.Job{}, err
	}
	rec, err := i.get(ctx, id)
	if err != nil {
		return dbmodels.Job{}, err
	}
	if data.JobName != nil {
		rec.JobName = *data.JobName
	}
	if data.JobType != nil {
		rec.JobType = *data.JobType
	}
	if data.JobDescription != nil {
		rec.JobDescription = *data.JobDescription
	}
	if data.CandidateNumber != nil {
		rec.CandidateNumber = *data.CandidateNumber
	}
	if data.MinSalary != nil {
		rec.MinSalary = *data.MinSalary
	}
	if data.MaxSalary != nil {
		rec.MaxSalary = *data.MaxSalary
	}
	if rec.MinSalary != 0 && rec.MaxSalary != 0 && rec.MinSalary > rec.MaxSalary {
		return dbmodels.Job{}, models.NewValidationError("minSalary can not exceed maxSalary")
	}
	if data.Status != nil {
		rec.Status = *data.Status
	}
	if data.FormRequirements != nil {
		rec.FormRequirements = data.FormRequirements.WithDefaults()
	}
	rec.UpdatedAt = time.Now().UTC()
	if err = i.store.Update(ctx, *rec); err != nil {
		return dbmodels.Job{}, models.NewStorageError(err, "failed to update job")
	}
	i.getLogger(id).Info("job updated")
	return *rec, nil
}

// Delete removes the job only, its candidates stay in the candidate store
func (i impl) Delete(ctx context.Context, id string) error {
	if id == "" {
		return models.NewValidationError("Job ID is required")
	}
	found, err := i.store.Delete(ctx, id)
	if err != nil {
		return models.NewStorageError(err, "failed to delete job")
	}
	if !found {
		return models.NewNotFoundError("Job not found")
	}
	i.getLogger(id).Info("job deleted")
	return nil
}

func (i impl) List(ctx context.Context, filter jobapimodels.JobFilter) ([]dbmodels.Job, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	list, err := i.store.List(ctx, filter.Status)
	if err != nil {
		return nil, models.NewStorageError(err, "failed to fetch jobs")
	}
	return list, nil
}

func (i impl) FormRequirements(ctx context.Context, id string) (jobapimodels.FormRequirementsView, error) {
	rec, err := i.get(ctx, id)
	if err != nil {
		return jobapimodels.FormRequirementsView{}, err
	}
	return jobapimodels.FormRequirementsView{
		Title:  rec.JobName,
		Fields: rec.FormRequirements.WithDefaults(),
	}, nil
}

func (i impl) get(ctx context.Context, id string) (*dbmodels.Job, error) {
	if id == "" {
		return nil, models.NewValidationError("Job ID is required")
	}
	rec, err := i.store.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewStorageError(err, "failed to fetch job")
	}
	if rec == nil {
		return nil, models.NewNotFoundError("Job not found")
	}
	return rec, nil
}

func (i impl) getLogger(jobID string) *log.Entry {
	return log.WithField("job_id", jobID)
}
