package candidatehandler

import (
	"bytes"
	"context"
	"fmt"
	candidatestore "jobboard-backend/lib/candidate/store"
	pdfexport "jobboard-backend/lib/export/pdf"
	xlsexport "jobboard-backend/lib/export/xls"
	"jobboard-backend/lib/notify"
	"jobboard-backend/lib/utils/helpers"
	initchecker "jobboard-backend/lib/utils/init-checker"
	"jobboard-backend/lib/utils/lock"
	"jobboard-backend/models"
	candidateapimodels "jobboard-backend/models/api/candidate"
	dbmodels "jobboard-backend/models/db"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	List(ctx context.Context, jobID string) (candidateapimodels.CandidateList, error)
	Get(ctx context.Context, jobID, candidateID string) (dbmodels.Candidate, error)
	Apply(ctx context.Context, jobID string, data candidateapimodels.ApplyData) (dbmodels.Candidate, error)
	Reorder(ctx context.Context, jobID string, newOrder []candidateapimodels.OrderItem) (candidateapimodels.ReorderResult, error)
	UpdateStatus(ctx context.Context, jobID string, candidateIDs []string, status models.CandidateStatus) (candidateapimodels.StatusResult, error)
	Delete(ctx context.Context, jobID string, candidateIDs []string) (candidateapimodels.DeleteResult, error)
	Export(ctx context.Context, jobID string, format models.ExportFormat) (fileName string, data *bytes.Buffer, err error)
	CheckDensity(ctx context.Context) (jobIDs []string, err error)
}

// JobSource resolves the job a candidate list belongs to, nil when not found
type JobSource interface {
	GetByID(ctx context.Context, id string) (*dbmodels.Job, error)
}

var Instance Provider

// collectionLockKey guards the read-modify-write window over the whole collection.
// The store saves all jobs at once, so a per job key would still lose updates.
const collectionLockKey = "candidate-collection"

func NewHandler(store candidatestore.Provider, jobs JobSource, lockWait time.Duration) {
	initchecker.CheckInit(
		"candidate store", store,
		"job source", jobs,
		"xls export", xlsexport.Instance,
	)
	Instance = impl{
		store:    store,
		jobs:     jobs,
		notifier: notify.Instance,
		xls:      xlsexport.Instance,
		lockWait: lockWait,
	}
}

type impl struct {
	store    candidatestore.Provider
	jobs     JobSource
	notifier notify.Provider
	xls      xlsexport.Provider
	lockWait time.Duration
}

func (i impl) List(ctx context.Context, jobID string) (candidateapimodels.CandidateList, error) {
	job, err := i.getJob(ctx, jobID)
	if err != nil {
		return candidateapimodels.CandidateList{}, err
	}
	all, err := i.store.LoadAll(ctx)
	if err != nil {
		return candidateapimodels.CandidateList{}, models.NewStorageError(err, "failed to fetch candidates")
	}
	return candidateapimodels.CandidateList{
		JobName:    job.JobName,
		Candidates: jobCandidates(all, jobID),
	}, nil
}

func (i impl) Get(ctx context.Context, jobID, candidateID string) (dbmodels.Candidate, error) {
	if jobID == "" {
		return dbmodels.Candidate{}, models.NewValidationError("Job ID is required")
	}
	all, err := i.store.LoadAll(ctx)
	if err != nil {
		return dbmodels.Candidate{}, models.NewStorageError(err, "failed to fetch candidates")
	}
	for _, rec := range all {
		if rec.ID == candidateID && rec.IsOfJob(jobID) {
			return rec, nil
		}
	}
	return dbmodels.Candidate{}, models.NewNotFoundError("Candidate not found")
}

func (i impl) Apply(ctx context.Context, jobID string, data candidateapimodels.ApplyData) (dbmodels.Candidate, error) {
	job, err := i.getJob(ctx, jobID)
	if err != nil {
		return dbmodels.Candidate{}, err
	}
	if !job.IsOpen() {
		return dbmodels.Candidate{}, models.NewValidationError("Job is not accepting applications")
	}
	if err = data.Validate(job.FormRequirements); err != nil {
		return dbmodels.Candidate{}, err
	}
	rec := dbmodels.Candidate{
		ID:           uuid.NewString(),
		JobID:        jobID,
		Status:       models.CandidateStatusPending,
		AppliedAt:    time.Now().UTC(),
		FullName:     data.FullName,
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		Gender:       data.Gender,
		Domicile:     data.Domicile,
		Linkedin:     data.Linkedin,
		DateOfBirth:  data.DateOfBirth,
		PhotoProfile: data.PhotoProfile,
	}
	err = i.mutate(ctx, func(all []dbmodels.Candidate) ([]dbmodels.Candidate, error) {
		rec.Order = maxOrder(all, jobID) + 1
		return append(all, rec), nil
	})
	if err != nil {
		return dbmodels.Candidate{}, err
	}
	i.getLogger(jobID).
		WithField("candidate_id", rec.ID).
		WithField("order", rec.Order).
		Info("candidate applied")
	return rec, nil
}

// Reorder applies every assignment to the candidates of the job independently.
// Density of the result is not enforced, it is reported in the result.
func (i impl) Reorder(ctx context.Context, jobID string, newOrder []candidateapimodels.OrderItem) (candidateapimodels.ReorderResult, error) {
	if jobID == "" {
		return candidateapimodels.ReorderResult{}, models.NewValidationError("Job ID is required")
	}
	if newOrder == nil {
		return candidateapimodels.ReorderResult{}, models.NewValidationError("newOrder array is required")
	}
	orderMap := make(map[string]int, len(newOrder))
	requested := make([]string, 0, len(newOrder))
	for _, item := range newOrder {
		if _, ok := orderMap[item.ID]; ok {
			continue
		}
		orderMap[item.ID] = item.Order
		requested = append(requested, item.ID)
	}

	result := candidateapimodels.ReorderResult{}
	applied := map[string]bool{}
	err := i.mutate(ctx, func(all []dbmodels.Candidate) ([]dbmodels.Candidate, error) {
		for k, rec := range all {
			if !rec.IsOfJob(jobID) {
				continue
			}
			if order, ok := orderMap[rec.ID]; ok {
				all[k].Order = order
				applied[rec.ID] = true
			}
		}
		result.Dense = isDense(jobCandidates(all, jobID))
		return all, nil
	})
	if err != nil {
		return candidateapimodels.ReorderResult{}, err
	}
	result.MutationResult = splitIDs(requested, applied)

	logger := i.getLogger(jobID).
		WithField("applied", len(result.AppliedIDs)).
		WithField("skipped", len(result.SkippedIDs))
	if !result.Dense {
		logger.Warn("candidate order updated, order is not dense")
	} else {
		logger.Info("candidate order updated")
	}
	return result, nil
}

func (i impl) UpdateStatus(ctx context.Context, jobID string, candidateIDs []string, status models.CandidateStatus) (candidateapimodels.StatusResult, error) {
	if jobID == "" {
		return candidateapimodels.StatusResult{}, models.NewValidationError("Job ID is required")
	}
	if len(candidateIDs) == 0 || status == "" {
		return candidateapimodels.StatusResult{}, models.NewValidationError("candidateIds array and status are required")
	}
	if !status.IsValid() {
		return candidateapimodels.StatusResult{}, models.NewValidationError("Invalid status. Must be 'approved', 'declined', or 'pending'")
	}
	requested, idSet := uniqueIDs(candidateIDs)

	applied := map[string]bool{}
	changed := make([]dbmodels.Candidate, 0, len(requested))
	err := i.mutate(ctx, func(all []dbmodels.Candidate) ([]dbmodels.Candidate, error) {
		for k, rec := range all {
			if !idSet[rec.ID] || !rec.IsOfJob(jobID) {
				continue
			}
			all[k].Status = status
			applied[rec.ID] = true
			changed = append(changed, all[k])
		}
		return all, nil
	})
	if err != nil {
		return candidateapimodels.StatusResult{}, err
	}
	result := candidateapimodels.StatusResult{
		MutationResult: splitIDs(requested, applied),
	}
	result.UpdatedCount = len(result.AppliedIDs)
	i.getLogger(jobID).
		WithField("status", status).
		WithField("updated", result.UpdatedCount).
		WithField("skipped", len(result.SkippedIDs)).
		Info("candidate status updated")

	if status.IsFinal() && len(changed) != 0 && i.notifier != nil {
		jobName := ""
		if job, err := i.jobs.GetByID(ctx, jobID); err == nil && job != nil {
			jobName = job.JobName
		}
		go i.notifier.CandidateStatusChanged(jobName, changed, status)
	}
	return result, nil
}

// Delete removes the candidates of the job and re-sequences the survivors to 1..M
// keeping their relative order
func (i impl) Delete(ctx context.Context, jobID string, candidateIDs []string) (candidateapimodels.DeleteResult, error) {
	if jobID == "" {
		return candidateapimodels.DeleteResult{}, models.NewValidationError("Job ID is required")
	}
	if len(candidateIDs) == 0 {
		return candidateapimodels.DeleteResult{}, models.NewValidationError("candidateIds array is required")
	}
	requested, idSet := uniqueIDs(candidateIDs)

	applied := map[string]bool{}
	err := i.mutate(ctx, func(all []dbmodels.Candidate) ([]dbmodels.Candidate, error) {
		kept := make([]dbmodels.Candidate, 0, len(all))
		for _, rec := range all {
			if idSet[rec.ID] && rec.IsOfJob(jobID) {
				applied[rec.ID] = true
				continue
			}
			kept = append(kept, rec)
		}
		resequence(kept, jobID)
		return kept, nil
	})
	if err != nil {
		return candidateapimodels.DeleteResult{}, err
	}
	result := candidateapimodels.DeleteResult{
		MutationResult: splitIDs(requested, applied),
	}
	result.DeletedCount = len(result.AppliedIDs)
	i.getLogger(jobID).
		WithField("deleted", result.DeletedCount).
		WithField("skipped", len(result.SkippedIDs)).
		Info("candidates deleted")
	return result, nil
}

// Export renders the ordered candidate list, the file name is derived from the job name
func (i impl) Export(ctx context.Context, jobID string, format models.ExportFormat) (fileName string, data *bytes.Buffer, err error) {
	if format == "" {
		format = models.ExportFormatXlsx
	}
	if format != models.ExportFormatXlsx && format != models.ExportFormatPdf {
		return "", nil, models.NewValidationError("Invalid format. Must be 'xlsx' or 'pdf'")
	}
	list, err := i.List(ctx, jobID)
	if err != nil {
		return "", nil, err
	}
	fileName = fmt.Sprintf("%s.%s", helpers.FileName(list.JobName, "candidates"), format)
	if format == models.ExportFormatPdf {
		data, err = pdfexport.CandidateList(list.JobName, list.Candidates)
	} else {
		data, err = i.xls.ExportCandidateList(list.JobName, list.Candidates)
	}
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to render candidate list")
	}
	return fileName, data, nil
}

// CheckDensity returns the jobs whose candidate orders are not exactly 1..N
func (i impl) CheckDensity(ctx context.Context) (jobIDs []string, err error) {
	all, err := i.store.LoadAll(ctx)
	if err != nil {
		return nil, models.NewStorageError(err, "failed to fetch candidates")
	}
	byJob := map[string][]dbmodels.Candidate{}
	for _, rec := range all {
		byJob[rec.JobID] = append(byJob[rec.JobID], rec)
	}
	jobIDs = []string{}
	for jobID, list := range byJob {
		sortByOrder(list)
		if !isDense(list) {
			jobIDs = append(jobIDs, jobID)
		}
	}
	sort.Strings(jobIDs)
	return jobIDs, nil
}

// mutate runs a full read-modify-write of the collection under the collection lock.
// Nothing is persisted when modify fails.
func (i impl) mutate(ctx context.Context, modify func(all []dbmodels.Candidate) ([]dbmodels.Candidate, error)) error {
	success, err := lock.WithDelay(ctx, collectionLockKey, i.lockWait, func() error {
		all, err := i.store.LoadAll(ctx)
		if err != nil {
			return models.NewStorageError(err, "failed to fetch candidates")
		}
		all, err = modify(all)
		if err != nil {
			return err
		}
		if err = i.store.SaveAll(ctx, all); err != nil {
			return models.NewStorageError(err, "failed to save candidates")
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !success {
		return models.NewStorageBusyError("Candidate storage is busy, try again later")
	}
	return nil
}

func (i impl) getJob(ctx context.Context, jobID string) (*dbmodels.Job, error) {
	if jobID == "" {
		return nil, models.NewValidationError("Job ID is required")
	}
	job, err := i.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, models.NewStorageError(err, "failed to fetch job")
	}
	if job == nil {
		return nil, models.NewNotFoundError("Job not found")
	}
	return job, nil
}

func (i impl) getLogger(jobID string) *log.Entry {
	return log.WithField("job_id", jobID)
}
