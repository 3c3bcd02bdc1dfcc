package jobhandler

import (
	"context"
	jobstore "jobboard-backend/lib/job/store"
	"jobboard-backend/models"
	jobapimodels "jobboard-backend/models/api/job"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJobHandler(t *testing.T) {
	t.Run(`create validation check`, func(t *testing.T) {
		i := getInstance(t)
		_, err := i.Create(context.TODO(), jobapimodels.JobData{JobType: "Full-time", JobDescription: "d", CandidateNumber: 1})
		require.True(t, models.IsValidationError(err))
		require.Equal(t, "jobName is required", err.Error())

		_, err = i.Create(context.TODO(), jobapimodels.JobData{JobName: "Go dev", JobType: "Full-time", JobDescription: "d"})
		require.Equal(t, "candidateNumber is required", err.Error())

		_, err = i.Create(context.TODO(), jobapimodels.JobData{JobName: "Go dev", JobType: "Full-time", JobDescription: "d",
			CandidateNumber: 1, MinSalary: 10, MaxSalary: 5})
		require.Equal(t, "minSalary can not exceed maxSalary", err.Error())
	})

	t.Run(`create with defaults check`, func(t *testing.T) {
		i := getInstance(t)
		job, err := i.Create(context.TODO(), newJobData("Go dev"))
		require.Nil(t, err)
		require.NotEmpty(t, job.ID)
		require.Equal(t, models.JobStatusActive, job.Status)
		require.Equal(t, models.FieldMandatory, job.FullNameReq)
		require.Equal(t, models.FieldOptional, job.LinkedinReq)

		stored, err := i.GetByID(context.TODO(), job.ID)
		require.Nil(t, err)
		require.Equal(t, job.JobName, stored.JobName)

		form, err := i.FormRequirements(context.TODO(), job.ID)
		require.Nil(t, err)
		require.Equal(t, "Go dev", form.Title)
		require.Equal(t, models.FieldOptional, form.Fields.LinkedinReq)
	})

	t.Run(`not found check`, func(t *testing.T) {
		i := getInstance(t)
		_, err := i.GetByID(context.TODO(), "missing")
		require.True(t, models.IsNotFoundError(err))
		err = i.Delete(context.TODO(), "missing")
		require.True(t, models.IsNotFoundError(err))
		_, err = i.GetByID(context.TODO(), "")
		require.True(t, models.IsValidationError(err))
	})

	t.Run(`list and update check`, func(t *testing.T) {
		i := getInstance(t)
		first, err := i.Create(context.TODO(), newJobData("First"))
		require.Nil(t, err)
		time.Sleep(10 * time.Millisecond)
		second, err := i.Create(context.TODO(), newJobData("Second"))
		require.Nil(t, err)

		list, err := i.List(context.TODO(), jobapimodels.JobFilter{})
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, second.ID, list[0].ID)

		inactive := models.JobStatusInactive
		name := "First renamed"
		updated, err := i.Update(context.TODO(), first.ID, jobapimodels.JobUpdate{Status: &inactive, JobName: &name})
		require.Nil(t, err)
		require.Equal(t, "First renamed", updated.JobName)
		require.Equal(t, "Full-time", updated.JobType)

		list, err = i.List(context.TODO(), jobapimodels.JobFilter{Status: models.JobStatusActive})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, second.ID, list[0].ID)

		_, err = i.List(context.TODO(), jobapimodels.JobFilter{Status: "closed"})
		require.True(t, models.IsValidationError(err))

		require.Nil(t, i.Delete(context.TODO(), first.ID))
		list, err = i.List(context.TODO(), jobapimodels.JobFilter{})
		require.Nil(t, err)
		require.Len(t, list, 1)
	})
}

func newJobData(name string) jobapimodels.JobData {
	data := jobapimodels.JobData{
		JobName:         name,
		JobType:         "Full-time",
		JobDescription:  "Backend work",
		CandidateNumber: 2,
		MinSalary:       1000,
		MaxSalary:       2000,
	}
	data.LinkedinReq = models.FieldOptional
	return data
}

func getInstance(t *testing.T) impl {
	return impl{
		store: jobstore.NewFileInstance(filepath.Join(t.TempDir(), "jobs.json")),
	}
}
