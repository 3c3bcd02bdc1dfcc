package jobstore

import (
	"context"
	jsonfile "jobboard-backend/lib/utils/json-file"
	"jobboard-backend/models"
	dbmodels "jobboard-backend/models/db"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

func NewFileInstance(path string) Provider {
	return &fileImpl{
		path: path,
	}
}

type fileImpl struct {
	path string
	mu   sync.Mutex
}

func (i *fileImpl) Create(ctx context.Context, rec dbmodels.Job) (id string, err error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	list, err := i.load()
	if err != nil {
		return "", err
	}
	for _, job := range list {
		if job.ID == rec.ID {
			return "", errors.Errorf("job %v already exists", rec.ID)
		}
	}
	list = append(list, rec)
	if err = jsonfile.Save(i.path, list); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i *fileImpl) Update(ctx context.Context, rec dbmodels.Job) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	list, err := i.load()
	if err != nil {
		return err
	}
	for k, job := range list {
		if job.ID == rec.ID {
			list[k] = rec
			return jsonfile.Save(i.path, list)
		}
	}
	return errors.New("job not found")
}

func (i *fileImpl) GetByID(ctx context.Context, id string) (*dbmodels.Job, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	list, err := i.load()
	if err != nil {
		return nil, err
	}
	for _, job := range list {
		if job.ID == id {
			return &job, nil
		}
	}
	return nil, nil
}

func (i *fileImpl) List(ctx context.Context, status models.JobStatus) ([]dbmodels.Job, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	list, err := i.load()
	if err != nil {
		return nil, err
	}
	result := make([]dbmodels.Job, 0, len(list))
	for _, job := range list {
		if status != "" && job.Status != status {
			continue
		}
		result = append(result, job)
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].CreatedAt.After(result[b].CreatedAt)
	})
	return result, nil
}

func (i *fileImpl) Delete(ctx context.Context, id string) (found bool, err error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	list, err := i.load()
	if err != nil {
		return false, err
	}
	result := make([]dbmodels.Job, 0, len(list))
	for _, job := range list {
		if job.ID == id {
			found = true
			continue
		}
		result = append(result, job)
	}
	if !found {
		return false, nil
	}
	return true, jsonfile.Save(i.path, result)
}

func (i *fileImpl) load() ([]dbmodels.Job, error) {
	list := []dbmodels.Job{}
	if err := jsonfile.Load(i.path, &list); err != nil {
		return nil, err
	}
	return list, nil
}
