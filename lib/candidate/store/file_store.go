package candidatestore

import (
	"context"
	jsonfile "jobboard-backend/lib/utils/json-file"
	dbmodels "jobboard-backend/models/db"
)

func NewFileInstance(path string) Provider {
	return &fileImpl{
		path: path,
	}
}

type fileImpl struct {
	path string
}

func (i fileImpl) LoadAll(ctx context.Context) ([]dbmodels.Candidate, error) {
	list := []dbmodels.Candidate{}
	if err := jsonfile.Load(i.path, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (i fileImpl) SaveAll(ctx context.Context, list []dbmodels.Candidate) error {
	if list == nil {
		list = []dbmodels.Candidate{}
	}
	return jsonfile.Save(i.path, list)
}
