package candidatestore

import (
	"context"
	dbmodels "jobboard-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const saveBatchSize = 100

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) LoadAll(ctx context.Context) ([]dbmodels.Candidate, error) {
	list := []dbmodels.Candidate{}
	err := i.db.
		WithContext(ctx).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return list, nil
		}
		return nil, err
	}
	return list, nil
}

// SaveAll replaces the table content in one transaction
func (i impl) SaveAll(ctx context.Context, list []dbmodels.Candidate) error {
	return i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&dbmodels.Candidate{}).
			Error
		if err != nil {
			return errors.Wrap(err, "failed to clear candidates")
		}
		if len(list) == 0 {
			return nil
		}
		if err = tx.CreateInBatches(list, saveBatchSize).Error; err != nil {
			return errors.Wrap(err, "failed to save candidates")
		}
		return nil
	})
}
