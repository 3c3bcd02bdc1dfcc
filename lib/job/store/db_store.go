package jobstore

import (
	"context"
	"jobboard-backend/models"
	dbmodels "jobboard-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.Job) (id string, err error) {
	err = i.db.
		WithContext(ctx).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(ctx context.Context, rec dbmodels.Job) error {
	tx := i.db.
		WithContext(ctx).
		Model(&dbmodels.Job{}).
		Where("id = ?", rec.ID).
		Select("*").
		Omit("created_at").
		Updates(&rec)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("job not found")
	}
	return nil
}

func (i impl) GetByID(ctx context.Context, id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		WithContext(ctx).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(ctx context.Context, status models.JobStatus) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	tx := i.db.
		WithContext(ctx).
		Model(&dbmodels.Job{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(ctx context.Context, id string) (found bool, err error) {
	tx := i.db.
		WithContext(ctx).
		Where("id = ?", id).
		Delete(&dbmodels.Job{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected != 0, nil
}
