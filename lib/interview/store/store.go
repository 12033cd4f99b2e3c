package interviewstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-crm-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Interview) (string, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.Interview, err error)
	ListByApplication(applicationID string) (list []dbmodels.Interview, err error)
	ListUpcoming(page, limit int) (list []dbmodels.Interview, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Interview{}).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.Interview, err error) {
	err = i.db.Model(dbmodels.Interview{}).
		Where("id = ?", id).
		Preload("Application").
		Preload("Application.Job").
		Preload("Application.Applicant").
		Preload("Application.Applicant.User").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.Interview, err error) {
	err = i.db.Model(dbmodels.Interview{}).
		Where("application_id = ?", applicationID).
		Order("scheduled_at asc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListUpcoming(page, limit int) (list []dbmodels.Interview, err error) {
	tx := i.db.Model(dbmodels.Interview{}).
		Where("scheduled_at > now()").
		Order("scheduled_at asc")
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	tx.Limit(limit).Offset((page - 1) * limit)
	err = tx.
		Preload("Application").
		Preload("Application.Job").
		Preload("Application.Applicant").
		Preload("Application.Applicant.User").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
