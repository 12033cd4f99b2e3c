package applicantstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "hr-crm-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApplicantProfile) (string, error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.ApplicantProfile, err error)
	GetByUserID(userID string) (rec *dbmodels.ApplicantProfile, err error)
	DeleteByUserID(userID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicantProfile) (string, error) {
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
		Model(&dbmodels.ApplicantProfile{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.ApplicantProfile, err error) {
	err = i.db.Model(dbmodels.ApplicantProfile{}).
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) GetByUserID(userID string) (rec *dbmodels.ApplicantProfile, err error) {
	err = i.db.Model(dbmodels.ApplicantProfile{}).
		Where("user_id = ?", userID).
		Preload(clause.Associations).
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

func (i impl) DeleteByUserID(userID string) error {
	return i.db.
		Where("user_id = ?", userID).
		Delete(&dbmodels.ApplicantProfile{}).
		Error
}
