package salesofferstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hr-crm-backend/models"
	offerapimodels "hr-crm-backend/models/api/offer"
	dbmodels "hr-crm-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.SalesOffer) (string, error)
	Update(id string, updMap map[string]interface{}) error
	RecordApplicantResponse(id string, updMap map[string]interface{}) (updated bool, err error)
	RecordSalesReview(id string, updMap map[string]interface{}) (updated bool, err error)
	GetByID(id string) (rec *dbmodels.SalesOffer, err error)
	List(filter offerapimodels.OfferFilter) (list []dbmodels.SalesOffer, rowCount int64, err error)
	ListByApplicant(applicantID string) (list []dbmodels.SalesOffer, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.SalesOffer) (string, error) {
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
		Model(&dbmodels.SalesOffer{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

// RecordApplicantResponse writes the applicant's answer only when none is
// recorded yet and the offer is still pending, so concurrent answers can not
// overwrite each other.
func (i impl) RecordApplicantResponse(id string, updMap map[string]interface{}) (updated bool, err error) {
	tx := i.db.
		Model(&dbmodels.SalesOffer{}).
		Where("id = ? AND applicant_response = '' AND status = ?", id, models.OfferStatusPending).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// RecordSalesReview resolves an escalated rejection only while the review is
// still pending.
func (i impl) RecordSalesReview(id string, updMap map[string]interface{}) (updated bool, err error) {
	tx := i.db.
		Model(&dbmodels.SalesOffer{}).
		Where("id = ? AND applicant_response = ? AND sales_response = ?",
			id, models.ApplicantResponseRejected, models.SalesResponsePending).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.SalesOffer, err error) {
	err = i.db.Model(dbmodels.SalesOffer{}).
		Where("id = ?", id).
		Preload("Application").
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

func (i impl) List(filter offerapimodels.OfferFilter) (list []dbmodels.SalesOffer, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.SalesOffer{})
	if filter.ApplicationID != "" {
		tx = tx.Where("application_id = ?", filter.ApplicationID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page := 1
	limit := 10
	if filter.Page > 0 {
		page = filter.Page
	}
	if filter.Limit > 0 && filter.Limit <= 100 {
		limit = filter.Limit
	}
	tx.Limit(limit).Offset((page - 1) * limit)
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListByApplicant(applicantID string) (list []dbmodels.SalesOffer, err error) {
	err = i.db.Model(dbmodels.SalesOffer{}).
		Where("applicant_id = ?", applicantID).
		Order("created_at desc").
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
