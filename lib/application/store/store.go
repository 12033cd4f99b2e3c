package applicationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hr-crm-backend/models"
	applicationapimodels "hr-crm-backend/models/api/application"
	dbmodels "hr-crm-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.JobApplication) (string, error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.JobApplication, err error)
	List(filter applicationapimodels.ApplicationFilter) (list []dbmodels.JobApplication, rowCount int64, err error)
	ListByApplicant(applicantID string) (list []dbmodels.JobApplication, err error)
	CountActiveByJobAndApplicant(jobID, applicantID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobApplication) (string, error) {
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
		Model(&dbmodels.JobApplication{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.JobApplication, err error) {
	err = i.db.Model(dbmodels.JobApplication{}).
		Where("id = ?", id).
		Preload("Job").
		Preload("Applicant").
		Preload("Applicant.User").
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

func (i impl) List(filter applicationapimodels.ApplicationFilter) (list []dbmodels.JobApplication, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.JobApplication{})
	if filter.JobID != "" {
		tx = tx.Where("job_id = ?", filter.JobID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	setPage(tx, filter.Page, filter.Limit)
	err = tx.
		Preload("Job").
		Preload("Applicant").
		Preload("Applicant.User").
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

func (i impl) ListByApplicant(applicantID string) (list []dbmodels.JobApplication, err error) {
	err = i.db.Model(dbmodels.JobApplication{}).
		Where("applicant_id = ?", applicantID).
		Preload(clause.Associations).
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

// CountActiveByJobAndApplicant counts the applicant's non-withdrawn
// applications on the job.
func (i impl) CountActiveByJobAndApplicant(jobID, applicantID string) (count int64, err error) {
	err = i.db.Model(dbmodels.JobApplication{}).
		Where("job_id = ? AND applicant_id = ? AND status <> ?", jobID, applicantID, models.ApplicationStatusWithdrawn).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func setPage(tx *gorm.DB, pageValue, limitValue int) {
	page := 1
	limit := 10
	if pageValue > 0 {
		page = pageValue
	}
	if limitValue > 0 {
		limit = limitValue
	}
	if limit > 100 {
		limit = 100
	}
	tx.Limit(limit).Offset((page - 1) * limit)
}
