package contractstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	contractapimodels "hr-crm-backend/models/api/contract"
	dbmodels "hr-crm-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Contract) (string, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.Contract, err error)
	GetByApplication(applicationID string) (rec *dbmodels.Contract, err error)
	List(filter contractapimodels.ContractFilter) (list []dbmodels.Contract, rowCount int64, err error)
	ListByParty(column, partyID string) (list []dbmodels.Contract, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Contract) (string, error) {
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
		Model(&dbmodels.Contract{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Contract{}).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.Contract, err error) {
	err = i.db.Model(dbmodels.Contract{}).
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

func (i impl) GetByApplication(applicationID string) (rec *dbmodels.Contract, err error) {
	err = i.db.Model(dbmodels.Contract{}).
		Where("application_id = ?", applicationID).
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

func (i impl) List(filter contractapimodels.ContractFilter) (list []dbmodels.Contract, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Contract{})
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

// ListByParty lists contracts where the given column (client_id or
// applicant_id) matches the party.
func (i impl) ListByParty(column, partyID string) (list []dbmodels.Contract, err error) {
	if column != "client_id" && column != "applicant_id" {
		return nil, errors.Errorf("unsupported party column %q", column)
	}
	err = i.db.Model(dbmodels.Contract{}).
		Where(column+" = ?", partyID).
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
