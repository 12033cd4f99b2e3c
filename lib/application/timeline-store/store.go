package timelinestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-crm-backend/models/db"
)

type Provider interface {
	Add(rec dbmodels.ApplicationTimeline) error
	ListByApplication(applicationID string) (list []dbmodels.ApplicationTimeline, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Add(rec dbmodels.ApplicationTimeline) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.ApplicationTimeline, err error) {
	err = i.db.Model(dbmodels.ApplicationTimeline{}).
		Where("application_id = ?", applicationID).
		Order("created_at asc").
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
