package dbmodels

import (
	"github.com/pkg/errors"

	"hr-crm-backend/models"
)

type Contract struct {
	BaseModel
	ApplicationID   string                `gorm:"type:varchar(36);index"`
	Application     *JobApplication       `gorm:"foreignKey:ApplicationID"`
	ClientID        string                `gorm:"type:varchar(36);index"`
	ApplicantID     string                `gorm:"type:varchar(36);index"`
	Value           float64
	Currency        string                `gorm:"type:varchar(10)"`
	CommissionRate  float64
	Status          models.ContractStatus `gorm:"type:varchar(50);index"`
	ProgressPercent int
	DocumentFileID  string                `gorm:"type:varchar(36)"`
	StartDate       string                `gorm:"type:varchar(10)"`
	EndDate         string                `gorm:"type:varchar(10)"`
}

func (c Contract) Commission() float64 {
	return c.Value * c.CommissionRate
}

func (c Contract) IsAllowStatusChange(newStatus models.ContractStatus) error {
	if !newStatus.IsValid() {
		return errors.Errorf("unknown contract status %q", newStatus)
	}
	if c.Status.IsTerminal() {
		return errors.Errorf("contract is already %s, no further changes allowed", c.Status)
	}
	return nil
}

func (c Contract) IsAllowProgress(percent int) error {
	if percent < 0 || percent > 100 {
		return errors.New("progress must be between 0 and 100")
	}
	if percent < c.ProgressPercent {
		return errors.New("progress can not decrease")
	}
	return nil
}
