package dbmodels

import (
	"hr-crm-backend/models"
)

// JobApplication tracks one applicant's candidacy for one job. Status moves
// only through models.CanTransition; an applicant holds at most one
// non-withdrawn application per job (checked at creation).
type JobApplication struct {
	BaseModel
	JobID       string                   `gorm:"type:varchar(36);index:idx_app_job"`
	Job         *Job                     `gorm:"foreignKey:JobID"`
	ApplicantID string                   `gorm:"type:varchar(36);index:idx_app_job"`
	Applicant   *ApplicantProfile        `gorm:"foreignKey:ApplicantID"`
	Status      models.ApplicationStatus `gorm:"type:varchar(50);index"`
	CoverLetter string
}

func (a JobApplication) IsActive() bool {
	return a.Status != models.ApplicationStatusWithdrawn
}
