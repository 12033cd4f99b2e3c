package dbmodels

import (
	"hr-crm-backend/models"
)

// ApplicationTimeline is an append-only audit record of one status change:
// who moved the application, from where to where, and why.
type ApplicationTimeline struct {
	BaseModel
	ApplicationID string                   `gorm:"type:varchar(36);index"`
	ActorID       string                   `gorm:"type:varchar(36)"`
	ActorRole     models.UserRole          `gorm:"type:varchar(50)"`
	FromStatus    models.ApplicationStatus `gorm:"type:varchar(50)"`
	ToStatus      models.ApplicationStatus `gorm:"type:varchar(50)"`
	Notes         string
}
