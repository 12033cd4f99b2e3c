package dbmodels

import (
	"time"

	"hr-crm-backend/models"
)

// Interview state is independent of the application machine; HR advances the
// application manually after reviewing the outcome.
type Interview struct {
	BaseModel
	ApplicationID string                 `gorm:"type:varchar(36);index"`
	Application   *JobApplication        `gorm:"foreignKey:ApplicationID"`
	ScheduledAt   time.Time
	DurationMin   int
	Location      string                 `gorm:"type:varchar(255)"`
	MeetingLink   string                 `gorm:"type:varchar(512)"`
	Status        models.InterviewStatus `gorm:"type:varchar(50);index"`
	Notes         string
}
