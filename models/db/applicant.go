package dbmodels

import (
	"github.com/lib/pq"
)

// ApplicantProfile extends an APPLICANT user with resume data.
type ApplicantProfile struct {
	BaseModel
	UserID          string         `gorm:"type:varchar(36);uniqueIndex"`
	User            *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Skills          pq.StringArray `gorm:"type:text[]"`
	ExperienceYears int
	Education       string `gorm:"type:varchar(255)"`
	City            string `gorm:"type:varchar(255)"`
	About           string
	ResumeFileID    string `gorm:"type:varchar(36)"`
}
