package dbmodels

import (
	"hr-crm-backend/models"
)

type Job struct {
	BaseModel
	ClientID    string           `gorm:"type:varchar(36);index"`
	Client      *ClientProfile   `gorm:"foreignKey:ClientID"`
	Title       string           `gorm:"type:varchar(255)"`
	Description string
	Location    string           `gorm:"type:varchar(255)"`
	SalaryFrom  int
	SalaryTo    int
	Currency    string           `gorm:"type:varchar(10)"`
	Status      models.JobStatus `gorm:"type:varchar(50);index"`
}

func (j Job) IsOpen() bool {
	return j.Status == models.JobStatusOpen
}
