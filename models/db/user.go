package dbmodels

import (
	"fmt"
	"time"

	"hr-crm-backend/models"
)

type User struct {
	BaseModel
	Email       string            `gorm:"type:varchar(255);uniqueIndex"`
	Password    string            `gorm:"type:varchar(128)"`
	FirstName   string            `gorm:"type:varchar(150)"`
	LastName    string            `gorm:"type:varchar(150)"`
	PhoneNumber string            `gorm:"type:varchar(20)"`
	Role        models.UserRole   `gorm:"type:varchar(50)"`
	Status      models.UserStatus `gorm:"type:varchar(50)"`
	LastLogin   time.Time
}

func (u User) GetFullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
