package db

import (
	log "github.com/sirupsen/logrus"

	"hr-crm-backend/config"
	authutils "hr-crm-backend/lib/utils/auth-utils"
	"hr-crm-backend/models"
	dbmodels "hr-crm-backend/models/db"
)

// InitPreload seeds the initial administrator account when none exists.
func InitPreload() {
	if config.Conf.Admin.Email == "" || config.Conf.Admin.Password == "" {
		return
	}
	var count int64
	err := DB.Model(&dbmodels.User{}).
		Where("role = ?", models.UserRoleAdmin).
		Count(&count).
		Error
	if err != nil {
		log.WithError(err).Error("failed to check for an existing administrator")
		return
	}
	if count > 0 {
		return
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("failed to hash the administrator password")
		return
	}
	rec := dbmodels.User{
		Email:     config.Conf.Admin.Email,
		Password:  hash,
		FirstName: "System",
		LastName:  "Administrator",
		Role:      models.UserRoleAdmin,
		Status:    models.UserStatusActive,
	}
	if err := DB.Save(&rec).Error; err != nil {
		log.WithError(err).Error("failed to create the administrator account")
		return
	}
	log.WithField("email", rec.Email).Info("administrator account created")
}
