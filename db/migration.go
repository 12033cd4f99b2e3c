package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "hr-crm-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	for _, model := range []interface{}{
		&dbmodels.User{},
		&dbmodels.ApplicantProfile{},
		&dbmodels.ClientProfile{},
		&dbmodels.Job{},
		&dbmodels.JobApplication{},
		&dbmodels.ApplicationTimeline{},
		&dbmodels.Interview{},
		&dbmodels.SalesOffer{},
		&dbmodels.Contract{},
		&dbmodels.FileStorage{},
	} {
		if err := DB.AutoMigrate(model); err != nil {
			return errors.Wrapf(err, "migration failed for %T", model)
		}
	}
	log.Info("migrations finished")
	return nil
}
