package analyticsstore

import (
	"gorm.io/gorm"

	"hr-crm-backend/models"
	reportapimodels "hr-crm-backend/models/api/report"
	dbmodels "hr-crm-backend/models/db"
)

type Provider interface {
	ApplicationsByStatus() ([]reportapimodels.StatusCount, error)
	ApplicationsByMonth() ([]reportapimodels.MonthCount, error)
	HiresByJob() ([]reportapimodels.JobHires, error)
	Revenue() ([]reportapimodels.RevenueRow, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ApplicationsByStatus() (rows []reportapimodels.StatusCount, err error) {
	err = i.db.Model(dbmodels.JobApplication{}).
		Select("status, count(*) as count").
		Group("status").
		Order("count desc").
		Scan(&rows).
		Error
	return rows, err
}

func (i impl) ApplicationsByMonth() (rows []reportapimodels.MonthCount, err error) {
	err = i.db.Model(dbmodels.JobApplication{}).
		Select("to_char(created_at, 'YYYY-MM') as month, count(*) as count").
		Group("month").
		Order("month asc").
		Scan(&rows).
		Error
	return rows, err
}

func (i impl) HiresByJob() (rows []reportapimodels.JobHires, err error) {
	err = i.db.Model(dbmodels.JobApplication{}).
		Select("job_applications.job_id as job_id, jobs.title as job_title, count(*) as hires").
		Joins("join jobs on jobs.id = job_applications.job_id").
		Where("job_applications.status = ?", models.ApplicationStatusHired).
		Group("job_applications.job_id, jobs.title").
		Order("hires desc").
		Scan(&rows).
		Error
	return rows, err
}

// Revenue sums contract value and commission per month and currency.
// Cancelled contracts are excluded.
func (i impl) Revenue() (rows []reportapimodels.RevenueRow, err error) {
	err = i.db.Model(dbmodels.Contract{}).
		Select("to_char(created_at, 'YYYY-MM') as month, currency, " +
			"sum(value) as revenue, sum(value * commission_rate) as commission, count(*) as contracts").
		Where("status <> ?", models.ContractStatusCancelled).
		Group("month, currency").
		Order("month asc, currency asc").
		Scan(&rows).
		Error
	return rows, err
}
