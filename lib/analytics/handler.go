package analyticshandler

import (
	"bytes"

	log "github.com/sirupsen/logrus"

	"hr-crm-backend/db"
	analyticsstore "hr-crm-backend/lib/analytics/store"
	xlsexport "hr-crm-backend/lib/export/xls"
	reportapimodels "hr-crm-backend/models/api/report"
)

type Provider interface {
	ApplicationsByStatus() ([]reportapimodels.StatusCount, error)
	ApplicationsByMonth() ([]reportapimodels.MonthCount, error)
	HiresByJob() ([]reportapimodels.JobHires, error)
	Revenue() (reportapimodels.RevenueReport, error)
	RevenueXLS() (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: analyticsstore.NewInstance(db.DB),
	}
}

type impl struct {
	store analyticsstore.Provider
}

func (i impl) ApplicationsByStatus() ([]reportapimodels.StatusCount, error) {
	rows, err := i.store.ApplicationsByStatus()
	if err != nil {
		log.WithError(err).Error("failed to build the applications-by-status report")
		return nil, err
	}
	return rows, nil
}

func (i impl) ApplicationsByMonth() ([]reportapimodels.MonthCount, error) {
	rows, err := i.store.ApplicationsByMonth()
	if err != nil {
		log.WithError(err).Error("failed to build the applications-by-month report")
		return nil, err
	}
	return rows, nil
}

func (i impl) HiresByJob() ([]reportapimodels.JobHires, error) {
	rows, err := i.store.HiresByJob()
	if err != nil {
		log.WithError(err).Error("failed to build the hires-by-job report")
		return nil, err
	}
	return rows, nil
}

func (i impl) Revenue() (reportapimodels.RevenueReport, error) {
	rows, err := i.store.Revenue()
	if err != nil {
		log.WithError(err).Error("failed to build the revenue report")
		return reportapimodels.RevenueReport{}, err
	}
	return reportapimodels.RevenueReport{Rows: rows}, nil
}

func (i impl) RevenueXLS() (*bytes.Buffer, error) {
	report, err := i.Revenue()
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportRevenueReport(report)
}
