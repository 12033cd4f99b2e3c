package jobhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-crm-backend/db"
	clientstore "hr-crm-backend/lib/client/store"
	jobstore "hr-crm-backend/lib/job/store"
	"hr-crm-backend/models"
	jobapimodels "hr-crm-backend/models/api/job"
	dbmodels "hr-crm-backend/models/db"
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrNotOwner    = errors.New("job belongs to another client")
)

type Provider interface {
	Create(authCtx models.AuthContext, request jobapimodels.JobData) (string, error)
	Update(authCtx models.AuthContext, jobID string, request jobapimodels.JobData) error
	Delete(authCtx models.AuthContext, jobID string) error
	SetStatus(authCtx models.AuthContext, jobID string, status models.JobStatus) error
	GetByID(jobID string) (jobapimodels.JobView, error)
	List(filter jobapimodels.JobFilter) ([]jobapimodels.JobView, int64, error)
	ListOpen(filter jobapimodels.JobFilter) ([]jobapimodels.JobView, int64, error)
	ListMy(authCtx models.AuthContext, page, limit int) ([]jobapimodels.JobView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       jobstore.NewInstance(db.DB),
		clientStore: clientstore.NewInstance(db.DB),
	}
}

type impl struct {
	store       jobstore.Provider
	clientStore clientstore.Provider
}

func (i impl) Create(authCtx models.AuthContext, request jobapimodels.JobData) (string, error) {
	rec := dbmodels.Job{
		Title:       request.Title,
		Description: request.Description,
		Location:    request.Location,
		SalaryFrom:  request.SalaryFrom,
		SalaryTo:    request.SalaryTo,
		Currency:    request.Currency,
		Status:      models.JobStatusOpen,
	}
	if authCtx.Role == models.UserRoleClient {
		profile, err := i.clientStore.GetByUserID(authCtx.UserID)
		if err != nil {
			log.WithField("user_id", authCtx.UserID).WithError(err).Error("failed to look up the client profile")
			return "", err
		}
		if profile == nil {
			return "", errors.New("client profile not found")
		}
		rec.ClientID = profile.ID
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to create the job")
		return "", err
	}
	return id, nil
}

func (i impl) Update(authCtx models.AuthContext, jobID string, request jobapimodels.JobData) error {
	rec, err := i.getOwned(authCtx, jobID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"title":       request.Title,
		"description": request.Description,
		"location":    request.Location,
		"salary_from": request.SalaryFrom,
		"salary_to":   request.SalaryTo,
		"currency":    request.Currency,
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		log.WithField("job_id", jobID).WithError(err).Error("failed to update the job")
		return err
	}
	return nil
}

func (i impl) Delete(authCtx models.AuthContext, jobID string) error {
	rec, err := i.getOwned(authCtx, jobID)
	if err != nil {
		return err
	}
	err = i.store.Delete(rec.ID)
	if err != nil {
		log.WithField("job_id", jobID).WithError(err).Error("failed to delete the job")
		return err
	}
	return nil
}

func (i impl) SetStatus(authCtx models.AuthContext, jobID string, status models.JobStatus) error {
	rec, err := i.getOwned(authCtx, jobID)
	if err != nil {
		return err
	}
	if rec.Status == status {
		return nil
	}
	return i.store.Update(rec.ID, map[string]interface{}{"status": status})
}

func (i impl) GetByID(jobID string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(jobID)
	if err != nil {
		log.WithField("job_id", jobID).WithError(err).Error("failed to look up the job")
		return jobapimodels.JobView{}, err
	}
	if rec == nil {
		return jobapimodels.JobView{}, ErrJobNotFound
	}
	return jobapimodels.JobConvert(*rec), nil
}

func (i impl) List(filter jobapimodels.JobFilter) ([]jobapimodels.JobView, int64, error) {
	list, rowCount, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("failed to list jobs")
		return nil, 0, err
	}
	return convertList(list), rowCount, nil
}

// ListOpen is the applicant-facing listing: only OPEN jobs regardless of the
// requested filter.
func (i impl) ListOpen(filter jobapimodels.JobFilter) ([]jobapimodels.JobView, int64, error) {
	filter.Status = models.JobStatusOpen
	return i.List(filter)
}

func (i impl) ListMy(authCtx models.AuthContext, page, limit int) ([]jobapimodels.JobView, error) {
	profile, err := i.clientStore.GetByUserID(authCtx.UserID)
	if err != nil {
		log.WithField("user_id", authCtx.UserID).WithError(err).Error("failed to look up the client profile")
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("client profile not found")
	}
	list, err := i.store.ListByClient(profile.ID, page, limit)
	if err != nil {
		log.WithError(err).Error("failed to list client jobs")
		return nil, err
	}
	return convertList(list), nil
}

// getOwned loads the job and checks that a CLIENT caller owns it; staff roles
// may touch any job.
func (i impl) getOwned(authCtx models.AuthContext, jobID string) (*dbmodels.Job, error) {
	rec, err := i.store.GetByID(jobID)
	if err != nil {
		log.WithField("job_id", jobID).WithError(err).Error("failed to look up the job")
		return nil, err
	}
	if rec == nil {
		return nil, ErrJobNotFound
	}
	if authCtx.Role == models.UserRoleClient {
		profile, err := i.clientStore.GetByUserID(authCtx.UserID)
		if err != nil {
			return nil, err
		}
		if profile == nil || profile.ID != rec.ClientID {
			return nil, ErrNotOwner
		}
	}
	return rec, nil
}

func convertList(list []dbmodels.Job) []jobapimodels.JobView {
	result := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.JobConvert(rec))
	}
	return result
}
