package applicationhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hr-crm-backend/db"
	applicantstore "hr-crm-backend/lib/applicant/store"
	applicationstore "hr-crm-backend/lib/application/store"
	timelinestore "hr-crm-backend/lib/application/timeline-store"
	jobstore "hr-crm-backend/lib/job/store"
	"hr-crm-backend/models"
	applicationapimodels "hr-crm-backend/models/api/application"
	dbmodels "hr-crm-backend/models/db"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("you already have an active application for this job")
	ErrJobNotOpen          = errors.New("the job is not open for applications")
	ErrNotOwner            = errors.New("application belongs to another applicant")
)

type Provider interface {
	Apply(authCtx models.AuthContext, request applicationapimodels.ApplyRequest) (string, error)
	ChangeStatus(authCtx models.AuthContext, applicationID string, request applicationapimodels.StatusChangeRequest) error
	Withdraw(authCtx models.AuthContext, applicationID string, notes string) error
	GetByID(applicationID string) (applicationapimodels.ApplicationView, error)
	List(filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error)
	ListMy(authCtx models.AuthContext) ([]applicationapimodels.ApplicationView, error)
	Timeline(applicationID string) ([]applicationapimodels.TimelineView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          applicationstore.NewInstance(db.DB),
		timelineStore:  timelinestore.NewInstance(db.DB),
		jobStore:       jobstore.NewInstance(db.DB),
		applicantStore: applicantstore.NewInstance(db.DB),
	}
}

type impl struct {
	store          applicationstore.Provider
	timelineStore  timelinestore.Provider
	jobStore       jobstore.Provider
	applicantStore applicantstore.Provider
}

// Apply creates a PENDING application. The open-job check and the
// one-active-application rule run inside one transaction so two concurrent
// submissions can not both pass the duplicate check.
func (i impl) Apply(authCtx models.AuthContext, request applicationapimodels.ApplyRequest) (string, error) {
	profile, err := i.applicantStore.GetByUserID(authCtx.UserID)
	if err != nil {
		log.WithField("user_id", authCtx.UserID).WithError(err).Error("failed to look up the applicant profile")
		return "", err
	}
	if profile == nil {
		return "", errors.New("applicant profile not found")
	}
	var applicationID string
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		job, err := jobstore.NewInstance(tx).GetByID(request.JobID)
		if err != nil {
			return err
		}
		if job == nil {
			return errors.New("job not found")
		}
		if !job.IsOpen() {
			return ErrJobNotOpen
		}
		txStore := applicationstore.NewInstance(tx)
		count, err := txStore.CountActiveByJobAndApplicant(request.JobID, profile.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyApplied
		}
		applicationID, err = txStore.Create(dbmodels.JobApplication{
			JobID:       request.JobID,
			ApplicantID: profile.ID,
			Status:      models.ApplicationStatusPending,
			CoverLetter: request.CoverLetter,
		})
		if err != nil {
			return err
		}
		return timelinestore.NewInstance(tx).Add(dbmodels.ApplicationTimeline{
			ApplicationID: applicationID,
			ActorID:       authCtx.UserID,
			ActorRole:     authCtx.Role,
			ToStatus:      models.ApplicationStatusPending,
			Notes:         "application submitted",
		})
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyApplied) && !errors.Is(err, ErrJobNotOpen) {
			log.WithField("job_id", request.JobID).WithError(err).Error("failed to create the application")
		}
		return "", err
	}
	return applicationID, nil
}

// ChangeStatus moves an application through the lifecycle. Legality of the
// move is decided by models.CanTransition only.
func (i impl) ChangeStatus(authCtx models.AuthContext, applicationID string, request applicationapimodels.StatusChangeRequest) error {
	rec, err := i.getByID(applicationID)
	if err != nil {
		return err
	}
	if err := models.CanTransition(rec.Status, request.Status, authCtx.Role); err != nil {
		return err
	}
	if authCtx.Role == models.UserRoleApplicant {
		if err := i.checkOwnership(authCtx, rec); err != nil {
			return err
		}
	}
	return i.applyTransition(authCtx, rec, request.Status, request.Notes)
}

// Withdraw is the applicant-initiated exit; it runs through the same table.
func (i impl) Withdraw(authCtx models.AuthContext, applicationID string, notes string) error {
	return i.ChangeStatus(authCtx, applicationID, applicationapimodels.StatusChangeRequest{
		Status: models.ApplicationStatusWithdrawn,
		Notes:  notes,
	})
}

func (i impl) GetByID(applicationID string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.getByID(applicationID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	return applicationapimodels.ApplicationConvert(*rec), nil
}

func (i impl) List(filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error) {
	list, rowCount, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("failed to list applications")
		return nil, 0, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.ApplicationConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) ListMy(authCtx models.AuthContext) ([]applicationapimodels.ApplicationView, error) {
	profile, err := i.applicantStore.GetByUserID(authCtx.UserID)
	if err != nil {
		log.WithField("user_id", authCtx.UserID).WithError(err).Error("failed to look up the applicant profile")
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("applicant profile not found")
	}
	list, err := i.store.ListByApplicant(profile.ID)
	if err != nil {
		log.WithError(err).Error("failed to list applicant applications")
		return nil, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.ApplicationConvert(rec))
	}
	return result, nil
}

func (i impl) Timeline(applicationID string) ([]applicationapimodels.TimelineView, error) {
	list, err := i.timelineStore.ListByApplication(applicationID)
	if err != nil {
		log.WithField("application_id", applicationID).WithError(err).Error("failed to load the application timeline")
		return nil, err
	}
	result := make([]applicationapimodels.TimelineView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.TimelineConvert(rec))
	}
	return result, nil
}

func (i impl) getByID(applicationID string) (*dbmodels.JobApplication, error) {
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		log.WithField("application_id", applicationID).WithError(err).Error("failed to look up the application")
		return nil, err
	}
	if rec == nil {
		return nil, ErrApplicationNotFound
	}
	return rec, nil
}

func (i impl) checkOwnership(authCtx models.AuthContext, rec *dbmodels.JobApplication) error {
	profile, err := i.applicantStore.GetByUserID(authCtx.UserID)
	if err != nil {
		return err
	}
	if profile == nil || profile.ID != rec.ApplicantID {
		return ErrNotOwner
	}
	return nil
}

// applyTransition writes the new status and the timeline record atomically.
// Hiring also closes the job.
func (i impl) applyTransition(authCtx models.AuthContext, rec *dbmodels.JobApplication, next models.ApplicationStatus, notes string) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		err := applicationstore.NewInstance(tx).Update(rec.ID, map[string]interface{}{"status": next})
		if err != nil {
			return err
		}
		if next == models.ApplicationStatusHired {
			err = jobstore.NewInstance(tx).Update(rec.JobID, map[string]interface{}{"status": models.JobStatusHired})
			if err != nil {
				return err
			}
		}
		return timelinestore.NewInstance(tx).Add(dbmodels.ApplicationTimeline{
			ApplicationID: rec.ID,
			ActorID:       authCtx.UserID,
			ActorRole:     authCtx.Role,
			FromStatus:    rec.Status,
			ToStatus:      next,
			Notes:         notes,
		})
	})
	if err != nil {
		log.
			WithField("application_id", rec.ID).
			WithField("status", next).
			WithError(err).
			Error("failed to change the application status")
	}
	return err
}
