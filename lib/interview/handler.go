package interviewhandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-crm-backend/db"
	applicantstore "hr-crm-backend/lib/applicant/store"
	applicationstore "hr-crm-backend/lib/application/store"
	interviewstore "hr-crm-backend/lib/interview/store"
	"hr-crm-backend/lib/smtp"
	"hr-crm-backend/models"
	interviewapimodels "hr-crm-backend/models/api/interview"
	dbmodels "hr-crm-backend/models/db"
)

var (
	ErrInterviewNotFound = errors.New("interview not found")
	ErrNotOwner          = errors.New("interview belongs to another applicant")
)

type Provider interface {
	Schedule(request interviewapimodels.ScheduleRequest) (string, error)
	ChangeStatus(interviewID string, request interviewapimodels.StatusChangeRequest) error
	Confirm(authCtx models.AuthContext, interviewID string) error
	Reschedule(interviewID string, request interviewapimodels.RescheduleRequest) error
	Delete(interviewID string) error
	GetByID(interviewID string) (interviewapimodels.InterviewView, error)
	ListByApplication(applicationID string) ([]interviewapimodels.InterviewView, error)
	ListUpcoming(page, limit int) ([]interviewapimodels.InterviewView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            interviewstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		applicantStore:   applicantstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            interviewstore.Provider
	applicationStore applicationstore.Provider
	applicantStore   applicantstore.Provider
}

func (i impl) Schedule(request interviewapimodels.ScheduleRequest) (string, error) {
	application, err := i.applicationStore.GetByID(request.ApplicationID)
	if err != nil {
		log.WithField("application_id", request.ApplicationID).WithError(err).Error("failed to look up the application")
		return "", err
	}
	if application == nil {
		return "", errors.New("application not found")
	}
	if !application.IsActive() {
		return "", errors.New("the application is closed")
	}
	id, err := i.store.Create(dbmodels.Interview{
		ApplicationID: application.ID,
		ScheduledAt:   request.ScheduledAt,
		DurationMin:   request.DurationMin,
		Location:      request.Location,
		MeetingLink:   request.MeetingLink,
		Status:        models.InterviewStatusScheduled,
		Notes:         request.Notes,
	})
	if err != nil {
		log.WithField("application_id", request.ApplicationID).WithError(err).Error("failed to schedule the interview")
		return "", err
	}
	i.notifyApplicant(application, request.ScheduledAt, request.MeetingLink)
	return id, nil
}

func (i impl) ChangeStatus(interviewID string, request interviewapimodels.StatusChangeRequest) error {
	rec, err := i.getByID(interviewID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{"status": request.Status}
	if request.Notes != "" {
		updMap["notes"] = request.Notes
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		log.WithField("interview_id", interviewID).WithError(err).Error("failed to change the interview status")
	}
	return err
}

// Confirm is the applicant acknowledging a SCHEDULED interview.
func (i impl) Confirm(authCtx models.AuthContext, interviewID string) error {
	rec, err := i.getByID(interviewID)
	if err != nil {
		return err
	}
	profile, err := i.applicantStore.GetByUserID(authCtx.UserID)
	if err != nil {
		log.WithField("user_id", authCtx.UserID).WithError(err).Error("failed to look up the applicant profile")
		return err
	}
	if profile == nil || rec.Application == nil || rec.Application.ApplicantID != profile.ID {
		return ErrNotOwner
	}
	if rec.Status != models.InterviewStatusScheduled && rec.Status != models.InterviewStatusRescheduled {
		return errors.New("only a scheduled interview can be confirmed")
	}
	return i.store.Update(rec.ID, map[string]interface{}{"status": models.InterviewStatusConfirmed})
}

func (i impl) Reschedule(interviewID string, request interviewapimodels.RescheduleRequest) error {
	rec, err := i.getByID(interviewID)
	if err != nil {
		return err
	}
	err = i.store.Update(rec.ID, map[string]interface{}{
		"scheduled_at": request.ScheduledAt,
		"status":       models.InterviewStatusRescheduled,
	})
	if err != nil {
		log.WithField("interview_id", interviewID).WithError(err).Error("failed to reschedule the interview")
		return err
	}
	if rec.Application != nil {
		i.notifyApplicant(rec.Application, request.ScheduledAt, rec.MeetingLink)
	}
	return nil
}

func (i impl) Delete(interviewID string) error {
	rec, err := i.getByID(interviewID)
	if err != nil {
		return err
	}
	err = i.store.Delete(rec.ID)
	if err != nil {
		log.WithField("interview_id", interviewID).WithError(err).Error("failed to delete the interview")
	}
	return err
}

func (i impl) GetByID(interviewID string) (interviewapimodels.InterviewView, error) {
	rec, err := i.getByID(interviewID)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	return interviewapimodels.InterviewConvert(*rec), nil
}

func (i impl) ListByApplication(applicationID string) ([]interviewapimodels.InterviewView, error) {
	list, err := i.store.ListByApplication(applicationID)
	if err != nil {
		log.WithField("application_id", applicationID).WithError(err).Error("failed to list interviews")
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) ListUpcoming(page, limit int) ([]interviewapimodels.InterviewView, error) {
	list, err := i.store.ListUpcoming(page, limit)
	if err != nil {
		log.WithError(err).Error("failed to list upcoming interviews")
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) getByID(interviewID string) (*dbmodels.Interview, error) {
	rec, err := i.store.GetByID(interviewID)
	if err != nil {
		log.WithField("interview_id", interviewID).WithError(err).Error("failed to look up the interview")
		return nil, err
	}
	if rec == nil {
		return nil, ErrInterviewNotFound
	}
	return rec, nil
}

func (i impl) notifyApplicant(application *dbmodels.JobApplication, at time.Time, meetingLink string) {
	if application.Applicant == nil || application.Applicant.User == nil {
		return
	}
	user := application.Applicant.User
	message := fmt.Sprintf("Your interview is scheduled for %s.", at.Format("02 Jan 2006 15:04 MST"))
	if meetingLink != "" {
		message += fmt.Sprintf(" Meeting link: %s", meetingLink)
	}
	if err := smtp.Instance.SendEMail(user.Email, "Interview scheduled", message); err != nil {
		log.WithField("application_id", application.ID).WithError(err).Error("failed to notify the applicant about the interview")
	}
}

func convertList(list []dbmodels.Interview) []interviewapimodels.InterviewView {
	result := make([]interviewapimodels.InterviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, interviewapimodels.InterviewConvert(rec))
	}
	return result
}
