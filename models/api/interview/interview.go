package interviewapimodels

import (
	"time"

	"github.com/pkg/errors"

	"hr-crm-backend/models"
	dbmodels "hr-crm-backend/models/db"
)

type ScheduleRequest struct {
	ApplicationID string    `json:"application_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	DurationMin   int       `json:"duration_min"`
	Location      string    `json:"location"`
	MeetingLink   string    `json:"meeting_link"`
	Notes         string    `json:"notes"`
}

func (r ScheduleRequest) Validate() error {
	if r.ApplicationID == "" {
		return errors.New("application id is required")
	}
	if r.ScheduledAt.IsZero() {
		return errors.New("interview time is required")
	}
	if r.DurationMin <= 0 {
		return errors.New("interview duration must be positive")
	}
	return nil
}

type StatusChangeRequest struct {
	Status models.InterviewStatus `json:"status"`
	Notes  string                 `json:"notes"`
}

func (r StatusChangeRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("unknown interview status")
	}
	return nil
}

type RescheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at"`
}

func (r RescheduleRequest) Validate() error {
	if r.ScheduledAt.IsZero() {
		return errors.New("new interview time is required")
	}
	return nil
}

type InterviewView struct {
	ID            string `json:"id"`
	ApplicationID string `json:"application_id"`
	ApplicantName string `json:"applicant_name"`
	JobTitle      string `json:"job_title"`
	ScheduledAt   string `json:"scheduled_at"`
	DurationMin   int    `json:"duration_min"`
	Location      string `json:"location"`
	MeetingLink   string `json:"meeting_link"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
}

func InterviewConvert(rec dbmodels.Interview) InterviewView {
	view := InterviewView{
		ID:            rec.ID,
		ApplicationID: rec.ApplicationID,
		ScheduledAt:   rec.ScheduledAt.Format(time.RFC3339),
		DurationMin:   rec.DurationMin,
		Location:      rec.Location,
		MeetingLink:   rec.MeetingLink,
		Status:        string(rec.Status),
		Notes:         rec.Notes,
	}
	if rec.Application != nil {
		if rec.Application.Job != nil {
			view.JobTitle = rec.Application.Job.Title
		}
		if rec.Application.Applicant != nil && rec.Application.Applicant.User != nil {
			view.ApplicantName = rec.Application.Applicant.User.GetFullName()
		}
	}
	return view
}
