package applicationapimodels

import (
	"github.com/pkg/errors"

	"hr-crm-backend/models"
	dbmodels "hr-crm-backend/models/db"
)

type ApplyRequest struct {
	JobID       string `json:"job_id"`
	CoverLetter string `json:"cover_letter"`
}

func (r ApplyRequest) Validate() error {
	if r.JobID == "" {
		return errors.New("job id is required")
	}
	return nil
}

type StatusChangeRequest struct {
	Status models.ApplicationStatus `json:"status"`
	Notes  string                   `json:"notes"`
}

func (r StatusChangeRequest) Validate() error {
	if r.Status == "" {
		return errors.New("target status is required")
	}
	return nil
}

type WithdrawRequest struct {
	Notes string `json:"notes"`
}

type ApplicationFilter struct {
	JobID  string                   `json:"job_id"`
	Status models.ApplicationStatus `json:"status"`
	Page   int                      `json:"page"`
	Limit  int                      `json:"limit"`
}

type ApplicationView struct {
	ID            string `json:"id"`
	JobID         string `json:"job_id"`
	JobTitle      string `json:"job_title"`
	ApplicantID   string `json:"applicant_id"`
	ApplicantName string `json:"applicant_name"`
	Status        string `json:"status"`
	StatusName    string `json:"status_name"`
	CoverLetter   string `json:"cover_letter"`
	CreatedAt     string `json:"created_at"`
}

func ApplicationConvert(rec dbmodels.JobApplication) ApplicationView {
	view := ApplicationView{
		ID:          rec.ID,
		JobID:       rec.JobID,
		ApplicantID: rec.ApplicantID,
		Status:      string(rec.Status),
		StatusName:  rec.Status.ToHuman(),
		CoverLetter: rec.CoverLetter,
		CreatedAt:   rec.CreatedAt.Format("2006-01-02"),
	}
	if rec.Job != nil {
		view.JobTitle = rec.Job.Title
	}
	if rec.Applicant != nil && rec.Applicant.User != nil {
		view.ApplicantName = rec.Applicant.User.GetFullName()
	}
	return view
}

type TimelineView struct {
	ID         string `json:"id"`
	ActorID    string `json:"actor_id"`
	ActorRole  string `json:"actor_role"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func TimelineConvert(rec dbmodels.ApplicationTimeline) TimelineView {
	return TimelineView{
		ID:         rec.ID,
		ActorID:    rec.ActorID,
		ActorRole:  string(rec.ActorRole),
		FromStatus: string(rec.FromStatus),
		ToStatus:   string(rec.ToStatus),
		Notes:      rec.Notes,
		CreatedAt:  rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
