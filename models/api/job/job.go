package jobapimodels

import (
	"github.com/pkg/errors"

	"hr-crm-backend/models"
	dbmodels "hr-crm-backend/models/db"
)

type JobData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	SalaryFrom  int    `json:"salary_from"`
	SalaryTo    int    `json:"salary_to"`
	Currency    string `json:"currency"`
}

func (r JobData) Validate() error {
	if r.Title == "" {
		return errors.New("job title is required")
	}
	if r.SalaryFrom < 0 || r.SalaryTo < 0 {
		return errors.New("salary must not be negative")
	}
	if r.SalaryTo != 0 && r.SalaryTo < r.SalaryFrom {
		return errors.New("salary range is inverted")
	}
	return nil
}

type JobStatusRequest struct {
	Status models.JobStatus `json:"status"`
}

func (r JobStatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("unknown job status")
	}
	return nil
}

type JobFilter struct {
	Status models.JobStatus `json:"status"`
	Search string           `json:"search"`
	Page   int              `json:"page"`
	Limit  int              `json:"limit"`
}

type JobView struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id"`
	CompanyName string `json:"company_name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	SalaryFrom  int    `json:"salary_from"`
	SalaryTo    int    `json:"salary_to"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

func JobConvert(rec dbmodels.Job) JobView {
	view := JobView{
		ID:          rec.ID,
		ClientID:    rec.ClientID,
		Title:       rec.Title,
		Description: rec.Description,
		Location:    rec.Location,
		SalaryFrom:  rec.SalaryFrom,
		SalaryTo:    rec.SalaryTo,
		Currency:    rec.Currency,
		Status:      string(rec.Status),
		CreatedAt:   rec.CreatedAt.Format("2006-01-02"),
	}
	if rec.Client != nil {
		view.CompanyName = rec.Client.CompanyName
	}
	return view
}

type GenDescriptionRequest struct {
	Text string `json:"text"`
}

func (r GenDescriptionRequest) Validate() error {
	if r.Text == "" {
		return errors.New("source text is required")
	}
	return nil
}

type GenDescriptionResponse struct {
	Description string `json:"description"`
}
