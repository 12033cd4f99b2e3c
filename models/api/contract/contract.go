package contractapimodels

import (
	"github.com/pkg/errors"

	"hr-crm-backend/models"
	dbmodels "hr-crm-backend/models/db"
)

type CreateRequest struct {
	ApplicationID  string  `json:"application_id"`
	Value          float64 `json:"value"`
	Currency       string  `json:"currency"`
	CommissionRate float64 `json:"commission_rate"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
}

func (r CreateRequest) Validate() error {
	if r.ApplicationID == "" {
		return errors.New("application id is required")
	}
	if r.Value <= 0 {
		return errors.New("contract value must be positive")
	}
	if r.Currency == "" {
		return errors.New("currency is required")
	}
	if r.CommissionRate < 0 || r.CommissionRate > 1 {
		return errors.New("commission rate must be between 0 and 1")
	}
	return nil
}

type StatusChangeRequest struct {
	Status models.ContractStatus `json:"status"`
}

func (r StatusChangeRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("unknown contract status")
	}
	return nil
}

type ProgressRequest struct {
	ProgressPercent int `json:"progress_percent"`
}

type ContractFilter struct {
	Status models.ContractStatus `json:"status"`
	Page   int                   `json:"page"`
	Limit  int                   `json:"limit"`
}

type ContractView struct {
	ID              string  `json:"id"`
	ApplicationID   string  `json:"application_id"`
	ClientID        string  `json:"client_id"`
	ApplicantID     string  `json:"applicant_id"`
	Value           float64 `json:"value"`
	Currency        string  `json:"currency"`
	CommissionRate  float64 `json:"commission_rate"`
	Commission      float64 `json:"commission"`
	Status          string  `json:"status"`
	ProgressPercent int     `json:"progress_percent"`
	HasDocument     bool    `json:"has_document"`
	StartDate       string  `json:"start_date,omitempty"`
	EndDate         string  `json:"end_date,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func ContractConvert(rec dbmodels.Contract) ContractView {
	return ContractView{
		ID:              rec.ID,
		ApplicationID:   rec.ApplicationID,
		ClientID:        rec.ClientID,
		ApplicantID:     rec.ApplicantID,
		Value:           rec.Value,
		Currency:        rec.Currency,
		CommissionRate:  rec.CommissionRate,
		Commission:      rec.Commission(),
		Status:          string(rec.Status),
		ProgressPercent: rec.ProgressPercent,
		HasDocument:     rec.DocumentFileID != "",
		StartDate:       rec.StartDate,
		EndDate:         rec.EndDate,
		CreatedAt:       rec.CreatedAt.Format("2006-01-02"),
	}
}
