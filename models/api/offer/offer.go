package offerapimodels

import (
	"github.com/pkg/errors"

	"hr-crm-backend/models"
	dbmodels "hr-crm-backend/models/db"
)

type CreateRequest struct {
	ApplicationID string  `json:"application_id"`
	Value         float64 `json:"value"`
	Currency      string  `json:"currency"`
	// SupersedesID links the new offer to a sales-approved one it replaces.
	SupersedesID string `json:"supersedes_id"`
}

func (r CreateRequest) Validate() error {
	if r.ApplicationID == "" {
		return errors.New("application id is required")
	}
	if r.Value <= 0 {
		return errors.New("offer value must be positive")
	}
	if r.Currency == "" {
		return errors.New("currency is required")
	}
	return nil
}

type ApplicantResponseRequest struct {
	Response models.ApplicantResponse `json:"response"`
	Notes    string                   `json:"notes"`
}

func (r ApplicantResponseRequest) Validate() error {
	if !r.Response.IsValid() {
		return errors.New("response must be ACCEPTED or REJECTED")
	}
	return nil
}

type SalesReviewRequest struct {
	Response models.SalesResponse `json:"response"`
}

func (r SalesReviewRequest) Validate() error {
	if !r.Response.IsResolution() {
		return errors.New("review must be APPROVED or REJECTED")
	}
	return nil
}

type OfferFilter struct {
	ApplicationID string             `json:"application_id"`
	Status        models.OfferStatus `json:"status"`
	Page          int                `json:"page"`
	Limit         int                `json:"limit"`
}

type OfferView struct {
	ID                string  `json:"id"`
	ApplicationID     string  `json:"application_id"`
	ApplicantID       string  `json:"applicant_id"`
	JobID             string  `json:"job_id"`
	Value             float64 `json:"value"`
	Currency          string  `json:"currency"`
	Status            string  `json:"status"`
	ApplicantResponse string  `json:"applicant_response,omitempty"`
	ApplicantNotes    string  `json:"applicant_notes,omitempty"`
	SalesResponse     string  `json:"sales_response,omitempty"`
	SalesNewOfferID   string  `json:"sales_new_offer_id,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

func OfferConvert(rec dbmodels.SalesOffer) OfferView {
	return OfferView{
		ID:                rec.ID,
		ApplicationID:     rec.ApplicationID,
		ApplicantID:       rec.ApplicantID,
		JobID:             rec.JobID,
		Value:             rec.Value,
		Currency:          rec.Currency,
		Status:            string(rec.Status),
		ApplicantResponse: string(rec.ApplicantResponse),
		ApplicantNotes:    rec.ApplicantNotes,
		SalesResponse:     string(rec.SalesResponse),
		SalesNewOfferID:   rec.SalesNewOfferID,
		CreatedAt:         rec.CreatedAt.Format("2006-01-02"),
	}
}
