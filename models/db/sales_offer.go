package dbmodels

import (
	"github.com/pkg/errors"

	"hr-crm-backend/models"
)

// SalesOffer carries the two-party negotiation between the applicant and the
// sales team. The applicant answers first, exactly once; sales reviews only
// after an applicant rejection. Both rules are enforced here so every caller
// shares the same guards.
type SalesOffer struct {
	BaseModel
	ApplicationID     string                   `gorm:"type:varchar(36);index"`
	Application       *JobApplication          `gorm:"foreignKey:ApplicationID"`
	ApplicantID       string                   `gorm:"type:varchar(36);index"`
	JobID             string                   `gorm:"type:varchar(36)"`
	CreatedByID       string                   `gorm:"type:varchar(36)"`
	Value             float64
	Currency          string                   `gorm:"type:varchar(10)"`
	Status            models.OfferStatus       `gorm:"type:varchar(50);index"`
	ApplicantResponse models.ApplicantResponse `gorm:"type:varchar(50)"`
	ApplicantNotes    string
	SalesResponse     models.SalesResponse     `gorm:"type:varchar(50)"`
	SalesNewOfferID   string                   `gorm:"type:varchar(36)"`
}

// ApplyApplicantResponse records the applicant's answer and returns the
// updated record. A second response on the same offer is rejected.
func (o SalesOffer) ApplyApplicantResponse(resp models.ApplicantResponse, notes string) (SalesOffer, error) {
	if !resp.IsValid() {
		return o, errors.Errorf("unknown applicant response %q", resp)
	}
	if o.ApplicantResponse != "" {
		return o, errors.New("applicant response is already recorded for this offer")
	}
	if o.Status != models.OfferStatusPending {
		return o, errors.Errorf("offer is already resolved with status %s", o.Status)
	}
	o.ApplicantResponse = resp
	switch resp {
	case models.ApplicantResponseAccepted:
		o.Status = models.OfferStatusAccepted
	case models.ApplicantResponseRejected:
		// not terminal: the rejection escalates to sales for review
		o.SalesResponse = models.SalesResponsePending
		o.ApplicantNotes = notes
	}
	return o, nil
}

// ApplySalesReview resolves an escalated rejection. It is only legal after
// the applicant rejected and before sales answered.
func (o SalesOffer) ApplySalesReview(resp models.SalesResponse) (SalesOffer, error) {
	if !resp.IsResolution() {
		return o, errors.Errorf("unknown sales resolution %q", resp)
	}
	if o.ApplicantResponse != models.ApplicantResponseRejected {
		return o, errors.New("sales review requires a recorded applicant rejection")
	}
	if o.SalesResponse != models.SalesResponsePending {
		return o, errors.New("sales review is already recorded for this offer")
	}
	o.SalesResponse = resp
	switch resp {
	case models.SalesResponseApproved:
		o.Status = models.OfferStatusSalesApproved
	case models.SalesResponseRejected:
		o.Status = models.OfferStatusSalesRejected
	}
	return o, nil
}

// SetNewOffer links the superseding offer created after a sales approval.
func (o SalesOffer) SetNewOffer(newOfferID string) (SalesOffer, error) {
	if o.Status != models.OfferStatusSalesApproved {
		return o, errors.New("a superseding offer is only expected after a sales approval")
	}
	if o.SalesNewOfferID != "" {
		return o, errors.New("a superseding offer is already linked")
	}
	o.SalesNewOfferID = newOfferID
	return o, nil
}
