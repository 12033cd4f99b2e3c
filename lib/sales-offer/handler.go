package salesofferhandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hr-crm-backend/db"
	applicantstore "hr-crm-backend/lib/applicant/store"
	applicationstore "hr-crm-backend/lib/application/store"
	salesofferstore "hr-crm-backend/lib/sales-offer/store"
	"hr-crm-backend/lib/smtp"
	"hr-crm-backend/models"
	offerapimodels "hr-crm-backend/models/api/offer"
	dbmodels "hr-crm-backend/models/db"
)

var (
	ErrOfferNotFound        = errors.New("offer not found")
	ErrApplicationNotOffer  = errors.New("the application is not at the offer stage")
	ErrNotOwner             = errors.New("offer belongs to another applicant")
	ErrOfferAlreadyAnswered = errors.New("the offer was already answered")
)

type Provider interface {
	Create(authCtx models.AuthContext, request offerapimodels.CreateRequest) (string, error)
	ApplicantResponse(authCtx models.AuthContext, offerID string, request offerapimodels.ApplicantResponseRequest) error
	SalesReview(authCtx models.AuthContext, offerID string, request offerapimodels.SalesReviewRequest) error
	GetByID(offerID string) (offerapimodels.OfferView, error)
	List(filter offerapimodels.OfferFilter) ([]offerapimodels.OfferView, int64, error)
	ListMy(authCtx models.AuthContext) ([]offerapimodels.OfferView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          salesofferstore.NewInstance(db.DB),
		applicantStore: applicantstore.NewInstance(db.DB),
	}
}

type impl struct {
	store          salesofferstore.Provider
	applicantStore applicantstore.Provider
}

// Create extends a monetary offer against an application at the OFFER stage.
// The stage check and the insert run in one transaction so two concurrent
// sales calls can not both observe a stale stage.
func (i impl) Create(authCtx models.AuthContext, request offerapimodels.CreateRequest) (string, error) {
	var offerID string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		application, err := applicationstore.NewInstance(tx).GetByID(request.ApplicationID)
		if err != nil {
			return err
		}
		if application == nil {
			return errors.New("application not found")
		}
		if application.Status != models.ApplicationStatusOffer {
			return ErrApplicationNotOffer
		}
		txStore := salesofferstore.NewInstance(tx)
		var superseded *dbmodels.SalesOffer
		if request.SupersedesID != "" {
			superseded, err = txStore.GetByID(request.SupersedesID)
			if err != nil {
				return err
			}
			if superseded == nil {
				return errors.New("superseded offer not found")
			}
		}
		offerID, err = txStore.Create(dbmodels.SalesOffer{
			ApplicationID: application.ID,
			ApplicantID:   application.ApplicantID,
			JobID:         application.JobID,
			CreatedByID:   authCtx.UserID,
			Value:         request.Value,
			Currency:      request.Currency,
			Status:        models.OfferStatusPending,
		})
		if err != nil {
			return err
		}
		if superseded != nil {
			upd, err := superseded.SetNewOffer(offerID)
			if err != nil {
				return err
			}
			return txStore.Update(superseded.ID, map[string]interface{}{"sales_new_offer_id": upd.SalesNewOfferID})
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrApplicationNotOffer) {
			log.WithField("application_id", request.ApplicationID).WithError(err).Error("failed to create the offer")
		}
		return "", err
	}
	i.notifyApplicant(request.ApplicationID, request.Value, request.Currency)
	return offerID, nil
}

func (i impl) ApplicantResponse(authCtx models.AuthContext, offerID string, request offerapimodels.ApplicantResponseRequest) error {
	rec, err := i.getByID(offerID)
	if err != nil {
		return err
	}
	profile, err := i.applicantStore.GetByUserID(authCtx.UserID)
	if err != nil {
		log.WithField("user_id", authCtx.UserID).WithError(err).Error("failed to look up the applicant profile")
		return err
	}
	if profile == nil || profile.ID != rec.ApplicantID {
		return ErrNotOwner
	}
	upd, err := rec.ApplyApplicantResponse(request.Response, request.Notes)
	if err != nil {
		return err
	}
	// conditional write: a concurrent answer that slipped past the guard
	// above matches zero rows instead of overwriting the first one
	updated, err := i.store.RecordApplicantResponse(rec.ID, map[string]interface{}{
		"status":             upd.Status,
		"applicant_response": upd.ApplicantResponse,
		"applicant_notes":    upd.ApplicantNotes,
		"sales_response":     upd.SalesResponse,
	})
	if err != nil {
		log.WithField("offer_id", offerID).WithError(err).Error("failed to record the applicant response")
		return err
	}
	if !updated {
		return ErrOfferAlreadyAnswered
	}
	return nil
}

func (i impl) SalesReview(authCtx models.AuthContext, offerID string, request offerapimodels.SalesReviewRequest) error {
	rec, err := i.getByID(offerID)
	if err != nil {
		return err
	}
	upd, err := rec.ApplySalesReview(request.Response)
	if err != nil {
		return err
	}
	updated, err := i.store.RecordSalesReview(rec.ID, map[string]interface{}{
		"status":         upd.Status,
		"sales_response": upd.SalesResponse,
	})
	if err != nil {
		log.WithField("offer_id", offerID).WithError(err).Error("failed to record the sales review")
		return err
	}
	if !updated {
		return ErrOfferAlreadyAnswered
	}
	return nil
}

func (i impl) GetByID(offerID string) (offerapimodels.OfferView, error) {
	rec, err := i.getByID(offerID)
	if err != nil {
		return offerapimodels.OfferView{}, err
	}
	return offerapimodels.OfferConvert(*rec), nil
}

func (i impl) List(filter offerapimodels.OfferFilter) ([]offerapimodels.OfferView, int64, error) {
	list, rowCount, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("failed to list offers")
		return nil, 0, err
	}
	result := make([]offerapimodels.OfferView, 0, len(list))
	for _, rec := range list {
		result = append(result, offerapimodels.OfferConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) ListMy(authCtx models.AuthContext) ([]offerapimodels.OfferView, error) {
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
		log.WithError(err).Error("failed to list applicant offers")
		return nil, err
	}
	result := make([]offerapimodels.OfferView, 0, len(list))
	for _, rec := range list {
		result = append(result, offerapimodels.OfferConvert(rec))
	}
	return result, nil
}

func (i impl) getByID(offerID string) (*dbmodels.SalesOffer, error) {
	rec, err := i.store.GetByID(offerID)
	if err != nil {
		log.WithField("offer_id", offerID).WithError(err).Error("failed to look up the offer")
		return nil, err
	}
	if rec == nil {
		return nil, ErrOfferNotFound
	}
	return rec, nil
}

// notifyApplicant mails the applicant about the new offer, best effort.
func (i impl) notifyApplicant(applicationID string, value float64, currency string) {
	application, err := applicationstore.NewInstance(db.DB).GetByID(applicationID)
	if err != nil || application == nil || application.Applicant == nil || application.Applicant.User == nil {
		return
	}
	user := application.Applicant.User
	message := fmt.Sprintf("You have received an offer of %.2f %s. Please respond in your dashboard.", value, currency)
	if err := smtp.Instance.SendEMail(user.Email, "New offer", message); err != nil {
		log.WithField("application_id", applicationID).WithError(err).Error("failed to notify the applicant about the offer")
	}
}
