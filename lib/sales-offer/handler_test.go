package salesofferhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	salesofferstore "hr-crm-backend/lib/sales-offer/store"
	"hr-crm-backend/models"
	offerapimodels "hr-crm-backend/models/api/offer"
	dbmodels "hr-crm-backend/models/db"
)

type fakeOfferStore struct {
	salesofferstore.Provider
	offer       dbmodels.SalesOffer
	raceWinner  bool
	responseUpd map[string]interface{}
	reviewUpd   map[string]interface{}
}

func (f *fakeOfferStore) GetByID(string) (*dbmodels.SalesOffer, error) {
	rec := f.offer
	return &rec, nil
}

func (f *fakeOfferStore) RecordApplicantResponse(_ string, updMap map[string]interface{}) (bool, error) {
	f.responseUpd = updMap
	return !f.raceWinner, nil
}

func (f *fakeOfferStore) RecordSalesReview(_ string, updMap map[string]interface{}) (bool, error) {
	f.reviewUpd = updMap
	return !f.raceWinner, nil
}

type fakeApplicantStore struct {
	profile dbmodels.ApplicantProfile
}

func (f *fakeApplicantStore) Create(dbmodels.ApplicantProfile) (string, error) { return "", nil }
func (f *fakeApplicantStore) Update(string, map[string]interface{}) error      { return nil }
func (f *fakeApplicantStore) GetByID(string) (*dbmodels.ApplicantProfile, error) {
	return &f.profile, nil
}
func (f *fakeApplicantStore) GetByUserID(string) (*dbmodels.ApplicantProfile, error) {
	return &f.profile, nil
}
func (f *fakeApplicantStore) DeleteByUserID(string) error { return nil }

func newPendingOfferHandler(raceWinner bool, offer dbmodels.SalesOffer) (impl, *fakeOfferStore) {
	store := &fakeOfferStore{offer: offer, raceWinner: raceWinner}
	profile := dbmodels.ApplicantProfile{}
	profile.ID = offer.ApplicantID
	return impl{
		store:          store,
		applicantStore: &fakeApplicantStore{profile: profile},
	}, store
}

func TestOfferResponseRaces(t *testing.T) {
	authCtx := models.AuthContext{UserID: "user-1", Role: models.UserRoleApplicant}
	pending := dbmodels.SalesOffer{
		ApplicantID: "applicant-1",
		Status:      models.OfferStatusPending,
	}
	pending.ID = "offer-1"

	t.Run(`a response that wins the write resolves the offer`, func(t *testing.T) {
		handler, store := newPendingOfferHandler(false, pending)
		err := handler.ApplicantResponse(authCtx, pending.ID, offerapimodels.ApplicantResponseRequest{
			Response: models.ApplicantResponseAccepted,
		})
		require.NoError(t, err)
		require.Equal(t, models.OfferStatusAccepted, store.responseUpd["status"])
	})

	t.Run(`a response that loses the write reports a conflict`, func(t *testing.T) {
		handler, _ := newPendingOfferHandler(true, pending)
		err := handler.ApplicantResponse(authCtx, pending.ID, offerapimodels.ApplicantResponseRequest{
			Response: models.ApplicantResponseRejected,
		})
		require.ErrorIs(t, err, ErrOfferAlreadyAnswered)
	})

	t.Run(`a review that loses the write reports a conflict`, func(t *testing.T) {
		rejected := pending
		rejected.ApplicantResponse = models.ApplicantResponseRejected
		rejected.SalesResponse = models.SalesResponsePending
		handler, _ := newPendingOfferHandler(true, rejected)
		err := handler.SalesReview(authCtx, rejected.ID, offerapimodels.SalesReviewRequest{
			Response: models.SalesResponseApproved,
		})
		require.ErrorIs(t, err, ErrOfferAlreadyAnswered)
	})
}
