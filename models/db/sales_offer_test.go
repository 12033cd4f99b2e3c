package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-crm-backend/models"
)

func newPendingOffer() SalesOffer {
	return SalesOffer{
		Value:    120000,
		Currency: "EUR",
		Status:   models.OfferStatusPending,
	}
}

func TestSalesOfferNegotiation(t *testing.T) {
	t.Run(`acceptance resolves the offer`, func(t *testing.T) {
		offer, err := newPendingOffer().ApplyApplicantResponse(models.ApplicantResponseAccepted, "")
		require.Nil(t, err)
		require.Equal(t, models.OfferStatusAccepted, offer.Status)
		require.Equal(t, models.ApplicantResponseAccepted, offer.ApplicantResponse)

		_, err = offer.ApplyApplicantResponse(models.ApplicantResponseRejected, "changed my mind")
		require.NotNil(t, err)
	})

	t.Run(`rejection escalates to sales instead of closing`, func(t *testing.T) {
		offer, err := newPendingOffer().ApplyApplicantResponse(models.ApplicantResponseRejected, "salary too low")
		require.Nil(t, err)
		require.Equal(t, models.OfferStatusPending, offer.Status)
		require.Equal(t, models.SalesResponsePending, offer.SalesResponse)
		require.Equal(t, "salary too low", offer.ApplicantNotes)
	})

	t.Run(`sales approval opens the door for a new offer`, func(t *testing.T) {
		offer, err := newPendingOffer().ApplyApplicantResponse(models.ApplicantResponseRejected, "")
		require.Nil(t, err)
		offer, err = offer.ApplySalesReview(models.SalesResponseApproved)
		require.Nil(t, err)
		require.Equal(t, models.OfferStatusSalesApproved, offer.Status)

		offer, err = offer.SetNewOffer("offer-2")
		require.Nil(t, err)
		require.Equal(t, "offer-2", offer.SalesNewOfferID)

		_, err = offer.SetNewOffer("offer-3")
		require.NotNil(t, err)
	})

	t.Run(`sales rejection is terminal`, func(t *testing.T) {
		offer, err := newPendingOffer().ApplyApplicantResponse(models.ApplicantResponseRejected, "")
		require.Nil(t, err)
		offer, err = offer.ApplySalesReview(models.SalesResponseRejected)
		require.Nil(t, err)
		require.Equal(t, models.OfferStatusSalesRejected, offer.Status)
		require.True(t, offer.Status.IsTerminal())

		_, err = offer.ApplySalesReview(models.SalesResponseApproved)
		require.NotNil(t, err)
		_, err = offer.SetNewOffer("offer-2")
		require.NotNil(t, err)
	})

	t.Run(`review without a prior rejection is refused`, func(t *testing.T) {
		_, err := newPendingOffer().ApplySalesReview(models.SalesResponseApproved)
		require.NotNil(t, err)

		accepted, err := newPendingOffer().ApplyApplicantResponse(models.ApplicantResponseAccepted, "")
		require.Nil(t, err)
		_, err = accepted.ApplySalesReview(models.SalesResponseRejected)
		require.NotNil(t, err)
	})

	t.Run(`invalid answers are refused`, func(t *testing.T) {
		_, err := newPendingOffer().ApplyApplicantResponse("MAYBE", "")
		require.NotNil(t, err)
		rejected, err := newPendingOffer().ApplyApplicantResponse(models.ApplicantResponseRejected, "")
		require.Nil(t, err)
		_, err = rejected.ApplySalesReview(models.SalesResponsePending)
		require.NotNil(t, err)
	})
}

func TestContractGuards(t *testing.T) {
	t.Run(`commission is a share of the value`, func(t *testing.T) {
		c := Contract{Value: 50000, CommissionRate: 0.15}
		require.InDelta(t, 7500.0, c.Commission(), 0.001)
	})

	t.Run(`progress only grows inside the 0..100 range`, func(t *testing.T) {
		c := Contract{ProgressPercent: 40, Status: models.ContractStatusActive}
		require.Nil(t, c.IsAllowProgress(40))
		require.Nil(t, c.IsAllowProgress(75))
		require.NotNil(t, c.IsAllowProgress(39))
		require.NotNil(t, c.IsAllowProgress(-1))
		require.NotNil(t, c.IsAllowProgress(101))
	})

	t.Run(`terminal contracts stay put`, func(t *testing.T) {
		c := Contract{Status: models.ContractStatusCompleted}
		require.NotNil(t, c.IsAllowStatusChange(models.ContractStatusActive))
		active := Contract{Status: models.ContractStatusActive}
		require.Nil(t, active.IsAllowStatusChange(models.ContractStatusCompleted))
		require.NotNil(t, active.IsAllowStatusChange("UNKNOWN"))
	})
}
