package contracthandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-crm-backend/models"
)

func TestHireTransitionGuard(t *testing.T) {
	t.Run(`a contract may hire only from the offer stage`, func(t *testing.T) {
		require.Nil(t, models.CanTransition(models.ApplicationStatusOffer, models.ApplicationStatusHired, models.UserRoleHr))
		require.NotNil(t, models.CanTransition(models.ApplicationStatusPending, models.ApplicationStatusHired, models.UserRoleHr))
		require.NotNil(t, models.CanTransition(models.ApplicationStatusWithdrawn, models.ApplicationStatusHired, models.UserRoleHr))
	})

	t.Run(`creation failures carry stable messages`, func(t *testing.T) {
		require.EqualError(t, ErrNoAcceptedOffer, "the application has no accepted offer")
		require.EqualError(t, ErrContractExists, "the application already has a contract")
	})
}
