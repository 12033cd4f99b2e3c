package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationTransitions(t *testing.T) {
	t.Run(`full hiring path is legal for HR`, func(t *testing.T) {
		require.Nil(t, CanTransition(ApplicationStatusPending, ApplicationStatusInterview, UserRoleHr))
		require.Nil(t, CanTransition(ApplicationStatusInterview, ApplicationStatusOffer, UserRoleHr))
		require.Nil(t, CanTransition(ApplicationStatusOffer, ApplicationStatusHired, UserRoleHr))
	})

	t.Run(`admin may move like HR`, func(t *testing.T) {
		require.Nil(t, CanTransition(ApplicationStatusPending, ApplicationStatusRejected, UserRoleAdmin))
		require.Nil(t, CanTransition(ApplicationStatusOffer, ApplicationStatusHired, UserRoleAdmin))
	})

	t.Run(`stage skipping is refused`, func(t *testing.T) {
		require.NotNil(t, CanTransition(ApplicationStatusPending, ApplicationStatusOffer, UserRoleHr))
		require.NotNil(t, CanTransition(ApplicationStatusPending, ApplicationStatusHired, UserRoleHr))
		require.NotNil(t, CanTransition(ApplicationStatusInterview, ApplicationStatusHired, UserRoleAdmin))
	})

	t.Run(`no moves out of a terminal state`, func(t *testing.T) {
		for _, cur := range []ApplicationStatus{ApplicationStatusHired, ApplicationStatusRejected, ApplicationStatusWithdrawn} {
			require.True(t, cur.IsTerminal())
			require.NotNil(t, CanTransition(cur, ApplicationStatusInterview, UserRoleAdmin))
			require.NotNil(t, CanTransition(cur, ApplicationStatusPending, UserRoleAdmin))
		}
	})

	t.Run(`withdrawal belongs to the applicant only`, func(t *testing.T) {
		require.Nil(t, CanTransition(ApplicationStatusPending, ApplicationStatusWithdrawn, UserRoleApplicant))
		require.Nil(t, CanTransition(ApplicationStatusInterview, ApplicationStatusWithdrawn, UserRoleApplicant))
		require.NotNil(t, CanTransition(ApplicationStatusPending, ApplicationStatusWithdrawn, UserRoleHr))
		// after an offer the exit goes through a rejection, not a withdrawal
		require.NotNil(t, CanTransition(ApplicationStatusOffer, ApplicationStatusWithdrawn, UserRoleApplicant))
	})

	t.Run(`staff moves are closed to other roles`, func(t *testing.T) {
		require.NotNil(t, CanTransition(ApplicationStatusPending, ApplicationStatusInterview, UserRoleApplicant))
		require.NotNil(t, CanTransition(ApplicationStatusPending, ApplicationStatusInterview, UserRoleClient))
		require.NotNil(t, CanTransition(ApplicationStatusOffer, ApplicationStatusHired, UserRoleSales))
	})
}
