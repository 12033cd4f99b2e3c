package authapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-crm-backend/models"
)

func validRegister() RegisterRequest {
	return RegisterRequest{
		Email:     "new.user@example.com",
		Password:  "long-enough-password",
		FirstName: "New",
		LastName:  "User",
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	t.Run(`valid request passes`, func(t *testing.T) {
		require.Nil(t, validRegister().Validate())
	})

	t.Run(`broken email is refused`, func(t *testing.T) {
		r := validRegister()
		r.Email = "not-an-email"
		require.NotNil(t, r.Validate())
	})

	t.Run(`short password is refused`, func(t *testing.T) {
		r := validRegister()
		r.Password = "short"
		require.NotNil(t, r.Validate())
	})

	t.Run(`unknown role is refused`, func(t *testing.T) {
		r := validRegister()
		r.Role = "SUPERUSER"
		require.NotNil(t, r.Validate())
	})

	t.Run(`client registration needs a company name`, func(t *testing.T) {
		r := validRegister()
		r.Role = models.UserRoleClient
		require.NotNil(t, r.Validate())
		r.CompanyName = "Acme GmbH"
		require.Nil(t, r.Validate())
	})
}
