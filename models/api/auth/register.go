package authapimodels

import (
	"net/mail"

	"github.com/pkg/errors"

	"hr-crm-backend/models"
)

type RegisterRequest struct {
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	PhoneNumber string          `json:"phone_number"`
	Role        models.UserRole `json:"role"` // defaults to APPLICANT when empty
	CompanyName string          `json:"company_name"`
}

func (r RegisterRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("email has an invalid format")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("first and last name are required")
	}
	if r.Role != "" && !r.Role.IsValid() {
		return errors.New("unknown role")
	}
	if r.Role == models.UserRoleClient && r.CompanyName == "" {
		return errors.New("company name is required for a client account")
	}
	return nil
}

type UserView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	RoleName    string `json:"role_name"`
	Status      string `json:"status"`
}
