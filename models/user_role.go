package models

type UserRole string

const (
	UserRoleAdmin     UserRole = "ADMIN"
	UserRoleHr        UserRole = "HR"
	UserRoleSales     UserRole = "SALES"
	UserRoleClient    UserRole = "CLIENT"
	UserRoleApplicant UserRole = "APPLICANT"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:     "Administrator",
	UserRoleHr:        "HR manager",
	UserRoleSales:     "Sales manager",
	UserRoleClient:    "Client",
	UserRoleApplicant: "Applicant",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

func (r UserRole) IsStaff() bool {
	return r == UserRoleAdmin || r == UserRoleHr || r == UserRoleSales
}

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
	UserStatusInactive  UserStatus = "INACTIVE"
)

func (s UserStatus) CanLogin() bool {
	return s == UserStatusActive
}

// AuthContext is the caller identity extracted from the JWT once per request
// and passed explicitly into every domain operation.
type AuthContext struct {
	UserID string
	Email  string
	Role   UserRole
}

func (a AuthContext) Is(roles ...UserRole) bool {
	for _, role := range roles {
		if a.Role == role {
			return true
		}
	}
	return false
}
