package authhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hr-crm-backend/db"
	applicantstore "hr-crm-backend/lib/applicant/store"
	clientstore "hr-crm-backend/lib/client/store"
	userstore "hr-crm-backend/lib/users/store"
	authutils "hr-crm-backend/lib/utils/auth-utils"
	"hr-crm-backend/models"
	authapimodels "hr-crm-backend/models/api/auth"
	dbmodels "hr-crm-backend/models/db"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrEmailTaken = errors.New("a user with this email already exists")

type Provider interface {
	Register(request authapimodels.RegisterRequest) (authapimodels.JWTResponse, error)
	Login(email, password string) (authapimodels.JWTResponse, error)
	RefreshToken(refreshToken string) (authapimodels.JWTResponse, error)
	Me(authCtx models.AuthContext) (authapimodels.UserView, error)
	ChangePassword(authCtx models.AuthContext, request authapimodels.ChangePasswordRequest) error
	DeleteAccount(authCtx models.AuthContext, password string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		userStore: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	userStore userstore.Provider
}

func (i impl) Register(request authapimodels.RegisterRequest) (authapimodels.JWTResponse, error) {
	exist, err := i.userStore.ExistByEmail(request.Email)
	if err != nil {
		log.
			WithField("email", request.Email).
			WithError(err).
			Error("failed to check for an existing user")
		return authapimodels.JWTResponse{}, err
	}
	if exist {
		return authapimodels.JWTResponse{}, ErrEmailTaken
	}
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		log.WithError(err).Error("failed to hash the password")
		return authapimodels.JWTResponse{}, err
	}
	role := request.Role
	if role == "" {
		role = models.UserRoleApplicant
	}
	rec := dbmodels.User{
		Email:       request.Email,
		Password:    hash,
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		PhoneNumber: request.PhoneNumber,
		Role:        role,
		Status:      models.UserStatusActive,
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		userID, err := userstore.NewInstance(tx).Create(rec)
		if err != nil {
			return err
		}
		rec.ID = userID
		switch role {
		case models.UserRoleApplicant:
			_, err = applicantstore.NewInstance(tx).Create(dbmodels.ApplicantProfile{UserID: userID})
		case models.UserRoleClient:
			_, err = clientstore.NewInstance(tx).Create(dbmodels.ClientProfile{
				UserID:      userID,
				CompanyName: request.CompanyName,
			})
		}
		return err
	})
	if err != nil {
		log.
			WithField("email", request.Email).
			WithError(err).
			Error("failed to register the user")
		return authapimodels.JWTResponse{}, err
	}
	return i.issueTokens(rec)
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", email)
	user, err := i.userStore.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("failed to look up the user by email")
		return authapimodels.JWTResponse{}, err
	}
	// the same generic error for an unknown email and a wrong password
	if user == nil {
		logger.Debug("login attempt for an unknown email")
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	if !authutils.CheckPassword(user.Password, password) {
		logger.Debug("login attempt with a wrong password")
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	if !user.Status.CanLogin() {
		logger.Debug("login attempt for a non-active account")
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	err = i.userStore.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.WithError(err).Error("failed to update the last login date")
	}
	return i.issueTokens(*user)
}

// RefreshToken issues fresh claims from the current account record, so a
// suspended or deleted user can not extend an old session.
func (i impl) RefreshToken(refreshToken string) (authapimodels.JWTResponse, error) {
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.New("refresh token is invalid or expired")
	}
	userID, _ := claims["sub"].(string)
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to look up the user for refresh")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.Status.CanLogin() {
		return authapimodels.JWTResponse{}, errors.New("account is not active")
	}
	return i.issueTokens(*user)
}

func (i impl) Me(authCtx models.AuthContext) (authapimodels.UserView, error) {
	user, err := i.userStore.GetByID(authCtx.UserID)
	if err != nil {
		log.WithField("user_id", authCtx.UserID).WithError(err).Error("failed to look up the user")
		return authapimodels.UserView{}, err
	}
	if user == nil {
		return authapimodels.UserView{}, errors.New("user not found")
	}
	return authapimodels.UserView{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Role:        string(user.Role),
		RoleName:    user.Role.ToHuman(),
		Status:      string(user.Status),
	}, nil
}

func (i impl) ChangePassword(authCtx models.AuthContext, request authapimodels.ChangePasswordRequest) error {
	user, err := i.userStore.GetByID(authCtx.UserID)
	if err != nil {
		log.WithField("user_id", authCtx.UserID).WithError(err).Error("failed to look up the user")
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}
	if !authutils.CheckPassword(user.Password, request.OldPassword) {
		return ErrInvalidCredentials
	}
	hash, err := authutils.HashPassword(request.NewPassword)
	if err != nil {
		log.WithError(err).Error("failed to hash the password")
		return err
	}
	return i.userStore.Update(user.ID, map[string]interface{}{"password": hash})
}

func (i impl) DeleteAccount(authCtx models.AuthContext, password string) error {
	user, err := i.userStore.GetByID(authCtx.UserID)
	if err != nil {
		log.WithField("user_id", authCtx.UserID).WithError(err).Error("failed to look up the user")
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}
	if !authutils.CheckPassword(user.Password, password) {
		return ErrInvalidCredentials
	}
	// role profile is removed together with the account
	return db.DB.Transaction(func(tx *gorm.DB) error {
		switch user.Role {
		case models.UserRoleApplicant:
			if err := applicantstore.NewInstance(tx).DeleteByUserID(user.ID); err != nil {
				return err
			}
		case models.UserRoleClient:
			if err := clientstore.NewInstance(tx).DeleteByUserID(user.ID); err != nil {
				return err
			}
		}
		return userstore.NewInstance(tx).Delete(user.ID)
	})
}

func (i impl) issueTokens(user dbmodels.User) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(user.ID, user.Email, user.GetFullName(), user.Role)
	if err != nil {
		log.WithError(err).Error("failed to sign the JWT")
		return authapimodels.JWTResponse{}, err
	}
	refresh, err := authutils.GetRefreshToken(user.ID)
	if err != nil {
		log.WithError(err).Error("failed to sign the refresh JWT")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refresh,
	}, nil
}
