package applicanthandler

import (
	"context"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-crm-backend/db"
	applicantstore "hr-crm-backend/lib/applicant/store"
	filestorage "hr-crm-backend/lib/file-storage"
	userstore "hr-crm-backend/lib/users/store"
	"hr-crm-backend/models"
	applicantapimodels "hr-crm-backend/models/api/applicant"
	dbmodels "hr-crm-backend/models/db"
)

var ErrProfileNotFound = errors.New("applicant profile not found")

type Provider interface {
	GetMyProfile(authCtx models.AuthContext) (applicantapimodels.ProfileView, error)
	GetByID(profileID string) (applicantapimodels.ProfileView, error)
	UpdateMyProfile(authCtx models.AuthContext, request applicantapimodels.ProfileUpdateRequest) error
	UploadResume(ctx context.Context, authCtx models.AuthContext, fileName string, data []byte) error
	GetResume(ctx context.Context, profileID string) (data []byte, fileName string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     applicantstore.NewInstance(db.DB),
		userStore: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store     applicantstore.Provider
	userStore userstore.Provider
}

func (i impl) GetMyProfile(authCtx models.AuthContext) (applicantapimodels.ProfileView, error) {
	rec, err := i.getMy(authCtx)
	if err != nil {
		return applicantapimodels.ProfileView{}, err
	}
	return applicantapimodels.ProfileConvert(*rec), nil
}

func (i impl) GetByID(profileID string) (applicantapimodels.ProfileView, error) {
	rec, err := i.store.GetByID(profileID)
	if err != nil {
		log.WithField("profile_id", profileID).WithError(err).Error("failed to look up the applicant profile")
		return applicantapimodels.ProfileView{}, err
	}
	if rec == nil {
		return applicantapimodels.ProfileView{}, ErrProfileNotFound
	}
	return applicantapimodels.ProfileConvert(*rec), nil
}

func (i impl) UpdateMyProfile(authCtx models.AuthContext, request applicantapimodels.ProfileUpdateRequest) error {
	rec, err := i.getMy(authCtx)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"skills":           pq.StringArray(request.Skills),
		"experience_years": request.ExperienceYears,
		"education":        request.Education,
		"city":             request.City,
		"about":            request.About,
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		log.WithField("profile_id", rec.ID).WithError(err).Error("failed to update the applicant profile")
		return err
	}
	if request.PhoneNumber != "" {
		err = i.userStore.Update(authCtx.UserID, map[string]interface{}{"phone_number": request.PhoneNumber})
		if err != nil {
			log.WithField("user_id", authCtx.UserID).WithError(err).Error("failed to update the phone number")
			return err
		}
	}
	return nil
}

func (i impl) UploadResume(ctx context.Context, authCtx models.AuthContext, fileName string, data []byte) error {
	rec, err := i.getMy(authCtx)
	if err != nil {
		return err
	}
	fileID, err := filestorage.Instance.Upload(ctx, rec.ID, dbmodels.FileTypeResume, fileName, data)
	if err != nil {
		log.WithField("profile_id", rec.ID).WithError(err).Error("failed to upload the resume")
		return err
	}
	return i.store.Update(rec.ID, map[string]interface{}{"resume_file_id": fileID})
}

func (i impl) GetResume(ctx context.Context, profileID string) ([]byte, string, error) {
	return filestorage.Instance.GetByOwner(ctx, profileID, dbmodels.FileTypeResume)
}

func (i impl) getMy(authCtx models.AuthContext) (*dbmodels.ApplicantProfile, error) {
	rec, err := i.store.GetByUserID(authCtx.UserID)
	if err != nil {
		log.WithField("user_id", authCtx.UserID).WithError(err).Error("failed to look up the applicant profile")
		return nil, err
	}
	if rec == nil {
		return nil, ErrProfileNotFound
	}
	return rec, nil
}
