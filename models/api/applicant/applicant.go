package applicantapimodels

import (
	dbmodels "hr-crm-backend/models/db"
)

type ProfileUpdateRequest struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	Education       string   `json:"education"`
	City            string   `json:"city"`
	About           string   `json:"about"`
	PhoneNumber     string   `json:"phone_number"`
}

type ProfileView struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Email           string   `json:"email"`
	PhoneNumber     string   `json:"phone_number"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	Education       string   `json:"education"`
	City            string   `json:"city"`
	About           string   `json:"about"`
	HasResume       bool     `json:"has_resume"`
}

func ProfileConvert(rec dbmodels.ApplicantProfile) ProfileView {
	view := ProfileView{
		ID:              rec.ID,
		UserID:          rec.UserID,
		Skills:          rec.Skills,
		ExperienceYears: rec.ExperienceYears,
		Education:       rec.Education,
		City:            rec.City,
		About:           rec.About,
		HasResume:       rec.ResumeFileID != "",
	}
	if rec.User != nil {
		view.FirstName = rec.User.FirstName
		view.LastName = rec.User.LastName
		view.Email = rec.User.Email
		view.PhoneNumber = rec.User.PhoneNumber
	}
	return view
}
