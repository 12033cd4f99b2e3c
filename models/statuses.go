package models

import (
	"github.com/pkg/errors"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
	JobStatusHired  JobStatus = "HIRED"
)

func (s JobStatus) IsValid() bool {
	return s == JobStatusOpen || s == JobStatusClosed || s == JobStatusHired
}

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusInterview ApplicationStatus = "INTERVIEW"
	ApplicationStatusOffer     ApplicationStatus = "OFFER"
	ApplicationStatusHired     ApplicationStatus = "HIRED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn ApplicationStatus = "WITHDRAWN"
)

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusPending:   "Pending review",
	ApplicationStatusInterview: "Interview stage",
	ApplicationStatusOffer:     "Offer stage",
	ApplicationStatusHired:     "Hired",
	ApplicationStatusRejected:  "Rejected",
	ApplicationStatusWithdrawn: "Withdrawn",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusHired || s == ApplicationStatusRejected || s == ApplicationStatusWithdrawn
}

type applicationTransition struct {
	target ApplicationStatus
	roles  []UserRole
}

// applicationTransitions is the single source of truth for the application
// lifecycle. Handlers never re-check transitions on their own.
var applicationTransitions = map[ApplicationStatus][]applicationTransition{
	ApplicationStatusPending: {
		{ApplicationStatusInterview, []UserRole{UserRoleHr, UserRoleAdmin}},
		{ApplicationStatusRejected, []UserRole{UserRoleHr, UserRoleAdmin}},
		{ApplicationStatusWithdrawn, []UserRole{UserRoleApplicant}},
	},
	ApplicationStatusInterview: {
		{ApplicationStatusOffer, []UserRole{UserRoleHr, UserRoleAdmin}},
		{ApplicationStatusRejected, []UserRole{UserRoleHr, UserRoleAdmin}},
		{ApplicationStatusWithdrawn, []UserRole{UserRoleApplicant}},
	},
	ApplicationStatusOffer: {
		{ApplicationStatusHired, []UserRole{UserRoleHr, UserRoleAdmin}},
		{ApplicationStatusRejected, []UserRole{UserRoleHr, UserRoleAdmin}},
	},
}

// CanTransition reports whether role may move an application from cur to next.
func CanTransition(cur, next ApplicationStatus, role UserRole) error {
	if cur.IsTerminal() {
		return errors.Errorf("application is already %s, no further changes allowed", cur.ToHuman())
	}
	for _, tr := range applicationTransitions[cur] {
		if tr.target != next {
			continue
		}
		for _, allowed := range tr.roles {
			if allowed == role {
				return nil
			}
		}
		return errors.Errorf("role %s is not allowed to move an application to %s", role.ToHuman(), next.ToHuman())
	}
	return errors.Errorf("transition from %s to %s is not allowed", cur.ToHuman(), next.ToHuman())
}

type InterviewStatus string

const (
	InterviewStatusScheduled   InterviewStatus = "SCHEDULED"
	InterviewStatusConfirmed   InterviewStatus = "CONFIRMED"
	InterviewStatusAttended    InterviewStatus = "ATTENDED"
	InterviewStatusNoShow      InterviewStatus = "NO_SHOW"
	InterviewStatusCancelled   InterviewStatus = "CANCELLED"
	InterviewStatusRescheduled InterviewStatus = "RESCHEDULED"
)

func (s InterviewStatus) IsValid() bool {
	switch s {
	case InterviewStatusScheduled, InterviewStatusConfirmed, InterviewStatusAttended,
		InterviewStatusNoShow, InterviewStatusCancelled, InterviewStatusRescheduled:
		return true
	}
	return false
}

type OfferStatus string

const (
	OfferStatusPending       OfferStatus = "PENDING"
	OfferStatusAccepted      OfferStatus = "ACCEPTED"
	OfferStatusRejected      OfferStatus = "REJECTED"
	OfferStatusSalesApproved OfferStatus = "SALES_APPROVED"
	OfferStatusSalesRejected OfferStatus = "SALES_REJECTED"
)

func (s OfferStatus) IsTerminal() bool {
	return s == OfferStatusAccepted || s == OfferStatusRejected || s == OfferStatusSalesRejected
}

type ApplicantResponse string

const (
	ApplicantResponseAccepted ApplicantResponse = "ACCEPTED"
	ApplicantResponseRejected ApplicantResponse = "REJECTED"
)

func (r ApplicantResponse) IsValid() bool {
	return r == ApplicantResponseAccepted || r == ApplicantResponseRejected
}

type SalesResponse string

const (
	SalesResponseApproved SalesResponse = "APPROVED"
	SalesResponseRejected SalesResponse = "REJECTED"
	SalesResponsePending  SalesResponse = "PENDING"
)

func (r SalesResponse) IsResolution() bool {
	return r == SalesResponseApproved || r == SalesResponseRejected
}

type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "DRAFT"
	ContractStatusPending   ContractStatus = "PENDING"
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusCompleted ContractStatus = "COMPLETED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
	ContractStatusExpired   ContractStatus = "EXPIRED"
)

func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractStatusDraft, ContractStatusPending, ContractStatusActive,
		ContractStatusCompleted, ContractStatusCancelled, ContractStatusExpired:
		return true
	}
	return false
}

func (s ContractStatus) IsTerminal() bool {
	return s == ContractStatusCompleted || s == ContractStatusCancelled || s == ContractStatusExpired
}
