package contracthandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hr-crm-backend/config"
	"hr-crm-backend/db"
	applicantstore "hr-crm-backend/lib/applicant/store"
	applicationstore "hr-crm-backend/lib/application/store"
	timelinestore "hr-crm-backend/lib/application/timeline-store"
	clientstore "hr-crm-backend/lib/client/store"
	contractstore "hr-crm-backend/lib/contract/store"
	filestorage "hr-crm-backend/lib/file-storage"
	jobstore "hr-crm-backend/lib/job/store"
	salesofferstore "hr-crm-backend/lib/sales-offer/store"
	"hr-crm-backend/models"
	contractapimodels "hr-crm-backend/models/api/contract"
	offerapimodels "hr-crm-backend/models/api/offer"
	dbmodels "hr-crm-backend/models/db"
)

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrNoAcceptedOffer  = errors.New("the application has no accepted offer")
	ErrContractExists   = errors.New("the application already has a contract")
)

type Provider interface {
	Create(authCtx models.AuthContext, request contractapimodels.CreateRequest) (string, error)
	ChangeStatus(contractID string, request contractapimodels.StatusChangeRequest) error
	SetProgress(contractID string, request contractapimodels.ProgressRequest) error
	UploadDocument(ctx context.Context, contractID, fileName string, data []byte) error
	GetDocument(ctx context.Context, contractID string) (data []byte, fileName string, err error)
	GetByID(contractID string) (contractapimodels.ContractView, error)
	List(filter contractapimodels.ContractFilter) ([]contractapimodels.ContractView, int64, error)
	ListMy(authCtx models.AuthContext) ([]contractapimodels.ContractView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          contractstore.NewInstance(db.DB),
		applicantStore: applicantstore.NewInstance(db.DB),
		clientStore:    clientstore.NewInstance(db.DB),
	}
}

type impl struct {
	store          contractstore.Provider
	applicantStore applicantstore.Provider
	clientStore    clientstore.Provider
}

// Create places a contract on an application that carries an accepted offer.
// The contract starts ACTIVE, which also marks the application hired and
// closes the job, all in one transaction.
func (i impl) Create(authCtx models.AuthContext, request contractapimodels.CreateRequest) (string, error) {
	commissionRate := request.CommissionRate
	if commissionRate == 0 {
		commissionRate = config.Conf.Sales.DefaultCommissionRate
	}
	var contractID string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		application, err := applicationstore.NewInstance(tx).GetByID(request.ApplicationID)
		if err != nil {
			return err
		}
		if application == nil {
			return errors.New("application not found")
		}
		if err := models.CanTransition(application.Status, models.ApplicationStatusHired, models.UserRoleHr); err != nil {
			return err
		}
		existing, err := contractstore.NewInstance(tx).GetByApplication(application.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrContractExists
		}
		accepted, _, err := salesofferstore.NewInstance(tx).List(offerapimodels.OfferFilter{
			ApplicationID: application.ID,
			Status:        models.OfferStatusAccepted,
		})
		if err != nil {
			return err
		}
		if len(accepted) == 0 {
			return ErrNoAcceptedOffer
		}
		clientID := ""
		if application.Job != nil {
			clientID = application.Job.ClientID
		}
		contractID, err = contractstore.NewInstance(tx).Create(dbmodels.Contract{
			ApplicationID:  application.ID,
			ClientID:       clientID,
			ApplicantID:    application.ApplicantID,
			Value:          request.Value,
			Currency:       request.Currency,
			CommissionRate: commissionRate,
			Status:         models.ContractStatusActive,
			StartDate:      request.StartDate,
			EndDate:        request.EndDate,
		})
		if err != nil {
			return err
		}
		err = applicationstore.NewInstance(tx).Update(application.ID, map[string]interface{}{"status": models.ApplicationStatusHired})
		if err != nil {
			return err
		}
		err = jobstore.NewInstance(tx).Update(application.JobID, map[string]interface{}{"status": models.JobStatusHired})
		if err != nil {
			return err
		}
		return timelinestore.NewInstance(tx).Add(dbmodels.ApplicationTimeline{
			ApplicationID: application.ID,
			ActorID:       authCtx.UserID,
			ActorRole:     authCtx.Role,
			FromStatus:    application.Status,
			ToStatus:      models.ApplicationStatusHired,
			Notes:         "contract signed",
		})
	})
	if err != nil {
		if !errors.Is(err, ErrNoAcceptedOffer) && !errors.Is(err, ErrContractExists) {
			log.WithField("application_id", request.ApplicationID).WithError(err).Error("failed to create the contract")
		}
		return "", err
	}
	return contractID, nil
}

func (i impl) ChangeStatus(contractID string, request contractapimodels.StatusChangeRequest) error {
	rec, err := i.getByID(contractID)
	if err != nil {
		return err
	}
	if err := rec.IsAllowStatusChange(request.Status); err != nil {
		return err
	}
	err = i.store.Update(rec.ID, map[string]interface{}{"status": request.Status})
	if err != nil {
		log.WithField("contract_id", contractID).WithError(err).Error("failed to change the contract status")
	}
	return err
}

func (i impl) SetProgress(contractID string, request contractapimodels.ProgressRequest) error {
	rec, err := i.getByID(contractID)
	if err != nil {
		return err
	}
	if err := rec.IsAllowProgress(request.ProgressPercent); err != nil {
		return err
	}
	updMap := map[string]interface{}{"progress_percent": request.ProgressPercent}
	if request.ProgressPercent == 100 && !rec.Status.IsTerminal() {
		updMap["status"] = models.ContractStatusCompleted
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		log.WithField("contract_id", contractID).WithError(err).Error("failed to update the contract progress")
	}
	return err
}

func (i impl) UploadDocument(ctx context.Context, contractID, fileName string, data []byte) error {
	rec, err := i.getByID(contractID)
	if err != nil {
		return err
	}
	fileID, err := filestorage.Instance.Upload(ctx, rec.ID, dbmodels.FileTypeContractDoc, fileName, data)
	if err != nil {
		log.WithField("contract_id", contractID).WithError(err).Error("failed to upload the contract document")
		return err
	}
	return i.store.Update(rec.ID, map[string]interface{}{"document_file_id": fileID})
}

func (i impl) GetDocument(ctx context.Context, contractID string) ([]byte, string, error) {
	rec, err := i.getByID(contractID)
	if err != nil {
		return nil, "", err
	}
	return filestorage.Instance.GetByOwner(ctx, rec.ID, dbmodels.FileTypeContractDoc)
}

func (i impl) GetByID(contractID string) (contractapimodels.ContractView, error) {
	rec, err := i.getByID(contractID)
	if err != nil {
		return contractapimodels.ContractView{}, err
	}
	return contractapimodels.ContractConvert(*rec), nil
}

func (i impl) List(filter contractapimodels.ContractFilter) ([]contractapimodels.ContractView, int64, error) {
	list, rowCount, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("failed to list contracts")
		return nil, 0, err
	}
	return convertList(list), rowCount, nil
}

// ListMy scopes the listing to the caller's side of the contract.
func (i impl) ListMy(authCtx models.AuthContext) ([]contractapimodels.ContractView, error) {
	var column, partyID string
	switch authCtx.Role {
	case models.UserRoleClient:
		profile, err := i.clientStore.GetByUserID(authCtx.UserID)
		if err != nil {
			log.WithField("user_id", authCtx.UserID).WithError(err).Error("failed to look up the client profile")
			return nil, err
		}
		if profile == nil {
			return nil, errors.New("client profile not found")
		}
		column, partyID = "client_id", profile.ID
	case models.UserRoleApplicant:
		profile, err := i.applicantStore.GetByUserID(authCtx.UserID)
		if err != nil {
			log.WithField("user_id", authCtx.UserID).WithError(err).Error("failed to look up the applicant profile")
			return nil, err
		}
		if profile == nil {
			return nil, errors.New("applicant profile not found")
		}
		column, partyID = "applicant_id", profile.ID
	default:
		return nil, errors.Errorf("role %s has no own contracts", authCtx.Role)
	}
	list, err := i.store.ListByParty(column, partyID)
	if err != nil {
		log.WithError(err).Error("failed to list party contracts")
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) getByID(contractID string) (*dbmodels.Contract, error) {
	rec, err := i.store.GetByID(contractID)
	if err != nil {
		log.WithField("contract_id", contractID).WithError(err).Error("failed to look up the contract")
		return nil, err
	}
	if rec == nil {
		return nil, ErrContractNotFound
	}
	return rec, nil
}

func convertList(list []dbmodels.Contract) []contractapimodels.ContractView {
	result := make([]contractapimodels.ContractView, 0, len(list))
	for _, rec := range list {
		result = append(result, contractapimodels.ContractConvert(rec))
	}
	return result
}
