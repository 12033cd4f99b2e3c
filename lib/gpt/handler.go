package gpthandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-crm-backend/config"
	yagptclient "hr-crm-backend/lib/gpt/yagpt-client"
	jobapimodels "hr-crm-backend/models/api/job"
)

type Provider interface {
	GenerateJobDescription(text string) (resp jobapimodels.GenDescriptionResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) GenerateJobDescription(text string) (resp jobapimodels.GenDescriptionResponse, err error) {
	if config.Conf.YandexGPT.IAMToken == "" {
		return resp, errors.New("text generation is not configured")
	}
	resp.Description, err = yagptclient.
		NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID).
		GenerateByPromtAndText(config.Conf.YandexGPT.JobPromt, fmt.Sprintf("Generate a job description from this input: %s", text))
	if err != nil {
		log.WithError(err).Error("failed to generate the job description")
		return resp, err
	}
	return resp, nil
}
