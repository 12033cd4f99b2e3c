package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	"hr-crm-backend/config"
	"hr-crm-backend/fiberlog"
	analyticshandler "hr-crm-backend/lib/analytics"
	applicanthandler "hr-crm-backend/lib/applicant"
	applicationhandler "hr-crm-backend/lib/application"
	authhandler "hr-crm-backend/lib/auth"
	contracthandler "hr-crm-backend/lib/contract"
	xlsexport "hr-crm-backend/lib/export/xls"
	filestorage "hr-crm-backend/lib/file-storage"
	gpthandler "hr-crm-backend/lib/gpt"
	interviewhandler "hr-crm-backend/lib/interview"
	jobhandler "hr-crm-backend/lib/job"
	salesofferhandler "hr-crm-backend/lib/sales-offer"
	s3client "hr-crm-backend/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	filestorage.NewHandler(s3client.Client)
	authhandler.NewHandler()
	applicanthandler.NewHandler()
	jobhandler.NewHandler()
	gpthandler.NewHandler()
	applicationhandler.NewHandler()
	interviewhandler.NewHandler()
	salesofferhandler.NewHandler()
	contracthandler.NewHandler()
	xlsexport.NewHandler()
	analyticshandler.NewHandler()

	if s3client.Client != nil {
		if err := filestorage.Instance.EnsureBucket(ctx); err != nil {
			log.WithError(err).Error("failed to ensure the S3 bucket")
		}
	}
}
