package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"hr-crm-backend/config"
	"hr-crm-backend/db"
	filesdbstore "hr-crm-backend/lib/file-storage/store"
	dbmodels "hr-crm-backend/models/db"
)

type Provider interface {
	Upload(ctx context.Context, ownerID string, fileType dbmodels.FileType, fileName string, data []byte) (fileID string, err error)
	Get(ctx context.Context, fileID string) (data []byte, fileName string, err error)
	GetByOwner(ctx context.Context, ownerID string, fileType dbmodels.FileType) (data []byte, fileName string, err error)
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler(s3client *minio.Client) {
	Instance = &impl{
		s3client:  s3client,
		fileStore: filesdbstore.NewInstance(db.DB),
	}
}

type impl struct {
	s3client  *minio.Client
	fileStore filesdbstore.Provider
}

func (i impl) EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}

// Upload stores the object under a fresh uuid key and records it in the DB
// index.
func (i impl) Upload(ctx context.Context, ownerID string, fileType dbmodels.FileType, fileName string, data []byte) (string, error) {
	if i.s3client == nil {
		return "", errors.New("file storage is not configured")
	}
	rec := dbmodels.FileStorage{
		BaseModel: dbmodels.BaseModel{ID: uuid.NewString()},
		OwnerID:   ownerID,
		FileType:  fileType,
		FileName:  fileName,
		Size:      int64(len(data)),
	}
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, rec.ID,
		bytes.NewReader(data), rec.Size,
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload the object")
	}
	fileID, err := i.fileStore.SaveFile(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to index the uploaded object")
	}
	return fileID, nil
}

func (i impl) Get(ctx context.Context, fileID string) ([]byte, string, error) {
	if i.s3client == nil {
		return nil, "", errors.New("file storage is not configured")
	}
	rec, err := i.fileStore.GetByID(fileID)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "", errors.New("file not found")
	}
	data, err := i.readObject(ctx, rec.ID)
	if err != nil {
		return nil, "", err
	}
	return data, rec.FileName, nil
}

func (i impl) GetByOwner(ctx context.Context, ownerID string, fileType dbmodels.FileType) ([]byte, string, error) {
	if i.s3client == nil {
		return nil, "", errors.New("file storage is not configured")
	}
	rec, err := i.fileStore.GetByOwnerAndType(ownerID, fileType)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "", errors.New("file not found")
	}
	data, err := i.readObject(ctx, rec.ID)
	if err != nil {
		return nil, "", err
	}
	return data, rec.FileName, nil
}

func (i impl) readObject(ctx context.Context, key string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read the object")
	}
	defer object.Close()
	data, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read the object body")
	}
	return data, nil
}
