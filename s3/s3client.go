package s3client

import (
	"github.com/minio/minio-go/v7"
)

// Client is nil when object storage is not configured; the file-storage
// handler degrades to errors instead of panicking.
var Client *minio.Client
