package dbmodels

type FileType string

const (
	FileTypeResume      FileType = "RESUME"
	FileTypeContractDoc FileType = "CONTRACT_DOC"
)

// FileStorage is the DB index of objects stored in S3; the object key is the
// record id.
type FileStorage struct {
	BaseModel
	OwnerID  string   `gorm:"type:varchar(36);index:idx_file_owner"`
	FileType FileType `gorm:"type:varchar(50);index:idx_file_owner"`
	FileName string   `gorm:"type:varchar(255)"`
	Size     int64
}
