package dbmodels

// ClientProfile extends a CLIENT user with company data.
type ClientProfile struct {
	BaseModel
	UserID      string `gorm:"type:varchar(36);uniqueIndex"`
	User        *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CompanyName string `gorm:"type:varchar(255)"`
	Industry    string `gorm:"type:varchar(255)"`
	Website     string `gorm:"type:varchar(255)"`
	Address     string
}
