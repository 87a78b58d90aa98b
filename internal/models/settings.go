package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsKey addresses the singleton Settings row. Using a constant key
// rather than "whichever row comes first" keeps reads unambiguous even if
// extra rows ever appear.
const SettingsKey = "site"

// Settings holds organization contact and banking metadata as a singleton
// row addressed by SettingsKey.
type Settings struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Key          string    `gorm:"size:50;not null;uniqueIndex" json:"-"`
	SiteName     string    `gorm:"size:255" json:"siteName"`
	ContactEmail string    `gorm:"size:255" json:"contactEmail"`
	ContactPhone string    `gorm:"size:50" json:"contactPhone"`
	Address      string    `gorm:"type:text" json:"address"`
	UPIID        string    `gorm:"size:100;column:upi_id" json:"upiId"`

	BankAccountName   string `gorm:"size:255" json:"-"`
	BankName          string `gorm:"size:255" json:"-"`
	BankAccountNumber string `gorm:"size:50" json:"-"`
	BankIFSCCode      string `gorm:"size:20;column:bank_ifsc_code" json:"-"`
	BankBranch        string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Key == "" {
		s.Key = SettingsKey
	}
	return nil
}
