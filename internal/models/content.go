package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContentSection stores one page section as free-form JSON, addressed by a
// fixed well-known key. The site content as a whole is the set of rows whose
// keys appear in SectionKeys; writes upsert by key, so each section exists
// zero or one times.
type ContentSection struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Key       string         `gorm:"size:50;not null;uniqueIndex" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (cs *ContentSection) BeforeCreate(tx *gorm.DB) error {
	if cs.ID == uuid.Nil {
		cs.ID = uuid.New()
	}
	return nil
}

func (ContentSection) TableName() string {
	return "content_sections"
}

// SectionKeys is the closed set of page sections. Requests naming any other
// section are rejected rather than creating stray rows.
var SectionKeys = []string{
	"hero",
	"about",
	"campaigns",
	"announcements",
	"gallery",
	"help",
	"footer",
}

// ValidSection reports whether key names a known page section.
func ValidSection(key string) bool {
	for _, k := range SectionKeys {
		if k == key {
			return true
		}
	}
	return false
}
