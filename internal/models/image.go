package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image records the hosted URL of an uploaded asset. Rows are only created
// after the remote upload succeeds and are never updated.
type Image struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
