package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/helpinghands/site-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrUnknownSection = errors.New("unknown content section")

type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// GetAll returns every page section. Sections missing from the store are
// filled in from the bundled defaults, so an empty store still yields the
// complete fixture.
func (s *ContentService) GetAll() (map[string]json.RawMessage, error) {
	var rows []models.ContentSection
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}

	stored := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		stored[row.Key] = json.RawMessage(row.Value)
	}

	result := make(map[string]json.RawMessage, len(models.SectionKeys))
	for _, key := range models.SectionKeys {
		if v, ok := stored[key]; ok {
			result[key] = v
		} else {
			result[key] = DefaultContent[key]
		}
	}
	return result, nil
}

// GetSection returns one section's JSON, or an empty object when the
// section has never been written.
func (s *ContentService) GetSection(key string) (json.RawMessage, error) {
	if !models.ValidSection(key) {
		return nil, ErrUnknownSection
	}

	var row models.ContentSection
	if err := s.db.Where("key = ?", key).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return json.RawMessage("{}"), nil
		}
		return nil, fmt.Errorf("failed to fetch section: %w", err)
	}
	return json.RawMessage(row.Value), nil
}

// PutAll upserts every section present in the payload. Sections the payload
// omits keep their stored value; unknown keys fail the whole write.
func (s *ContentService) PutAll(content map[string]json.RawMessage) (map[string]json.RawMessage, error) {
	for key := range content {
		if !models.ValidSection(key) {
			return nil, ErrUnknownSection
		}
	}

	for _, key := range models.SectionKeys {
		value, ok := content[key]
		if !ok {
			continue
		}
		if err := s.upsertSection(key, value); err != nil {
			return nil, err
		}
	}
	return s.GetAll()
}

// PutSection upserts a single section, leaving the others untouched.
func (s *ContentService) PutSection(key string, value json.RawMessage) (json.RawMessage, error) {
	if !models.ValidSection(key) {
		return nil, ErrUnknownSection
	}
	if err := s.upsertSection(key, value); err != nil {
		return nil, err
	}
	return s.GetSection(key)
}

func (s *ContentService) upsertSection(key string, value json.RawMessage) error {
	var row models.ContentSection
	err := s.db.Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.ContentSection{Key: key, Value: datatypes.JSON(value)}
		if err := s.db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create section %q: %w", key, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to query section %q: %w", key, err)
	}

	row.Value = datatypes.JSON(value)
	if err := s.db.Save(&row).Error; err != nil {
		return fmt.Errorf("failed to update section %q: %w", key, err)
	}
	return nil
}
