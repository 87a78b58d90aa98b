package services

import (
	"errors"
	"fmt"

	"github.com/helpinghands/site-backend/internal/dto"
	"github.com/helpinghands/site-backend/internal/models"
	"gorm.io/gorm"
)

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the singleton settings row, or the bundled defaults when
// nothing has been saved yet.
func (s *SettingsService) Get() (*dto.SettingsPayload, error) {
	var row models.Settings
	err := s.db.Where("key = ?", models.SettingsKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaultSettingsPayload(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return toPayload(&row), nil
}

// Put upserts the singleton settings row addressed by the fixed key. The
// write replaces every field, so repeating the same payload is idempotent.
func (s *SettingsService) Put(payload *dto.SettingsPayload) (*dto.SettingsPayload, error) {
	var row models.Settings
	err := s.db.Where("key = ?", models.SettingsKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.Settings{Key: models.SettingsKey}
		applyPayload(&row, payload)
		if err := s.db.Create(&row).Error; err != nil {
			return nil, fmt.Errorf("failed to create settings: %w", err)
		}
		return toPayload(&row), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	applyPayload(&row, payload)
	if err := s.db.Save(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return toPayload(&row), nil
}

func applyPayload(row *models.Settings, p *dto.SettingsPayload) {
	row.SiteName = p.SiteName
	row.ContactEmail = p.ContactEmail
	row.ContactPhone = p.ContactPhone
	row.Address = p.Address
	row.UPIID = p.UPIID
	row.BankAccountName = p.BankDetails.AccountName
	row.BankName = p.BankDetails.Bank
	row.BankAccountNumber = p.BankDetails.AccountNumber
	row.BankIFSCCode = p.BankDetails.IFSCCode
	row.BankBranch = p.BankDetails.Branch
}

func toPayload(row *models.Settings) *dto.SettingsPayload {
	return &dto.SettingsPayload{
		SiteName:     row.SiteName,
		ContactEmail: row.ContactEmail,
		ContactPhone: row.ContactPhone,
		Address:      row.Address,
		UPIID:        row.UPIID,
		BankDetails: dto.BankDetails{
			AccountName:   row.BankAccountName,
			Bank:          row.BankName,
			AccountNumber: row.BankAccountNumber,
			IFSCCode:      row.BankIFSCCode,
			Branch:        row.BankBranch,
		},
	}
}

func defaultSettingsPayload() *dto.SettingsPayload {
	return &dto.SettingsPayload{
		SiteName:     "Helping Hands Organization",
		ContactEmail: "contact@hho.org",
	}
}
