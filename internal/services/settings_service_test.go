package services

import (
	"testing"

	"github.com/helpinghands/site-backend/internal/dto"
	"github.com/helpinghands/site-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() *dto.SettingsPayload {
	return &dto.SettingsPayload{
		SiteName:     "HHO",
		ContactEmail: "hello@hho.org",
		ContactPhone: "+91 99999 00000",
		Address:      "Campus Block C",
		UPIID:        "hho@upi",
		BankDetails: dto.BankDetails{
			AccountName:   "Helping Hands Organization",
			Bank:          "State Bank",
			AccountNumber: "0012345678",
			IFSCCode:      "SBIN0001234",
			Branch:        "University Road",
		},
	}
}

func TestSettingsGet_EmptyStoreServesDefaults(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "Helping Hands Organization", got.SiteName)
	assert.Equal(t, "contact@hho.org", got.ContactEmail)
}

func TestSettingsPut_ThenGet(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	want := samplePayload()
	saved, err := svc.Put(want)
	require.NoError(t, err)
	assert.Equal(t, want, saved)

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsPut_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	want := samplePayload()
	_, err := svc.Put(want)
	require.NoError(t, err)
	_, err = svc.Put(want)
	require.NoError(t, err)

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	var count int64
	require.NoError(t, db.Model(&models.Settings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSettingsPut_ReplacesAllFields(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	_, err := svc.Put(samplePayload())
	require.NoError(t, err)

	// A second write with blanks clears earlier values; puts are whole-row.
	blank := &dto.SettingsPayload{SiteName: "HHO"}
	_, err = svc.Put(blank)
	require.NoError(t, err)

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, blank, got)
	assert.Empty(t, got.BankDetails.AccountNumber)
}
