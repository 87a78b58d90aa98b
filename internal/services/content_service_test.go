package services

import (
	"encoding/json"
	"testing"

	"github.com/helpinghands/site-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSection_EmptyStore(t *testing.T) {
	svc := NewContentService(newTestDB(t))

	section, err := svc.GetSection("hero")
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(section))
}

func TestGetSection_UnknownKey(t *testing.T) {
	svc := NewContentService(newTestDB(t))

	_, err := svc.GetSection("sidebar")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestPutSection_ThenGet(t *testing.T) {
	svc := NewContentService(newTestDB(t))

	payload := json.RawMessage(`{"title":"Join the winter drive","ctaText":"Donate"}`)
	saved, err := svc.PutSection("hero", payload)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(saved))

	got, err := svc.GetSection("hero")
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(got))
}

func TestPutSection_OverwritesExisting(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	_, err := svc.PutSection("help", json.RawMessage(`{"heading":"v1"}`))
	require.NoError(t, err)
	_, err = svc.PutSection("help", json.RawMessage(`{"heading":"v2"}`))
	require.NoError(t, err)

	got, err := svc.GetSection("help")
	require.NoError(t, err)
	assert.JSONEq(t, `{"heading":"v2"}`, string(got))

	// Upserts never accumulate rows.
	var count int64
	require.NoError(t, db.Model(&models.ContentSection{}).Where("key = ?", "help").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPutSection_LeavesOthersUntouched(t *testing.T) {
	svc := NewContentService(newTestDB(t))

	_, err := svc.PutSection("hero", json.RawMessage(`{"title":"keep me"}`))
	require.NoError(t, err)
	_, err = svc.PutSection("campaigns", json.RawMessage(`{"items":[1,2]}`))
	require.NoError(t, err)

	hero, err := svc.GetSection("hero")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"keep me"}`, string(hero))
}

func TestPutAll_ThenGetAll(t *testing.T) {
	svc := NewContentService(newTestDB(t))

	doc := map[string]json.RawMessage{
		"hero":          json.RawMessage(`{"title":"t"}`),
		"about":         json.RawMessage(`{"body":"b"}`),
		"campaigns":     json.RawMessage(`{"items":[{"name":"blood drive"}]}`),
		"announcements": json.RawMessage(`{"items":["exam fund open"]}`),
		"gallery":       json.RawMessage(`{"images":["a.jpg"]}`),
		"help":          json.RawMessage(`{"options":[]}`),
		"footer":        json.RawMessage(`{"tagline":"bye"}`),
	}

	_, err := svc.PutAll(doc)
	require.NoError(t, err)

	got, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, got, len(models.SectionKeys))
	for key, want := range doc {
		assert.JSONEq(t, string(want), string(got[key]), "section %q", key)
	}
}

func TestPutAll_UnknownKeyRejected(t *testing.T) {
	svc := NewContentService(newTestDB(t))

	_, err := svc.PutAll(map[string]json.RawMessage{
		"hero":    json.RawMessage(`{"title":"t"}`),
		"sidebar": json.RawMessage(`{}`),
	})
	assert.ErrorIs(t, err, ErrUnknownSection)

	// Nothing was written; the store still serves defaults.
	got, err := svc.GetSection("hero")
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(got))
}

func TestGetAll_EmptyStoreServesDefaults(t *testing.T) {
	svc := NewContentService(newTestDB(t))

	got, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, got, len(models.SectionKeys))

	var hero map[string]interface{}
	require.NoError(t, json.Unmarshal(got["hero"], &hero))
	assert.Equal(t, "Helping Hands Organization", hero["title"])
}

func TestGetAll_MixesStoredAndDefaults(t *testing.T) {
	svc := NewContentService(newTestDB(t))

	_, err := svc.PutSection("hero", json.RawMessage(`{"title":"edited"}`))
	require.NoError(t, err)

	got, err := svc.GetAll()
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"edited"}`, string(got["hero"]))
	assert.JSONEq(t, string(DefaultContent["footer"]), string(got["footer"]))
}
