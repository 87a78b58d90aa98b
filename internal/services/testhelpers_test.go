package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/helpinghands/site-backend/internal/config"
	"github.com/helpinghands/site-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A unique shared in-memory database per test so pooled connections
	// all see the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ContentSection{},
		&models.Settings{},
		&models.Image{},
	))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTExpiry:        time.Hour,
		ResetTokenExpiry: time.Hour,
		PublicURL:        "http://localhost:3000",
	}
}

type fakeMailer struct {
	to      string
	subject string
	body    string
	err     error
	sent    int
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.to = to
	m.subject = subject
	m.body = body
	m.sent++
	return nil
}
