package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/helpinghands/site-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeObjectStore struct {
	key         string
	contentType string
	data        []byte
	err         error
}

func (f *fakeObjectStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.key = key
	f.contentType = contentType
	f.data = data
	return "https://img.hho.org/" + key, nil
}

func uploadedFile(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func TestUpload_Success(t *testing.T) {
	db := newTestDB(t)
	store := &fakeObjectStore{}
	svc := NewMediaService(db, store)

	payload := []byte("fake-png-bytes")
	url, err := svc.Upload(context.Background(), uploadedFile(t, "banner.png", "image/png", payload))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://img.hho.org/uploads/"))
	assert.True(t, strings.HasSuffix(store.key, ".png"))
	assert.Equal(t, "image/png", store.contentType)
	assert.Equal(t, payload, store.data)

	var images []models.Image
	require.NoError(t, db.Find(&images).Error)
	require.Len(t, images, 1)
	assert.Equal(t, url, images[0].URL)
}

func TestUpload_RejectsOversizedFile(t *testing.T) {
	db := newTestDB(t)
	svc := NewMediaService(db, &fakeObjectStore{})

	file := &multipart.FileHeader{
		Filename: "huge.png",
		Size:     maxUploadSize + 1,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}

	_, err := svc.Upload(context.Background(), file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image size")
	assertNoImages(t, db)
}

func TestUpload_RejectsNonImage(t *testing.T) {
	db := newTestDB(t)
	svc := NewMediaService(db, &fakeObjectStore{})

	_, err := svc.Upload(context.Background(), uploadedFile(t, "notes.pdf", "application/pdf", []byte("%PDF")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid image format")
	assertNoImages(t, db)
}

func TestUpload_StorageFailureRecordsNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewMediaService(db, &fakeObjectStore{err: errors.New("connection refused")})

	_, err := svc.Upload(context.Background(), uploadedFile(t, "banner.jpg", "image/jpeg", []byte("jpg")))
	require.Error(t, err)
	assertNoImages(t, db)
}

func TestListImages_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewMediaService(db, &fakeObjectStore{})

	old := models.Image{URL: "https://img.hho.org/uploads/old.png", CreatedAt: time.Now().Add(-time.Hour)}
	recent := models.Image{URL: "https://img.hho.org/uploads/new.png", CreatedAt: time.Now()}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)

	urls, err := svc.ListImages()
	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.Equal(t, recent.URL, urls[0])
	assert.Equal(t, old.URL, urls[1])
}

func assertNoImages(t *testing.T, db *gorm.DB) {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Image{}).Count(&count).Error)
	assert.Zero(t, count)
}
