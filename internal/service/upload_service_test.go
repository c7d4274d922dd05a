package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"petmedia-be/internal/config"
	"petmedia-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newUploadFixture(t *testing.T) (IUploadService, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{App: config.AppConfig{
		BaseURL:   "http://localhost:3000",
		UploadDir: dir,
	}}
	return NewUploadService(cfg, nopLogger{}), dir
}

func makeUpload(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(10 << 20)
	assert.NoError(t, err)
	return form.File["image"][0]
}

func TestUploadImageStoresFileAndReturnsURL(t *testing.T) {
	svc, dir := newUploadFixture(t)
	userId := uuid.New()

	publicURL, err := svc.UploadImage(context.Background(), userId, "pets", makeUpload(t, "pamuk.PNG", []byte("png-bytes")))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(publicURL, "http://localhost:3000/uploads/pets/"))
	assert.True(t, strings.HasSuffix(publicURL, ".png"))

	parsed, err := url.Parse(publicURL)
	assert.NoError(t, err)
	stored := filepath.Join(dir, strings.TrimPrefix(parsed.Path, "/uploads/"))
	content, err := os.ReadFile(stored)
	assert.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), content)
}

func TestUploadImageRejectsBadInput(t *testing.T) {
	svc, _ := newUploadFixture(t)
	userId := uuid.New()

	cases := []struct {
		name     string
		category string
		filename string
	}{
		{"unknown category", "documents", "a.png"},
		{"unsupported extension", "pets", "malware.exe"},
		{"no extension", "avatars", "noext"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UploadImage(context.Background(), userId, tc.category, makeUpload(t, tc.filename, []byte("x")))
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		})
	}
}

func TestDeleteImageRemovesUploadedFile(t *testing.T) {
	svc, dir := newUploadFixture(t)
	userId := uuid.New()

	publicURL, err := svc.UploadImage(context.Background(), userId, "avatars", makeUpload(t, "me.jpg", []byte("jpg")))
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteImage(context.Background(), publicURL))

	parsed, _ := url.Parse(publicURL)
	stored := filepath.Join(dir, strings.TrimPrefix(parsed.Path, "/uploads/"))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a no-op.
	assert.NoError(t, svc.DeleteImage(context.Background(), publicURL))
}

func TestDeleteImageStaysInsideUploadRoot(t *testing.T) {
	svc, _ := newUploadFixture(t)

	outside := filepath.Join(t.TempDir(), "precious.txt")
	assert.NoError(t, os.WriteFile(outside, []byte("keep"), 0644))

	// Traversal segments are cleaned away; the file outside the root
	// must survive.
	assert.NoError(t, svc.DeleteImage(context.Background(), "http://localhost:3000/uploads/../"+filepath.Base(outside)))
	_, err := os.Stat(outside)
	assert.NoError(t, err)

	// URLs not under /uploads are rejected outright.
	err = svc.DeleteImage(context.Background(), "http://localhost:3000/static/x.png")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}
