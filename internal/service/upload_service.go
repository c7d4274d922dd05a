package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"petmedia-be/internal/config"
	"petmedia-be/internal/pkg/apperrors"
	"petmedia-be/internal/pkg/logger"

	"github.com/google/uuid"
)

const maxUploadBytes = 5 * 1024 * 1024

// Image categories map to subdirectories under the upload root, so the
// static file route serves them at /uploads/<category>/<filename>.
var uploadCategories = map[string]bool{
	"avatars":  true,
	"pets":     true,
	"mapspots": true,
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type IUploadService interface {
	UploadImage(ctx context.Context, userId uuid.UUID, category string, file *multipart.FileHeader) (string, error)
	DeleteImage(ctx context.Context, imageURL string) error
}

type uploadService struct {
	root    string
	baseURL string
	logger  logger.ILogger
}

func NewUploadService(cfg *config.Config, l logger.ILogger) IUploadService {
	return &uploadService{
		root:    cfg.App.UploadDir,
		baseURL: strings.TrimRight(cfg.App.BaseURL, "/"),
		logger:  l,
	}
}

// UploadImage stores the file under the upload root and returns the public
// URL the static route serves it at. Clients use that URL as the permanent
// photo reference on pets, map spots, and profiles.
func (s *uploadService) UploadImage(ctx context.Context, userId uuid.UUID, category string, file *multipart.FileHeader) (string, error) {
	if !uploadCategories[category] {
		return "", apperrors.NewValidation("unknown upload category")
	}
	if file.Size > maxUploadBytes {
		return "", apperrors.NewValidation("file too large (max 5MB)")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", apperrors.NewValidation("unsupported image type")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%d%s", userId.String(), time.Now().UnixNano(), ext)
	dstPath := filepath.Join(dir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	publicURL := fmt.Sprintf("%s/uploads/%s/%s", s.baseURL, category, filename)
	s.logger.Info("upload", "Image stored", map[string]interface{}{
		"user_id": userId.String(),
		"path":    dstPath,
	})
	return publicURL, nil
}

// DeleteImage removes a previously uploaded file given its public URL.
// Idempotent; deleting an already-gone file succeeds.
func (s *uploadService) DeleteImage(ctx context.Context, imageURL string) error {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return apperrors.NewValidation("invalid image url")
	}

	rel, ok := strings.CutPrefix(parsed.Path, "/uploads/")
	if !ok {
		return apperrors.NewValidation("url does not point at an uploaded file")
	}

	// The cleaned path must stay inside the upload root.
	local := filepath.Join(s.root, filepath.Clean("/"+rel))
	rootPrefix := filepath.Clean(s.root) + string(filepath.Separator)
	if !strings.HasPrefix(local, rootPrefix) {
		return apperrors.NewValidation("url does not point at an uploaded file")
	}

	if err := os.Remove(local); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
