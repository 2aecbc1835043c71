package services

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"skillswap_backend/internal/config"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/storage"
	"skillswap_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UploadService interface {
	// UploadAvatar validates, stores and links an avatar image for the
	// user, replacing any previous one. Returns the public URL.
	UploadAvatar(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader) (string, error)

	// DeleteAvatar removes the stored blob and clears the profile link.
	DeleteAvatar(ctx context.Context, db *gorm.DB, userID string) error

	// ServeFile streams a stored blob, for local-storage deployments.
	ServeFile(ctx context.Context, path string) (io.ReadCloser, error)
}

type uploadService struct {
	storage     storage.Storage
	profileRepo repositories.ProfileRepository
}

func NewUploadService(store storage.Storage, profileRepo repositories.ProfileRepository) UploadService {
	return &uploadService{
		storage:     store,
		profileRepo: profileRepo,
	}
}

func (s *uploadService) UploadAvatar(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader) (string, error) {
	cfg := config.GetConfig()

	if file.Size > cfg.Upload.MaxSize {
		return "", apperrors.ErrInvalidOperation("upload", "File exceeds the maximum allowed size")
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedType(contentType, cfg.Upload.AllowedTypes) {
		return "", apperrors.ErrInvalidOperation("upload", "File type is not allowed")
	}

	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return "", apperrors.ErrNotFound(err)
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	path := "avatars/" + userID + "/" + uuid.NewString() + ext

	if err := s.storage.Save(ctx, path, src, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	if err := s.profileRepo.SetAvatarURL(db, userID, url); err != nil {
		return "", apperrors.InternalError(err)
	}

	// Stale avatars are cleaned up opportunistically; a failed delete
	// only leaks a blob.
	if old := avatarPath(profile.AvatarURL, cfg.Storage.BaseURL); old != "" && old != path {
		if err := s.storage.Delete(ctx, old); err != nil {
			return url, nil
		}
	}
	return url, nil
}

func (s *uploadService) DeleteAvatar(ctx context.Context, db *gorm.DB, userID string) error {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if profile.AvatarURL == "" {
		return nil
	}

	if err := s.profileRepo.SetAvatarURL(db, userID, ""); err != nil {
		return apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	if path := avatarPath(profile.AvatarURL, cfg.Storage.BaseURL); path != "" {
		_ = s.storage.Delete(ctx, path)
	}
	return nil
}

func (s *uploadService) ServeFile(ctx context.Context, path string) (io.ReadCloser, error) {
	exists, err := s.storage.Exists(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound(nil)
	}

	reader, err := s.storage.Get(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reader, nil
}

func allowedType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

// avatarPath recovers the storage path from a public URL produced by
// Storage.GetURL. Returns "" for external or empty URLs.
func avatarPath(url, baseURL string) string {
	if url == "" || baseURL == "" {
		return ""
	}
	if !strings.HasPrefix(url, baseURL) {
		return ""
	}
	return strings.TrimPrefix(strings.TrimPrefix(url, baseURL), "/")
}
