package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/heelmeals/nutritrack/internal/domain/entity"
	repo "github.com/heelmeals/nutritrack/internal/domain/repository"
	"github.com/heelmeals/nutritrack/pkg/helpers"
)

// UserService covers profile and preferences operations. Every method is
// scoped by the authenticated user id; no cross-user access path exists.
type UserService struct {
	Users     repo.UserRepository
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewUserService(users repo.UserRepository, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile overwrites name and email and returns the fresh projection.
// Only presence is checked at the transport layer; no further validation.
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, email string) (*entity.User, error) {
	if err := s.Users.UpdateProfile(ctx, userID, name, email); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.Users.GetByID(ctx, userID)
}

func (s *UserService) Preferences(ctx context.Context, userID string) (*entity.Preferences, error) {
	u, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &u.Preferences, nil
}

// SavePreferences stores whatever was submitted and marks onboarding complete
// unconditionally, even for a partial body. That mirrors the observable
// contract of the form flow; field validation is deliberately absent.
func (s *UserService) SavePreferences(ctx context.Context, userID string, p entity.Preferences) error {
	err := s.Users.UpdatePreferences(ctx, userID, p)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// UploadAvatar stores the image in GCS under avatars/<user>/<uuid><ext> and
// records the public URL on the profile.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	if err := s.Users.UpdateAvatarURL(ctx, userID, url); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return url, nil
}
