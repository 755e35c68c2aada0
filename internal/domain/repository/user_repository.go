package repository

import (
	"context"
	"errors"

	"github.com/heelmeals/nutritrack/internal/domain/entity"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// FindOrCreateByGoogleID atomically resolves the external subject id to a
	// user row, creating one from u's profile fields when none exists. The
	// returned bool reports whether a new row was created. Repeat calls with
	// the same subject id never overwrite name or email.
	FindOrCreateByGoogleID(ctx context.Context, u *entity.User) (*entity.User, bool, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	UpdateProfile(ctx context.Context, id, name, email string) error
	// UpdatePreferences overwrites all preference columns and sets
	// has_completed_form true unconditionally, even for partial submissions.
	UpdatePreferences(ctx context.Context, id string, p entity.Preferences) error
	UpdateAvatarURL(ctx context.Context, id, avatarURL string) error
}
