package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/heelmeals/nutritrack/internal/domain/entity"
	repo "github.com/heelmeals/nutritrack/internal/domain/repository"
	"github.com/heelmeals/nutritrack/internal/infrastructure/googleauth"
	"github.com/heelmeals/nutritrack/pkg/mailer"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// WelcomePublisher enqueues a rendered email job. *helpers.RabbitPublisher
// satisfies it.
type WelcomePublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// AuthService turns a verified external identity into an application user.
type AuthService struct {
	Users       repo.UserRepository
	Pub         WelcomePublisher
	MailEnabled bool
	Logger      *logrus.Logger
}

func NewAuthService(users repo.UserRepository, pub WelcomePublisher, mailEnabled bool, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Pub: pub, MailEnabled: mailEnabled, Logger: logger}
}

// Login resolves the identity to a user row, creating one on first login with
// the onboarding flag false. The find-or-create is atomic in the repository;
// a failed exchange never reaches this point, so no partial user state can
// exist. The returned bool reports first login.
func (s *AuthService) Login(ctx context.Context, ident *googleauth.ExternalIdentity) (*entity.User, bool, error) {
	u, created, err := s.Users.FindOrCreateByGoogleID(ctx, &entity.User{
		GoogleID:  ident.SubjectID,
		Email:     ident.Email,
		Name:      ident.Name,
		AvatarURL: ident.Picture,
	})
	if err != nil {
		return nil, false, err
	}

	if created && s.MailEnabled && s.Pub != nil {
		// Fire and forget; a queue hiccup must not fail the login.
		if err := s.Pub.PublishJSON(ctx, mailer.NewWelcomeJob(u.Email, u.Name)); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
		}
	}

	return u, created, nil
}

// LandingPath picks the post-login redirect target from freshly read user
// state: the onboarding form until preferences are first submitted, the
// dashboard afterwards.
func LandingPath(u *entity.User) string {
	if !u.HasCompletedForm {
		return "/preferences-form"
	}
	return "/dashboard"
}
