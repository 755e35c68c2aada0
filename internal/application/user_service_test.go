package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heelmeals/nutritrack/internal/domain/entity"
	repo "github.com/heelmeals/nutritrack/internal/domain/repository"
)

func TestProfileNotFound(t *testing.T) {
	users := &userRepoMock{getByIDFn: func(context.Context, string) (*entity.User, error) {
		return nil, repo.ErrNotFound
	}}
	svc := NewUserService(users, nil, "", quietLogger())

	_, err := svc.Profile(context.Background(), "u-missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfileReturnsFreshState(t *testing.T) {
	updated := false
	users := &userRepoMock{
		updateProfileFn: func(_ context.Context, id, name, email string) error {
			assert.Equal(t, "u-1", id)
			assert.Equal(t, "Jordan B", name)
			updated = true
			return nil
		},
		getByIDFn: func(context.Context, string) (*entity.User, error) {
			return &entity.User{ID: "u-1", Name: "Jordan B"}, nil
		},
	}
	svc := NewUserService(users, nil, "", quietLogger())

	u, err := svc.UpdateProfile(context.Background(), "u-1", "Jordan B", "jb@live.unc.edu")
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "Jordan B", u.Name)
}

func TestSavePreferencesPassesThrough(t *testing.T) {
	height := 170.0
	var saved entity.Preferences
	users := &userRepoMock{updatePreferencesFn: func(_ context.Context, id string, p entity.Preferences) error {
		assert.Equal(t, "u-1", id)
		saved = p
		return nil
	}}
	svc := NewUserService(users, nil, "", quietLogger())

	err := svc.SavePreferences(context.Background(), "u-1", entity.Preferences{Height: &height})
	require.NoError(t, err)
	require.NotNil(t, saved.Height)
	assert.Equal(t, 170.0, *saved.Height)
	assert.Nil(t, saved.Age, "absent fields are stored as null")
}

func TestUploadAvatarWithoutGCS(t *testing.T) {
	svc := NewUserService(&userRepoMock{}, nil, "", quietLogger())

	_, err := svc.UploadAvatar(context.Background(), "u-1", strings.NewReader("img"), "me.png", "image/png")
	assert.Error(t, err)
}
