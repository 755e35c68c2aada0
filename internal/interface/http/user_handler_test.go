package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heelmeals/nutritrack/internal/application"
	"github.com/heelmeals/nutritrack/internal/domain/entity"
	"github.com/heelmeals/nutritrack/internal/interface/middleware"
)

type userSvcMock struct {
	profileFn         func(ctx context.Context, userID string) (*entity.User, error)
	updateProfileFn   func(ctx context.Context, userID, name, email string) (*entity.User, error)
	preferencesFn     func(ctx context.Context, userID string) (*entity.Preferences, error)
	savePreferencesFn func(ctx context.Context, userID string, p entity.Preferences) error
	uploadAvatarFn    func(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error)
}

func (m *userSvcMock) Profile(ctx context.Context, userID string) (*entity.User, error) {
	return m.profileFn(ctx, userID)
}

func (m *userSvcMock) UpdateProfile(ctx context.Context, userID, name, email string) (*entity.User, error) {
	return m.updateProfileFn(ctx, userID, name, email)
}

func (m *userSvcMock) Preferences(ctx context.Context, userID string) (*entity.Preferences, error) {
	return m.preferencesFn(ctx, userID)
}

func (m *userSvcMock) SavePreferences(ctx context.Context, userID string, p entity.Preferences) error {
	return m.savePreferencesFn(ctx, userID, p)
}

func (m *userSvcMock) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	return m.uploadAvatarFn(ctx, userID, r, filename, contentType)
}

// asUser stands in for the session gate and injects a resolved user id.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserIDKey, userID)
		c.Next()
	}
}

func userEngine(h *UserHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/user", asUser("u-1"), h.GetUser)
	r.PUT("/api/user/profile", asUser("u-1"), h.UpdateProfile)
	r.GET("/api/preferences", asUser("u-1"), h.GetPreferences)
	r.POST("/api/preferences", asUser("u-1"), h.SavePreferences)
	return r
}

func TestGetUser(t *testing.T) {
	height := 170.0
	svc := &userSvcMock{profileFn: func(_ context.Context, userID string) (*entity.User, error) {
		assert.Equal(t, "u-1", userID)
		return &entity.User{
			ID:          "u-1",
			Email:       "jordan@live.unc.edu",
			Name:        "Jordan",
			Preferences: entity.Preferences{Height: &height},
		}, nil
	}}
	r := userEngine(NewUserHandler(svc, testLogger()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"email":"jordan@live.unc.edu"`)
	assert.Contains(t, body, `"height":170`)
	assert.Contains(t, body, `"has_completed_form":false`)
	assert.NotContains(t, body, "google_id", "external subject id never leaves the server")
}

func TestGetUserNotFound(t *testing.T) {
	svc := &userSvcMock{profileFn: func(context.Context, string) (*entity.User, error) {
		return nil, application.ErrUserNotFound
	}}
	r := userEngine(NewUserHandler(svc, testLogger()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
}

func TestUpdateProfileValidation(t *testing.T) {
	svc := &userSvcMock{updateProfileFn: func(context.Context, string, string, string) (*entity.User, error) {
		t.Error("service must not be hit with an invalid payload")
		return nil, nil
	}}
	r := userEngine(NewUserHandler(svc, testLogger()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/user/profile", strings.NewReader(`{"name":"Jordan"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	svc := &userSvcMock{updateProfileFn: func(_ context.Context, userID, name, email string) (*entity.User, error) {
		assert.Equal(t, "u-1", userID)
		assert.Equal(t, "Jordan B", name)
		assert.Equal(t, "jb@live.unc.edu", email)
		return &entity.User{ID: userID, Name: name, Email: email}, nil
	}}
	r := userEngine(NewUserHandler(svc, testLogger()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/user/profile", strings.NewReader(`{"name":"Jordan B","email":"jb@live.unc.edu"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "profile updated successfully")
}

func TestSavePreferencesPartialBody(t *testing.T) {
	var saved entity.Preferences
	svc := &userSvcMock{savePreferencesFn: func(_ context.Context, userID string, p entity.Preferences) error {
		assert.Equal(t, "u-1", userID)
		saved = p
		return nil
	}}
	r := userEngine(NewUserHandler(svc, testLogger()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/preferences", strings.NewReader(`{"height":170.5,"dietaryRestrictions":["vegetarian"]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// A partial submission is accepted as-is; absent fields stay nil.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "preferences updated successfully")
	require.NotNil(t, saved.Height)
	assert.Equal(t, 170.5, *saved.Height)
	assert.Equal(t, []string{"vegetarian"}, saved.DietaryRestrictions)
	assert.Nil(t, saved.Weight)
	assert.Nil(t, saved.Age)
}

func TestSavePreferencesMalformedJSON(t *testing.T) {
	svc := &userSvcMock{savePreferencesFn: func(context.Context, string, entity.Preferences) error {
		t.Error("service must not be hit with a malformed body")
		return nil
	}}
	r := userEngine(NewUserHandler(svc, testLogger()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/preferences", strings.NewReader(`{"height":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPreferences(t *testing.T) {
	age := 21
	goals := "bulking"
	svc := &userSvcMock{preferencesFn: func(context.Context, string) (*entity.Preferences, error) {
		return &entity.Preferences{Age: &age, NutritionGoals: &goals}, nil
	}}
	r := userEngine(NewUserHandler(svc, testLogger()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/preferences", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"age":21`)
	assert.Contains(t, body, `"nutrition_goals":"bulking"`)
	assert.Contains(t, body, `"height":null`, "unset fields surface as null, not zero")
}
