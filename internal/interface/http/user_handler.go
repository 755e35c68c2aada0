package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/heelmeals/nutritrack/internal/application"
	"github.com/heelmeals/nutritrack/internal/domain/entity"
	"github.com/heelmeals/nutritrack/internal/interface/middleware"
	"github.com/heelmeals/nutritrack/pkg/response"
	"github.com/heelmeals/nutritrack/pkg/validation"
)

// UserService is the slice of the application layer the user handler needs.
type UserService interface {
	Profile(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID, name, email string) (*entity.User, error)
	Preferences(ctx context.Context, userID string) (*entity.Preferences, error)
	SavePreferences(ctx context.Context, userID string, p entity.Preferences) error
	UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error)
}

type UserHandler struct {
	Svc    UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// preferencesRequest deliberately has no field validation: any well-formed
// body is accepted and completes onboarding, partial or not.
type preferencesRequest struct {
	Height              *float64 `json:"height"`
	Weight              *float64 `json:"weight"`
	Age                 *int     `json:"age"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	NutritionGoals      *string  `json:"nutritionGoals"`
	ActivityLevel       *int     `json:"activityLevel"`
}

func userProjection(u *entity.User) gin.H {
	return gin.H{
		"id":                   u.ID,
		"email":                u.Email,
		"name":                 u.Name,
		"avatar_url":           u.AvatarURL,
		"height":               u.Preferences.Height,
		"weight":               u.Preferences.Weight,
		"age":                  u.Preferences.Age,
		"dietary_restrictions": u.Preferences.DietaryRestrictions,
		"nutrition_goals":      u.Preferences.NutritionGoals,
		"activity_level":       u.Preferences.ActivityLevel,
		"has_completed_form":   u.HasCompletedForm,
		"created_at":           u.CreatedAt,
		"updated_at":           u.UpdatedAt,
	}
}

// GetUser GET /api/user
func (h *UserHandler) GetUser(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.Profile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("fetch user failed")
		response.Error[any](c, http.StatusInternalServerError, "error fetching user data", nil)
		return
	}
	response.Success(c, http.StatusOK, userProjection(u), "user", nil)
}

// UpdateProfile PUT /api/user/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, req.Name, req.Email)
	if err != nil {
		h.Logger.WithError(err).Error("update profile failed")
		response.Error[any](c, http.StatusInternalServerError, "error updating user profile", nil)
		return
	}
	response.Success(c, http.StatusOK, userProjection(u), "profile updated successfully", nil)
}

// GetPreferences GET /api/preferences
func (h *UserHandler) GetPreferences(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Preferences(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("fetch preferences failed")
		response.Error[any](c, http.StatusInternalServerError, "error fetching user preferences", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"height":               p.Height,
		"weight":               p.Weight,
		"age":                  p.Age,
		"dietary_restrictions": p.DietaryRestrictions,
		"nutrition_goals":      p.NutritionGoals,
		"activity_level":       p.ActivityLevel,
	}, "preferences", nil)
}

// SavePreferences POST /api/preferences
// Any submission, however partial, flips the onboarding flag.
func (h *UserHandler) SavePreferences(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p := entity.Preferences{
		Height:              req.Height,
		Weight:              req.Weight,
		Age:                 req.Age,
		DietaryRestrictions: req.DietaryRestrictions,
		NutritionGoals:      req.NutritionGoals,
		ActivityLevel:       req.ActivityLevel,
	}
	if err := h.Svc.SavePreferences(c.Request.Context(), uid, p); err != nil {
		h.Logger.WithError(err).Error("save preferences failed")
		response.Error[any](c, http.StatusInternalServerError, "error updating preferences", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"updated": true}, "preferences updated successfully", nil)
}

// UploadAvatar POST /api/user/avatar
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing avatar file", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable avatar file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), uid, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		h.Logger.WithError(err).Error("avatar upload failed")
		response.Error[any](c, http.StatusInternalServerError, "error uploading avatar", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatar_url": url}, "avatar updated", nil)
}
