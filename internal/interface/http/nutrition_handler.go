package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/heelmeals/nutritrack/internal/application"
	"github.com/heelmeals/nutritrack/internal/domain/entity"
	"github.com/heelmeals/nutritrack/internal/interface/middleware"
	"github.com/heelmeals/nutritrack/pkg/response"
	"github.com/heelmeals/nutritrack/pkg/validation"
)

const dateLayout = "2006-01-02"

// NutritionService is the slice of the application layer the nutrition
// handler needs.
type NutritionService interface {
	Append(ctx context.Context, userID string, date time.Time, items json.RawMessage) (*entity.NutritionLog, error)
	LogsInRange(ctx context.Context, userID string, start, end time.Time) ([]*entity.NutritionLog, error)
	PlaceholderSeries() []application.DailyCalories
}

type NutritionHandler struct {
	Svc    NutritionService
	Logger *logrus.Logger
}

func NewNutritionHandler(svc NutritionService, logger *logrus.Logger) *NutritionHandler {
	return &NutritionHandler{Svc: svc, Logger: logger}
}

type appendLogRequest struct {
	Date  string          `json:"date" binding:"required,datetime=2006-01-02"`
	Items json.RawMessage `json:"items" binding:"required"`
}

// AppendLog POST /api/nutrition/log
func (h *NutritionHandler) AppendLog(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req appendLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	date, _ := time.Parse(dateLayout, req.Date)

	log, err := h.Svc.Append(c.Request.Context(), uid, date, req.Items)
	if err != nil {
		h.Logger.WithError(err).Error("append nutrition log failed")
		response.Error[any](c, http.StatusInternalServerError, "error adding nutrition log", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": log.ID}, "nutrition log added successfully", nil)
}

// ListLogs GET /api/nutrition/logs?startDate&endDate
// With both bounds: the user's persisted rows, date ascending. Without: a
// synthetic 7-day series the caller must not treat as stored data.
func (h *NutritionHandler) ListLogs(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	startStr := c.Query("startDate")
	endStr := c.Query("endDate")

	if startStr == "" || endStr == "" {
		response.Success(c, http.StatusOK, h.Svc.PlaceholderSeries(), "nutrition logs (sample)", gin.H{"placeholder": true})
		return
	}

	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid startDate", nil)
		return
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid endDate", nil)
		return
	}

	logs, err := h.Svc.LogsInRange(c.Request.Context(), uid, start, end)
	if err != nil {
		h.Logger.WithError(err).Error("fetch nutrition logs failed")
		response.Error[any](c, http.StatusInternalServerError, "error fetching nutrition logs", nil)
		return
	}

	out := make([]gin.H, 0, len(logs))
	for _, l := range logs {
		out = append(out, gin.H{
			"id":             l.ID,
			"date":           l.Date.Format(dateLayout),
			"items":          l.Items,
			"total_calories": l.TotalCalories,
			"created_at":     l.CreatedAt,
		})
	}
	response.Success(c, http.StatusOK, out, "nutrition logs", nil)
}
