package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/heelmeals/nutritrack/internal/domain/entity"
	"github.com/heelmeals/nutritrack/pkg/response"
)

// MenuService is the slice of the application layer the menu handler needs.
type MenuService interface {
	List(ctx context.Context, diningHall, search string) ([]*entity.MenuItem, error)
}

type MenuHandler struct {
	Svc    MenuService
	Logger *logrus.Logger
}

func NewMenuHandler(svc MenuService, logger *logrus.Logger) *MenuHandler {
	return &MenuHandler{Svc: svc, Logger: logger}
}

// List GET /api/menu-items?diningHall&search
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context(), c.Query("diningHall"), c.Query("search"))
	if err != nil {
		h.Logger.WithError(err).Error("fetch menu items failed")
		response.Error[any](c, http.StatusInternalServerError, "error fetching menu items", nil)
		return
	}

	out := make([]gin.H, 0, len(items))
	for _, m := range items {
		out = append(out, gin.H{
			"id":          m.ID,
			"name":        m.Name,
			"dining_hall": m.DiningHall,
			"calories":    m.Calories,
			"protein":     m.Protein,
			"carbs":       m.Carbs,
			"fat":         m.Fat,
			"description": m.Description,
		})
	}
	response.Success(c, http.StatusOK, out, "menu items", nil)
}
