package application

import (
	"context"

	"github.com/heelmeals/nutritrack/internal/domain/entity"
	repo "github.com/heelmeals/nutritrack/internal/domain/repository"
)

// MenuService fronts the dining-hall menu catalog.
type MenuService struct {
	Menu repo.MenuRepository
}

func NewMenuService(menu repo.MenuRepository) *MenuService {
	return &MenuService{Menu: menu}
}

// List filters by exact dining hall and case-insensitive name substring;
// empty filters return everything.
func (s *MenuService) List(ctx context.Context, diningHall, search string) ([]*entity.MenuItem, error) {
	return s.Menu.List(ctx, diningHall, search)
}
