package repository

import (
	"context"

	"github.com/heelmeals/nutritrack/internal/domain/entity"
)

// MenuRepository defines read access to the dining-hall menu catalog.
type MenuRepository interface {
	// List returns menu items, optionally filtered by exact dining hall and a
	// case-insensitive substring match on the name. Empty filters match all rows.
	List(ctx context.Context, diningHall, search string) ([]*entity.MenuItem, error)
}
