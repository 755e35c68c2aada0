package postgres

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heelmeals/nutritrack/internal/domain/entity"
	"github.com/heelmeals/nutritrack/internal/domain/repository"
)

type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

func (r *MenuRepository) List(ctx context.Context, diningHall, search string) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, name, dining_hall, calories, protein, carbs, fat, description
		FROM menu_items
		WHERE 1=1`
	args := make([]any, 0, 2)

	if diningHall != "" {
		args = append(args, diningHall)
		query += " AND dining_hall = $" + strconv.Itoa(len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += " AND name ILIKE $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY dining_hall, name"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.MenuItem, 0)
	for rows.Next() {
		m := &entity.MenuItem{}
		if err := rows.Scan(&m.ID, &m.Name, &m.DiningHall, &m.Calories, &m.Protein, &m.Carbs, &m.Fat, &m.Description); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

var _ repository.MenuRepository = (*MenuRepository)(nil)
