package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heelmeals/nutritrack/internal/domain/entity"
	"github.com/heelmeals/nutritrack/internal/domain/repository"
)

const userColumns = `id, google_id, email, name, avatar_url, height, weight, age,
		dietary_restrictions, nutrition_goals, activity_level, has_completed_form,
		created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.GoogleID, &u.Email, &u.Name, &u.AvatarURL,
		&u.Preferences.Height, &u.Preferences.Weight, &u.Preferences.Age,
		&u.Preferences.DietaryRestrictions, &u.Preferences.NutritionGoals,
		&u.Preferences.ActivityLevel, &u.HasCompletedForm,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// FindOrCreateByGoogleID inserts a row for an unseen subject id or fetches the
// existing one. ON CONFLICT DO NOTHING keeps the insert-or-fetch atomic: two
// concurrent first logins produce exactly one row, and repeat logins never
// touch the stored name or email.
func (r *UserRepository) FindOrCreateByGoogleID(ctx context.Context, u *entity.User) (*entity.User, bool, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (google_id, email, name, avatar_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (google_id) DO NOTHING
		RETURNING `+userColumns+`
	`, u.GoogleID, u.Email, u.Name, u.AvatarURL)

	created, err := scanUser(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	existing, err := scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE google_id = $1
	`, u.GoogleID))
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id))
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id, name, email string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = $1, email = $2, updated_at = $3
		WHERE id = $4
	`, name, email, time.Now(), id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// UpdatePreferences overwrites all six preference columns with the submitted
// values (nil pointers become NULL) and flips has_completed_form true no
// matter which fields were present. Last write wins on concurrent submissions.
func (r *UserRepository) UpdatePreferences(ctx context.Context, id string, p entity.Preferences) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET height = $1, weight = $2, age = $3, dietary_restrictions = $4,
		    nutrition_goals = $5, activity_level = $6,
		    has_completed_form = TRUE, updated_at = $7
		WHERE id = $8
	`, p.Height, p.Weight, p.Age, p.DietaryRestrictions, p.NutritionGoals, p.ActivityLevel, time.Now(), id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateAvatarURL(ctx context.Context, id, avatarURL string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET avatar_url = $1, updated_at = $2
		WHERE id = $3
	`, avatarURL, time.Now(), id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
