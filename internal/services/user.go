package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dimitrije/handlepick/internal/database"
	"github.com/dimitrije/handlepick/internal/models"
	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("not found")

const userColumns = `id, email, name, phone, youtube_handle, picked, picked_at, created_at, updated_at`

type UserService struct {
	db *database.DB
}

func NewUserService(db *database.DB) *UserService {
	return &UserService{db: db}
}

// Upsert creates the profile for email or updates its editable fields.
// Phone and handle are only overwritten when supplied or explicitly cleared;
// the picked state is never written here.
func (s *UserService) Upsert(ctx context.Context, email string, profile models.Profile) (*models.User, error) {
	row := s.db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, name, phone, youtube_handle)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			phone = CASE WHEN $5 THEN NULL ELSE COALESCE(EXCLUDED.phone, users.phone) END,
			youtube_handle = CASE WHEN $6 THEN NULL ELSE COALESCE(EXCLUDED.youtube_handle, users.youtube_handle) END,
			updated_at = NOW()
		RETURNING `+userColumns,
		email, profile.Name, profile.Phone, profile.YoutubeHandle,
		profile.ClearPhone, profile.ClearYoutubeHandle,
	)

	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.Pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users WHERE email = $1
	`, email)

	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.Phone, &user.YoutubeHandle,
		&user.Picked, &user.PickedAt, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
