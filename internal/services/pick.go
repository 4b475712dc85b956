package services

import (
	"context"
	"fmt"

	"github.com/dimitrije/handlepick/internal/database"
	"github.com/dimitrije/handlepick/internal/models"
	"github.com/google/uuid"
)

// BatchSize is the most records a single peek or commit returns.
const BatchSize = 10

type PickService struct {
	db *database.DB
}

func NewPickService(db *database.DB) *PickService {
	return &PickService{db: db}
}

// Peek returns up to limit eligible handles in random order. It never
// changes the picked state.
func (s *PickService) Peek(ctx context.Context, limit int) ([]string, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT youtube_handle FROM users
		WHERE youtube_handle IS NOT NULL AND length(youtube_handle) > 0
		ORDER BY random()
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query random handles: %w", err)
	}
	defer rows.Close()

	handles := []string{}
	for rows.Next() {
		var handle string
		if err := rows.Scan(&handle); err != nil {
			return nil, fmt.Errorf("failed to scan handle: %w", err)
		}
		handles = append(handles, handle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read handles: %w", err)
	}

	return handles, nil
}

// List returns every record with a non-null handle, split by picked state,
// each part ordered by creation time.
func (s *PickService) List(ctx context.Context) (notPicked, picked []models.User, err error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE youtube_handle IS NOT NULL
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	notPicked = []models.User{}
	picked = []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan user: %w", err)
		}
		if user.Picked {
			picked = append(picked, *user)
		} else {
			notPicked = append(notPicked, *user)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read users: %w", err)
	}

	return notPicked, picked, nil
}

// Commit claims up to limit random unpicked eligible records and marks them
// picked in one statement. Rows locked by a concurrent commit are skipped, so
// two commits never return the same id.
func (s *PickService) Commit(ctx context.Context, limit int) ([]uuid.UUID, error) {
	rows, err := s.db.Pool.Query(ctx, `
		UPDATE users SET picked = true, picked_at = NOW()
		WHERE picked = false AND id IN (
			SELECT id FROM users
			WHERE youtube_handle IS NOT NULL
				AND length(youtube_handle) > 0
				AND picked = false
			ORDER BY random()
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim users: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan claimed id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read claimed ids: %w", err)
	}

	return ids, nil
}
