package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dimitrije/handlepick/internal/database"
	"github.com/dimitrije/handlepick/internal/models"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateUser inserts a user row directly. By default the user has a unique
// handle and is not picked.
func (f *Fixtures) CreateUser(t *testing.T, opts ...UserOption) *models.User {
	t.Helper()
	f.counter++

	name := fmt.Sprintf("Test User %d", f.counter)
	handle := fmt.Sprintf("handle%d", f.counter)
	user := &models.User{
		Email:         fmt.Sprintf("user%d@example.com", f.counter),
		Name:          &name,
		YoutubeHandle: &handle,
	}

	for _, opt := range opts {
		opt(user)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, name, phone, youtube_handle, picked, picked_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, user.Email, user.Name, user.Phone, user.YoutubeHandle, user.Picked, user.PickedAt,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	// Keep created_at strictly increasing so ordering assertions are stable.
	time.Sleep(2 * time.Millisecond)

	return user
}

// UserOption is a functional option for creating users
type UserOption func(*models.User)

// WithEmail sets the user's email
func WithEmail(email string) UserOption {
	return func(u *models.User) {
		u.Email = email
	}
}

// WithHandle sets the user's handle
func WithHandle(handle string) UserOption {
	return func(u *models.User) {
		u.YoutubeHandle = &handle
	}
}

// WithoutHandle leaves the handle NULL
func WithoutHandle() UserOption {
	return func(u *models.User) {
		u.YoutubeHandle = nil
	}
}

// WithPicked marks the user picked at the given time
func WithPicked(at time.Time) UserOption {
	return func(u *models.User) {
		u.Picked = true
		u.PickedAt = &at
	}
}
