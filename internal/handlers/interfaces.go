package handlers

import (
	"context"
	"time"

	"github.com/dimitrije/handlepick/internal/models"
	"github.com/google/uuid"
)

// UserServiceInterface defines the methods used by handlers from UserService
type UserServiceInterface interface {
	Upsert(ctx context.Context, email string, profile models.Profile) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// PickServiceInterface defines the methods used by handlers from PickService
type PickServiceInterface interface {
	Peek(ctx context.Context, limit int) ([]string, error)
	List(ctx context.Context) (notPicked, picked []models.User, err error)
	Commit(ctx context.Context, limit int) ([]uuid.UUID, error)
}

// SessionServiceInterface defines the methods used by handlers from SessionService
type SessionServiceInterface interface {
	Issue(email, name string) (string, error)
	Expiry() time.Duration
}

// CredentialServiceInterface defines the methods used by handlers from CredentialService
type CredentialServiceInterface interface {
	Check(username, password string) error
}
