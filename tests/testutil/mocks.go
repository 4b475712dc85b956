package testutil

import (
	"context"
	"time"

	"github.com/dimitrije/handlepick/internal/models"
	"github.com/dimitrije/handlepick/internal/oauth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserService mocks the UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Upsert(ctx context.Context, email string, profile models.Profile) (*models.User, error) {
	args := m.Called(ctx, email, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockPickService mocks the PickService
type MockPickService struct {
	mock.Mock
}

func (m *MockPickService) Peek(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPickService) List(ctx context.Context) ([]models.User, []models.User, error) {
	args := m.Called(ctx)
	var notPicked, picked []models.User
	if v := args.Get(0); v != nil {
		notPicked = v.([]models.User)
	}
	if v := args.Get(1); v != nil {
		picked = v.([]models.User)
	}
	return notPicked, picked, args.Error(2)
}

func (m *MockPickService) Commit(ctx context.Context, limit int) ([]uuid.UUID, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// MockSessionService mocks the SessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Issue(email, name string) (string, error) {
	args := m.Called(email, name)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Expiry() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

// MockCredentialService mocks the CredentialService
type MockCredentialService struct {
	mock.Mock
}

func (m *MockCredentialService) Check(username, password string) error {
	args := m.Called(username, password)
	return args.Error(0)
}

// MockProvider mocks an oauth.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetConsentURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockProvider) ExchangeCode(ctx context.Context, code string) (*oauth.UserInfo, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth.UserInfo), args.Error(1)
}

func (m *MockProvider) Name() string {
	return "mock"
}
