package services

import (
	"crypto/subtle"
	"errors"

	"github.com/dimitrije/handlepick/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialService checks the static admin username and password.
type CredentialService struct {
	username     string
	password     string
	passwordHash []byte
}

func NewCredentialService(cfg config.AdminConfig) *CredentialService {
	s := &CredentialService{
		username: cfg.Username,
		password: cfg.Password,
	}
	if cfg.PasswordHash != "" {
		s.passwordHash = []byte(cfg.PasswordHash)
	}
	return s
}

func (s *CredentialService) Configured() bool {
	return s.username != "" && (s.password != "" || len(s.passwordHash) > 0)
}

// Check returns ErrInvalidCredentials for every failure, whichever half of
// the pair was wrong.
func (s *CredentialService) Check(username, password string) error {
	if !s.Configured() {
		return ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	var passOK bool
	if len(s.passwordHash) > 0 {
		passOK = bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	}

	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}
