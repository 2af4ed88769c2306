package auth

import (
	"time"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Path      domain.AuthPath
	Token     string
	ExpiresAt time.Time
	Account   *domain.Account
}
