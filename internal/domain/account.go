package domain

import (
	"strings"
	"time"
)

// DefaultMaxLoginAttempts applies when app_config has no max_login_attempts row.
const DefaultMaxLoginAttempts = 3

// MaxLoginAttemptsKey is the app_config key of the lockout threshold.
const MaxLoginAttemptsKey = "max_login_attempts"

// Account is the local credential and lockout state of one user.
type Account struct {
	ID             int64
	Email          string
	PasswordHash   *string
	FailedAttempts int
	Blocked        bool
	CloudDisabled  bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasPassword reports whether the account carries a usable local credential.
// Accounts lazily created by a failed attempt have none.
func (a *Account) HasPassword() bool {
	return a.PasswordHash != nil && *a.PasswordHash != ""
}

// CloudIdentity is the remote view of an account.
type CloudIdentity struct {
	UID      string
	Email    string
	Disabled bool
}

// NormalizeEmail is the canonical form used as the account key on both sides.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AuthPath is the backend selected for one login attempt.
type AuthPath string

const (
	AuthPathLocal AuthPath = "local"
	AuthPathCloud AuthPath = "cloud"
)

func (p AuthPath) String() string { return string(p) }

// LoginOutcome is the terminal state of a login attempt.
type LoginOutcome string

const (
	LoginSuccess  LoginOutcome = "success"
	LoginRejected LoginOutcome = "rejected"
	LoginBlocked  LoginOutcome = "blocked"
)

func (o LoginOutcome) String() string { return string(o) }
