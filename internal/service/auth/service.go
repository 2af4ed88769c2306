// Package auth arbitrates logins between the cloud identity store and the
// local credential store and keeps the local copy of the credential current.
package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/roadworks-backend/internal/auth"
	"github.com/heartmarshall/roadworks-backend/internal/config"
	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// accountRepo defines the local credential store needed by auth service.
type accountRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, email, passwordHash string) (*domain.Account, error)
	UpsertCredential(ctx context.Context, email, passwordHash string) (*domain.Account, error)
}

// cloudIdentity defines the cloud identity operations needed by auth service.
type cloudIdentity interface {
	VerifyPassword(ctx context.Context, email, password string) error
	Create(ctx context.Context, email, password string) (*domain.CloudIdentity, error)
	SetPassword(ctx context.Context, email, password string) error
}

// lockoutGuard defines the lockout operations needed by auth service.
type lockoutGuard interface {
	IsBlocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) (*domain.Account, error)
	RecordSuccess(ctx context.Context, email string) error
}

// connectivity reports whether the cloud is reachable.
type connectivity interface {
	IsOnline(ctx context.Context) bool
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// sessionIssuer defines the session token operations needed by auth service.
type sessionIssuer interface {
	IssueSession(email string) (*auth.Session, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	cloud    cloudIdentity
	lockout  lockoutGuard
	probe    connectivity
	tx       txManager
	sessions sessionIssuer
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance. cloud may be nil when no
// cloud project is configured; every login then takes the local path.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	cloud cloudIdentity,
	lockout lockoutGuard,
	probe connectivity,
	tx txManager,
	sessions sessionIssuer,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		accounts: accounts,
		cloud:    cloud,
		lockout:  lockout,
		probe:    probe,
		tx:       tx,
		sessions: sessions,
		cfg:      cfg,
	}
}

// selectPath decides once per attempt which store authenticates.
func (s *Service) selectPath(ctx context.Context) domain.AuthPath {
	if s.cloud != nil && s.probe.IsOnline(ctx) {
		return domain.AuthPathCloud
	}
	return domain.AuthPathLocal
}
