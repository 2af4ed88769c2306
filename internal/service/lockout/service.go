// Package lockout tracks failed login attempts and blocks accounts that
// exceed the configured threshold, on both the local and the cloud side.
package lockout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// accountRepo defines the local account store needed by the lockout service.
type accountRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	IncrementFailures(ctx context.Context, email string, maxAttempts int) (*domain.Account, error)
	ResetFailures(ctx context.Context, email string) error
	ResetFailuresByID(ctx context.Context, id int64) (*domain.Account, error)
	SetCloudDisabled(ctx context.Context, email string, disabled bool) error
	ListBlocked(ctx context.Context) ([]domain.Account, error)
}

// policyRepo defines the runtime settings store.
type policyRepo interface {
	GetInt(ctx context.Context, key string) (int, error)
	SetInt(ctx context.Context, key string, value int) error
}

// cloudIdentity defines the cloud identity operations the lockout mirror uses.
type cloudIdentity interface {
	LookupByEmail(ctx context.Context, email string) (*domain.CloudIdentity, error)
	SetDisabled(ctx context.Context, email string, disabled bool) error
}

// connectivity reports whether the cloud is reachable.
type connectivity interface {
	IsOnline(ctx context.Context) bool
}

// txManager defines the transaction manager interface needed by the lockout service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds lockout tuning.
type Config struct {
	DefaultMaxAttempts int
	PolicyCacheTTL     time.Duration
}

const policyCacheKey = domain.MaxLoginAttemptsKey

// Service implements the lockout state machine. Local state is the ground
// truth; the cloud disabled flag is a best-effort mirror.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	policy   policyRepo
	cloud    cloudIdentity
	probe    connectivity
	tx       txManager

	defaultMax int
	cache      *expirable.LRU[string, int]
	locks      *xsync.MapOf[string, *sync.Mutex]
}

// NewService creates a new lockout service. cloud may be nil when no cloud
// project is configured.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	policy policyRepo,
	cloud cloudIdentity,
	probe connectivity,
	tx txManager,
	cfg Config,
) *Service {
	defaultMax := cfg.DefaultMaxAttempts
	if defaultMax < 1 {
		defaultMax = domain.DefaultMaxLoginAttempts
	}
	return &Service{
		log:        logger.With("service", "lockout"),
		accounts:   accounts,
		policy:     policy,
		cloud:      cloud,
		probe:      probe,
		tx:         tx,
		defaultMax: defaultMax,
		cache:      expirable.NewLRU[string, int](1, nil, cfg.PolicyCacheTTL),
		locks:      xsync.NewMapOf[string, *sync.Mutex](),
	}
}

// lockFor returns the mutex serialising writes for one account.
func (s *Service) lockFor(email string) *sync.Mutex {
	mu, _ := s.locks.LoadOrCompute(email, func() *sync.Mutex { return &sync.Mutex{} })
	return mu
}

func (s *Service) cloudOnline(ctx context.Context) bool {
	return s.cloud != nil && s.probe.IsOnline(ctx)
}

// IsBlocked reports whether email is locked out locally or disabled in the
// cloud. Unknown accounts are not blocked. An unreachable cloud is ignored.
func (s *Service) IsBlocked(ctx context.Context, email string) (bool, error) {
	email = domain.NormalizeEmail(email)

	acc, err := s.accounts.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return false, fmt.Errorf("lockout.IsBlocked: %w", err)
	}
	if acc != nil && acc.Blocked {
		return true, nil
	}

	if !s.cloudOnline(ctx) {
		return false, nil
	}

	identity, err := s.cloud.LookupByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "cloud lockout check skipped",
				slog.String("email", email), slog.String("error", err.Error()))
		}
		return false, nil
	}
	return identity.Disabled, nil
}

// RecordFailure adds one failed attempt for email, creating the account row
// if needed, and blocks it once the threshold is reached. Calls for the same
// email are serialised.
func (s *Service) RecordFailure(ctx context.Context, email string) (*domain.Account, error) {
	email = domain.NormalizeEmail(email)
	maxAttempts := s.MaxAttempts(ctx)

	mu := s.lockFor(email)
	mu.Lock()
	defer mu.Unlock()

	var acc *domain.Account
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		acc, err = s.accounts.IncrementFailures(ctx, email, maxAttempts)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("lockout.RecordFailure: %w", err)
	}

	failuresTotal.Inc()
	s.log.InfoContext(ctx, "failed login recorded",
		slog.String("email", email),
		slog.Int("failed_attempts", acc.FailedAttempts),
		slog.Int("max_attempts", maxAttempts),
		slog.Bool("blocked", acc.Blocked),
	)

	if acc.Blocked && acc.FailedAttempts == maxAttempts {
		blocksTotal.Inc()
	}
	if acc.Blocked && !acc.CloudDisabled {
		s.mirrorCloud(ctx, acc, true)
	}

	return acc, nil
}

// RecordSuccess clears the failure counter and the blocked flag of email.
// Unknown emails are a no-op.
func (s *Service) RecordSuccess(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)

	mu := s.lockFor(email)
	mu.Lock()
	defer mu.Unlock()

	var acc *domain.Account
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		acc, err = s.accounts.GetByEmail(ctx, email)
		if errors.Is(err, domain.ErrNotFound) {
			acc = nil
			return nil
		}
		if err != nil {
			return err
		}
		return s.accounts.ResetFailures(ctx, email)
	})
	if err != nil {
		return fmt.Errorf("lockout.RecordSuccess: %w", err)
	}

	if acc != nil && acc.CloudDisabled {
		s.mirrorCloud(ctx, acc, false)
	}
	return nil
}

// Unlock is the administrative reset of the account with the given local id.
func (s *Service) Unlock(ctx context.Context, accountID int64) (*domain.Account, error) {
	var acc *domain.Account
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		acc, err = s.accounts.ResetFailuresByID(ctx, accountID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("lockout.Unlock: %w", err)
	}

	mu := s.lockFor(acc.Email)
	mu.Lock()
	defer mu.Unlock()

	s.log.InfoContext(ctx, "account unlocked",
		slog.Int64("account_id", acc.ID), slog.String("email", acc.Email))

	s.mirrorCloud(ctx, acc, false)
	return acc, nil
}

// ListBlocked returns every locally blocked account.
func (s *Service) ListBlocked(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accounts.ListBlocked(ctx)
	if err != nil {
		return nil, fmt.Errorf("lockout.ListBlocked: %w", err)
	}
	return accounts, nil
}

// mirrorCloud pushes the disabled flag to the cloud identity. Failures are
// logged and left for the next attempt; the local state has already landed.
func (s *Service) mirrorCloud(ctx context.Context, acc *domain.Account, disabled bool) {
	if !s.cloudOnline(ctx) {
		s.log.WarnContext(ctx, "cloud offline, lockout mirror deferred",
			slog.String("email", acc.Email), slog.Bool("disabled", disabled))
		return
	}

	if err := s.cloud.SetDisabled(ctx, acc.Email, disabled); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return
		}
		s.log.WarnContext(ctx, "cloud lockout mirror failed",
			slog.String("email", acc.Email), slog.Bool("disabled", disabled), slog.String("error", err.Error()))
		return
	}

	if err := s.accounts.SetCloudDisabled(ctx, acc.Email, disabled); err != nil {
		s.log.WarnContext(ctx, "cloud_disabled flag not persisted",
			slog.String("email", acc.Email), slog.String("error", err.Error()))
		return
	}
	acc.CloudDisabled = disabled
}
