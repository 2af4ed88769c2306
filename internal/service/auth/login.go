package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// Login authenticates email + password. The cloud is consulted when it is
// reachable, the local credential otherwise. Returns ErrAccountBlocked for a
// locked-out account and ErrInvalidCredential for any other rejection,
// without revealing whether the email exists.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	blocked, err := s.lockout.IsBlocked(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.Login check lockout: %w", err)
	}
	if blocked {
		loginsTotal.WithLabelValues("none", domain.LoginBlocked.String()).Inc()
		s.log.InfoContext(ctx, "login refused, account blocked", slog.String("email", input.Email))
		return nil, domain.ErrAccountBlocked
	}

	path := s.selectPath(ctx)

	var acc *domain.Account
	switch path {
	case domain.AuthPathCloud:
		err = s.authenticateCloud(ctx, input)
	default:
		acc, err = s.authenticateLocal(ctx, input)
	}

	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredential) {
			return nil, fmt.Errorf("auth.Login: %w", err)
		}
		s.rejected(ctx, path, input.Email)
		return nil, domain.ErrInvalidCredential
	}

	if path == domain.AuthPathCloud {
		acc = s.reconcile(ctx, input.Email, input.Password)
	} else if err := s.lockout.RecordSuccess(ctx, input.Email); err != nil {
		s.log.WarnContext(ctx, "lockout reset failed after login",
			slog.String("email", input.Email), slog.String("error", err.Error()))
	}

	session, err := s.sessions.IssueSession(input.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue session: %w", err)
	}

	loginsTotal.WithLabelValues(path.String(), domain.LoginSuccess.String()).Inc()
	s.log.InfoContext(ctx, "user logged in",
		slog.String("email", input.Email), slog.String("path", path.String()))

	return &LoginResult{
		Path:      path,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Account:   acc,
	}, nil
}

// authenticateCloud verifies the password against the cloud identity. Any
// cloud error is a rejection.
func (s *Service) authenticateCloud(ctx context.Context, input LoginInput) error {
	if err := s.cloud.VerifyPassword(ctx, input.Email, input.Password); err != nil {
		if !errors.Is(err, domain.ErrInvalidCredential) {
			s.log.WarnContext(ctx, "cloud verification failed",
				slog.String("email", input.Email), slog.String("error", err.Error()))
		}
		return domain.ErrInvalidCredential
	}
	return nil
}

// reconcile upserts the local account with a fresh hash of a password the
// cloud has just accepted and clears its lockout state, in one local
// transaction. The cloud verdict stands when this fails; the error is logged
// and the returned account is nil.
func (s *Service) reconcile(ctx context.Context, email, password string) *domain.Account {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		s.log.WarnContext(ctx, "local credential reconciliation failed",
			slog.String("email", email), slog.String("error", err.Error()))
		return nil
	}

	var acc *domain.Account
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The reset goes first: it takes the per-email lockout mutex, which
		// must not be awaited while this transaction holds the account row.
		if err := s.lockout.RecordSuccess(txCtx, email); err != nil {
			return fmt.Errorf("reset lockout: %w", err)
		}
		var err error
		if acc, err = s.accounts.UpsertCredential(txCtx, email, string(hash)); err != nil {
			return fmt.Errorf("upsert credential: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.WarnContext(ctx, "local credential reconciliation failed",
			slog.String("email", email), slog.String("error", err.Error()))
		return nil
	}

	reconciledTotal.Inc()
	return acc
}

// authenticateLocal checks the password against the locally stored hash.
func (s *Service) authenticateLocal(ctx context.Context, input LoginInput) (*domain.Account, error) {
	acc, err := s.accounts.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredential
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	if !acc.HasPassword() {
		return nil, domain.ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*acc.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredential
	}
	return acc, nil
}

func (s *Service) rejected(ctx context.Context, path domain.AuthPath, email string) {
	loginsTotal.WithLabelValues(path.String(), domain.LoginRejected.String()).Inc()

	acc, err := s.lockout.RecordFailure(ctx, email)
	if err != nil {
		s.log.ErrorContext(ctx, "failed attempt not recorded",
			slog.String("email", email), slog.String("error", err.Error()))
		return
	}

	s.log.InfoContext(ctx, "login rejected",
		slog.String("email", email),
		slog.String("path", path.String()),
		slog.Int("failed_attempts", acc.FailedAttempts),
		slog.Bool("blocked", acc.Blocked),
	)
}
