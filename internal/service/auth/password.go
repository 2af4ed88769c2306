package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// ChangePassword replaces the password of an account. The cloud is updated
// first and the local hash only after the cloud accepted the change, so the
// operation requires connectivity when a cloud project is configured.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return err
	}

	blocked, err := s.lockout.IsBlocked(ctx, input.Email)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword check lockout: %w", err)
	}
	if blocked {
		return domain.ErrAccountBlocked
	}

	if s.cloud != nil {
		if !s.probe.IsOnline(ctx) {
			return fmt.Errorf("auth.ChangePassword: %w", domain.ErrUnreachable)
		}
		if err := s.cloud.VerifyPassword(ctx, input.Email, input.OldPassword); err != nil {
			return fmt.Errorf("auth.ChangePassword verify: %w", err)
		}
		if err := s.cloud.SetPassword(ctx, input.Email, input.NewPassword); err != nil {
			return fmt.Errorf("auth.ChangePassword cloud: %w", err)
		}
	} else if _, err := s.authenticateLocal(ctx, LoginInput{Email: input.Email, Password: input.OldPassword}); err != nil {
		return fmt.Errorf("auth.ChangePassword verify: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword hash password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, err := s.accounts.UpsertCredential(txCtx, input.Email, string(hash))
		return err
	})
	if err != nil {
		return fmt.Errorf("auth.ChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.String("email", input.Email))
	return nil
}
