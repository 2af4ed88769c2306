package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// Register creates the cloud identity and then the local account. The cloud
// step is mandatory when a cloud project is configured: an unreachable cloud
// fails the whole registration. Returns ErrAlreadyExists if the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Account, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if s.cloud != nil {
		if !s.probe.IsOnline(ctx) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrUnreachable)
		}
		if _, err := s.cloud.Create(ctx, input.Email, input.Password); err != nil {
			return nil, fmt.Errorf("auth.Register cloud: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	var acc *domain.Account
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		acc, err = s.accounts.Create(txCtx, input.Email, string(hash))
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.Int64("account_id", acc.ID), slog.String("email", acc.Email))

	return acc, nil
}
