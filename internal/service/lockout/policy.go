package lockout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// MaxAttempts returns the current lockout threshold. It is read through a
// short-lived cache; a missing or unreadable setting yields the default.
func (s *Service) MaxAttempts(ctx context.Context) int {
	if v, ok := s.cache.Get(policyCacheKey); ok {
		return v
	}

	v, err := s.policy.GetInt(ctx, domain.MaxLoginAttemptsKey)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		v = s.defaultMax
	case err != nil:
		s.log.WarnContext(ctx, "lockout policy unreadable, using default",
			slog.Int("default", s.defaultMax), slog.String("error", err.Error()))
		return s.defaultMax
	case v < 1:
		s.log.WarnContext(ctx, "lockout policy out of range, using default", slog.Int("value", v))
		v = s.defaultMax
	}

	s.cache.Add(policyCacheKey, v)
	return v
}

// SetMaxAttempts stores a new lockout threshold. Last write wins.
func (s *Service) SetMaxAttempts(ctx context.Context, n int) error {
	if n < 1 {
		return domain.NewValidationError("max_attempts", "must be at least 1")
	}

	if err := s.policy.SetInt(ctx, domain.MaxLoginAttemptsKey, n); err != nil {
		return fmt.Errorf("lockout.SetMaxAttempts: %w", err)
	}
	s.cache.Remove(policyCacheKey)

	s.log.InfoContext(ctx, "lockout policy updated", slog.Int("max_attempts", n))
	return nil
}
