package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// pgCodeErrors maps SQLSTATE codes to the domain sentinel they stand for.
// Serialization failures and deadlocks are absent so TxManager can replay
// them.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation, e.g. unknown status id
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"22003": domain.ErrValidation,    // numeric_value_out_of_range
	"22P02": domain.ErrValidation,    // invalid_text_representation
}

// MapError converts pgx/pgconn errors to domain errors. entity and key (id,
// email or config key) name the row in the message. Context errors and
// unknown codes keep their original chain.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
			return fmt.Errorf("%s %v: %w", entity, key, mapped)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}
