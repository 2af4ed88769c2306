// Package account implements the local credential and lockout store using PostgreSQL.
package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/roadworks-backend/internal/adapter/postgres"
	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

const table = "accounts"

var columns = []string{
	"id", "email", "password_hash", "failed_attempts", "blocked", "cloud_disabled", "created_at", "updated_at",
}

const returning = "RETURNING id, email, password_hash, failed_attempts, blocked, cloud_disabled, created_at, updated_at"

type row struct {
	ID             int64     `db:"id"`
	Email          string    `db:"email"`
	PasswordHash   *string   `db:"password_hash"`
	FailedAttempts int       `db:"failed_attempts"`
	Blocked        bool      `db:"blocked"`
	CloudDisabled  bool      `db:"cloud_disabled"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Account {
	return &domain.Account{
		ID:             r.ID,
		Email:          r.Email,
		PasswordHash:   r.PasswordHash,
		FailedAttempts: r.FailedAttempts,
		Blocked:        r.Blocked,
		CloudDisabled:  r.CloudDisabled,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) getOne(ctx context.Context, key any, b squirrel.Sqlizer) (*domain.Account, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "account", key)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "account", key)
	}
	return dst.toDomain(), nil
}

// GetByEmail returns the account with the given normalised email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"email": email})
	return r.getOne(ctx, email, q)
}

// GetByID returns the account with the given local id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	return r.getOne(ctx, id, q)
}

// Create inserts a new account with a password hash. A row left without a
// password by failed logins on an unregistered email is claimed instead, with
// its failure counter and block cleared. Returns domain.ErrAlreadyExists when
// the email already carries a password.
func (r *Repo) Create(ctx context.Context, email, passwordHash string) (*domain.Account, error) {
	q := postgres.Builder().Insert(table).
		Columns("email", "password_hash").
		Values(email, passwordHash).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			failed_attempts = 0,
			blocked = false,
			updated_at = now()
			WHERE accounts.password_hash IS NULL ` + returning)

	acc, err := r.getOne(ctx, email, q)
	if errors.Is(err, domain.ErrNotFound) {
		// The conflict update was filtered out: the email is registered.
		return nil, fmt.Errorf("account %v: %w", email, domain.ErrAlreadyExists)
	}
	return acc, err
}

// IncrementFailures atomically adds one failed attempt, creating the account
// row if it does not exist yet. The row becomes blocked once the counter
// reaches maxAttempts and stays blocked until reset.
func (r *Repo) IncrementFailures(ctx context.Context, email string, maxAttempts int) (*domain.Account, error) {
	q := postgres.Builder().Insert(table).
		Columns("email", "failed_attempts", "blocked").
		Values(email, 1, maxAttempts <= 1).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			failed_attempts = accounts.failed_attempts + 1,
			blocked = accounts.blocked OR accounts.failed_attempts + 1 >= ?,
			updated_at = now() `+returning, maxAttempts)
	return r.getOne(ctx, email, q)
}

// ResetFailures clears the counter and the blocked flag. Unknown emails are a no-op.
func (r *Repo) ResetFailures(ctx context.Context, email string) error {
	q := postgres.Builder().Update(table).
		Set("failed_attempts", 0).
		Set("blocked", false).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"email": email}).
		Where(squirrel.Or{squirrel.Gt{"failed_attempts": 0}, squirrel.Eq{"blocked": true}})

	if _, err := postgres.Exec(ctx, r.db, q); err != nil {
		return postgres.MapError(err, "account", email)
	}
	return nil
}

// ResetFailuresByID clears the counter and the blocked flag of the account
// with the given id and returns it.
func (r *Repo) ResetFailuresByID(ctx context.Context, id int64) (*domain.Account, error) {
	q := postgres.Builder().Update(table).
		Set("failed_attempts", 0).
		Set("blocked", false).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)
	return r.getOne(ctx, id, q)
}

// UpsertCredential stores a fresh password hash for email, creating the
// account if needed, and resets the failure counter.
func (r *Repo) UpsertCredential(ctx context.Context, email, passwordHash string) (*domain.Account, error) {
	q := postgres.Builder().Insert(table).
		Columns("email", "password_hash").
		Values(email, passwordHash).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			failed_attempts = 0,
			updated_at = now() ` + returning)
	return r.getOne(ctx, email, q)
}

// SetCloudDisabled records the last known disabled state of the cloud identity.
func (r *Repo) SetCloudDisabled(ctx context.Context, email string, disabled bool) error {
	q := postgres.Builder().Update(table).
		Set("cloud_disabled", disabled).
		Where(squirrel.Eq{"email": email})

	if _, err := postgres.Exec(ctx, r.db, q); err != nil {
		return postgres.MapError(err, "account", email)
	}
	return nil
}

// ListBlocked returns every blocked account, oldest change first.
func (r *Repo) ListBlocked(ctx context.Context) ([]domain.Account, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"blocked": true}).
		OrderBy("updated_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "account", "blocked")
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "account", "blocked")
	}

	out := make([]domain.Account, 0, len(rows))
	for _, rw := range rows {
		out = append(out, *rw.toDomain())
	}
	return out, nil
}
