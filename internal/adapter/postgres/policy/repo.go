// Package policy stores integer runtime settings in the app_config table.
package policy

import (
	"context"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/roadworks-backend/internal/adapter/postgres"
)

// Repo reads and writes app_config rows.
type Repo struct {
	db postgres.Querier
}

// New creates a new policy repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetInt returns the value stored under key, or domain.ErrNotFound.
func (r *Repo) GetInt(ctx context.Context, key string) (int, error) {
	sql, args, err := postgres.Builder().
		Select("config_value").
		From("app_config").
		Where(squirrel.Eq{"config_key": key}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "app_config", key)
	}

	var value int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&value); err != nil {
		return 0, postgres.MapError(err, "app_config", key)
	}
	return value, nil
}

// SetInt stores value under key. Last write wins.
func (r *Repo) SetInt(ctx context.Context, key string, value int) error {
	q := postgres.Builder().
		Insert("app_config").
		Columns("config_key", "config_value").
		Values(key, value).
		Suffix("ON CONFLICT (config_key) DO UPDATE SET config_value = EXCLUDED.config_value")

	if _, err := postgres.Exec(ctx, r.db, q); err != nil {
		return postgres.MapError(err, "app_config", key)
	}
	return nil
}
