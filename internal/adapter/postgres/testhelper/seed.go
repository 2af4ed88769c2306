package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueEmail returns an address no other test uses.
func UniqueEmail(prefix string) string {
	return prefix + "-" + uniqueSuffix() + "@example.com"
}

// UniqueExternalID returns a cloud document id no other test uses.
func UniqueExternalID() string {
	return "doc-" + uuid.New().String()
}

// SeedAccount creates an account with the given password hash (nil for none).
func SeedAccount(t *testing.T, pool *pgxpool.Pool, passwordHash *string) domain.Account {
	t.Helper()
	ctx := context.Background()

	acc := domain.Account{
		Email:        UniqueEmail("seed"),
		PasswordHash: passwordHash,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO accounts (email, password_hash) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		acc.Email, acc.PasswordHash,
	).Scan(&acc.ID, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert: %v", err)
	}

	return acc
}

// SeedReport inserts r as-is, bypassing the repository, and returns it with
// its generated id. An empty ExternalID is stored as NULL.
func SeedReport(t *testing.T, pool *pgxpool.Pool, r domain.Record) domain.Record {
	t.Helper()
	ctx := context.Background()

	if r.Status == 0 {
		r.Status = domain.StatusNew
	}
	if r.Company == "" {
		r.Company = domain.UnspecifiedCompany
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	if r.ReportedAt.IsZero() {
		r.ReportedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	var externalID *string
	if r.ExternalID != "" {
		externalID = &r.ExternalID
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO reports (external_id, latitude, longitude, description, surface, price_per_unit,
		                      level, budget, company, status_id, reported_at, dirty, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id`,
		externalID, r.Location.Latitude, r.Location.Longitude, r.Description, r.Surface, r.PricePerUnit,
		r.Level, r.Budget, r.Company, int16(r.Status), r.ReportedAt, r.Dirty, r.UpdatedAt,
	).Scan(&r.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedReport insert: %v", err)
	}

	return r
}

// CountAdvancements returns the number of audit rows for a report.
func CountAdvancements(t *testing.T, pool *pgxpool.Pool, reportID int64) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM advancements WHERE report_id = $1`, reportID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountAdvancements: %v", err)
	}
	return n
}
