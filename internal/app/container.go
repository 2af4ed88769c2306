package app

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/roadworks-backend/internal/adapter/firebase"
	"github.com/heartmarshall/roadworks-backend/internal/adapter/netprobe"
	"github.com/heartmarshall/roadworks-backend/internal/adapter/postgres"
	"github.com/heartmarshall/roadworks-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/roadworks-backend/internal/adapter/postgres/policy"
	reportrepo "github.com/heartmarshall/roadworks-backend/internal/adapter/postgres/report"
	jwtauth "github.com/heartmarshall/roadworks-backend/internal/auth"
	"github.com/heartmarshall/roadworks-backend/internal/config"
	"github.com/heartmarshall/roadworks-backend/internal/service/auth"
	"github.com/heartmarshall/roadworks-backend/internal/service/lockout"
	"github.com/heartmarshall/roadworks-backend/internal/service/recordsync"
	"github.com/heartmarshall/roadworks-backend/internal/service/report"
)

// Container holds the wired services shared by the server and the one-shot
// commands.
type Container struct {
	Pool     *pgxpool.Pool
	Probe    *netprobe.Probe
	Sessions *jwtauth.JWTManager
	Lockout  *lockout.Service
	Auth     *auth.Service
	Reports  *report.Service
	// Sync is nil when no cloud project is configured.
	Sync *recordsync.Engine

	closers []func()
}

// Close releases the database pool and cloud clients.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

type cloudStack struct {
	identity  *firebase.IdentityStore
	documents *firebase.DocumentStore
	photos    *firebase.PhotoStore
	firestore *firestore.Client
}

// Build connects to PostgreSQL, optionally migrates it, initialises the
// Firebase clients when a project is configured, and wires every service.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app: connect database: %w", err)
	}
	c := &Container{Pool: pool, closers: []func(){pool.Close}}

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			c.Close()
			return nil, fmt.Errorf("app: migrate: %w", err)
		}
	}

	var cloud *cloudStack
	if cfg.Cloud.Enabled() {
		cloud, err = newCloudStack(ctx, cfg.Cloud, logger)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.closers = append(c.closers, func() { _ = cloud.firestore.Close() })
	} else {
		logger.Warn("no cloud project configured, running local-only")
	}

	c.wire(cfg, logger, cloud)
	return c, nil
}

func newCloudStack(ctx context.Context, cfg config.CloudConfig, logger *slog.Logger) (*cloudStack, error) {
	fbApp, err := firebase.NewApp(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	users, err := fbApp.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: firebase auth client: %w", err)
	}

	fs, err := fbApp.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: firestore client: %w", err)
	}

	httpClient := firebase.NewHTTPClient(logger, cfg.RetryMax, cfg.IdentityTimeout)

	return &cloudStack{
		identity: firebase.NewIdentityStore(logger, users, httpClient, firebase.IdentityConfig{
			Endpoint: cfg.IdentityEndpoint,
			APIKey:   cfg.WebAPIKey,
			Timeout:  cfg.IdentityTimeout,
		}),
		documents: firebase.NewDocumentStore(logger, fs, cfg.RecordsCollection, cfg.DocumentTimeout),
		photos:    firebase.NewPhotoStore(logger, fs, cfg.PhotosCollection, cfg.DocumentTimeout),
		firestore: fs,
	}, nil
}

// wire builds the services. The cloud collaborators are passed as untyped
// nil when cloud is nil so the services see a nil interface.
func (c *Container) wire(cfg *config.Config, logger *slog.Logger, cloud *cloudStack) {
	tx := postgres.NewTxManager(c.Pool)
	accounts := account.New(c.Pool)
	policies := policy.New(c.Pool)
	reports := reportrepo.New(c.Pool)
	advancements := reportrepo.NewAdvancementRepo(c.Pool)

	c.Probe = netprobe.New(logger, cfg.Connectivity.Address, cfg.Connectivity.Timeout)
	c.Sessions = jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)

	lockoutCfg := lockout.Config{
		DefaultMaxAttempts: cfg.Lockout.DefaultMaxAttempts,
		PolicyCacheTTL:     cfg.Lockout.PolicyCacheTTL,
	}

	if cloud == nil {
		c.Reports = report.NewService(logger, reports, advancements, nil, tx)
		c.Lockout = lockout.NewService(logger, accounts, policies, nil, c.Probe, tx, lockoutCfg)
		c.Auth = auth.NewService(logger, accounts, nil, c.Lockout, c.Probe, tx, c.Sessions, cfg.Auth)
		return
	}

	c.Reports = report.NewService(logger, reports, advancements, cloud.photos, tx)
	c.Lockout = lockout.NewService(logger, accounts, policies, cloud.identity, c.Probe, tx, lockoutCfg)
	c.Auth = auth.NewService(logger, accounts, cloud.identity, c.Lockout, c.Probe, tx, c.Sessions, cfg.Auth)
	c.Sync = recordsync.NewEngine(logger, reports, advancements, cloud.documents, c.Probe, tx,
		recordsync.Config{Parallelism: cfg.Sync.Parallelism})
}
