// Package firebase adapts Firebase Authentication and Cloud Firestore to the
// cloud-side contracts of the reconciliation services.
package firebase

import (
	"context"
	"fmt"

	fb "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/heartmarshall/roadworks-backend/internal/config"
	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// NewApp initialises the Firebase app for the configured project. Without a
// credentials file Application Default Credentials are used.
func NewApp(ctx context.Context, cfg config.CloudConfig) (*fb.App, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := fb.NewApp(ctx, &fb.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: init app: %w", err)
	}
	return app, nil
}

// unreachable wraps a transport-level failure so callers can fall back.
func unreachable(op string, err error) error {
	return fmt.Errorf("firebase.%s: %w: %w", op, domain.ErrUnreachable, err)
}
