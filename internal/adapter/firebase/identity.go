package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// userAdmin is the subset of *auth.Client the identity store needs.
type userAdmin interface {
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	UpdateUser(ctx context.Context, uid string, user *auth.UserToUpdate) (*auth.UserRecord, error)
}

// IdentityStore is the cloud identity backend: admin operations go through the
// Firebase Admin SDK, password checks through the Identity Toolkit REST API.
type IdentityStore struct {
	users    userAdmin
	http     *http.Client
	endpoint string
	apiKey   string
	timeout  time.Duration
	log      *slog.Logger
}

// IdentityConfig configures an IdentityStore.
type IdentityConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// NewIdentityStore creates an IdentityStore.
func NewIdentityStore(logger *slog.Logger, users userAdmin, httpClient *http.Client, cfg IdentityConfig) *IdentityStore {
	return &IdentityStore{
		users:    users,
		http:     httpClient,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:   cfg.APIKey,
		timeout:  cfg.Timeout,
		log:      logger.With("adapter", "firebase_identity"),
	}
}

func (s *IdentityStore) mapAdminError(op string, err error) error {
	switch {
	case auth.IsUserNotFound(err):
		return fmt.Errorf("firebase.%s: %w", op, domain.ErrNotFound)
	case auth.IsEmailAlreadyExists(err):
		return fmt.Errorf("firebase.%s: %w", op, domain.ErrAlreadyExists)
	default:
		return unreachable(op, err)
	}
}

func toIdentity(u *auth.UserRecord) *domain.CloudIdentity {
	id := &domain.CloudIdentity{Disabled: u.Disabled}
	if u.UserInfo != nil {
		id.UID = u.UID
		id.Email = u.Email
	}
	return id
}

// LookupByEmail returns the cloud identity for email, or domain.ErrNotFound.
func (s *IdentityStore) LookupByEmail(ctx context.Context, email string) (*domain.CloudIdentity, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, s.mapAdminError("LookupByEmail", err)
	}
	return toIdentity(u), nil
}

// Create registers a new cloud identity.
func (s *IdentityStore) Create(ctx context.Context, email, password string) (*domain.CloudIdentity, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	u, err := s.users.CreateUser(ctx, (&auth.UserToCreate{}).Email(email).Password(password))
	if err != nil {
		return nil, s.mapAdminError("Create", err)
	}

	s.log.InfoContext(ctx, "cloud identity created", slog.String("email", email), slog.String("uid", u.UID))
	return toIdentity(u), nil
}

func (s *IdentityStore) update(ctx context.Context, op, email string, params *auth.UserToUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return s.mapAdminError(op, err)
	}
	if _, err := s.users.UpdateUser(ctx, u.UID, params); err != nil {
		return s.mapAdminError(op, err)
	}
	return nil
}

// SetDisabled enables or disables the cloud identity of email.
func (s *IdentityStore) SetDisabled(ctx context.Context, email string, disabled bool) error {
	return s.update(ctx, "SetDisabled", email, (&auth.UserToUpdate{}).Disabled(disabled))
}

// SetPassword replaces the cloud password of email.
func (s *IdentityStore) SetPassword(ctx context.Context, email, password string) error {
	return s.update(ctx, "SetPassword", email, (&auth.UserToUpdate{}).Password(password))
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// VerifyPassword checks email/password against the cloud. It returns
// domain.ErrInvalidCredential for any rejection and domain.ErrUnreachable
// when the cloud could not give an answer.
func (s *IdentityStore) VerifyPassword(ctx context.Context, email, password string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	body, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return fmt.Errorf("firebase.VerifyPassword: encode: %w", err)
	}

	reqURL := s.endpoint + "/accounts:signInWithPassword?key=" + url.QueryEscape(s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("firebase.VerifyPassword: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return unreachable("VerifyPassword", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	case resp.StatusCode == http.StatusBadRequest:
		var e signInError
		_ = json.NewDecoder(resp.Body).Decode(&e)
		s.log.DebugContext(ctx, "cloud sign-in rejected", slog.String("email", email), slog.String("reason", e.Error.Message))
		return fmt.Errorf("firebase.VerifyPassword: %w", domain.ErrInvalidCredential)
	default:
		return unreachable("VerifyPassword", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
}
