// Package auth issues and validates the session tokens handed out after a
// successful login.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session is a signed token bound to one account.
type Session struct {
	ID        uuid.UUID
	Token     string
	Email     string
	ExpiresAt time.Time
}

// JWTManager handles session token generation and validation.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// IssueSession creates a signed HS256 JWT with the email as subject and a
// random session id.
func (m *JWTManager) IssueSession(email string) (*Session, error) {
	now := m.now()
	id := uuid.New()
	expiresAt := now.Add(m.ttl)

	claims := jwt.RegisteredClaims{
		ID:        id.String(),
		Subject:   email,
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Session{
		ID:        id,
		Token:     signed,
		Email:     email,
		ExpiresAt: expiresAt.Truncate(time.Second),
	}, nil
}

// ValidateSession parses and validates a session token.
func (m *JWTManager) ValidateSession(tokenString string) (*Session, error) {
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid session id: %w", err)
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &Session{ID: id, Token: tokenString, Email: claims.Subject, ExpiresAt: expiresAt}, nil
}
