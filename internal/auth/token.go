// Package auth identifies the owner of a request from an HS256 bearer token.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/osse101/CoinToss_Go/internal/domain"
)

// Identifier resolves the owner of a request
type Identifier interface {
	Identify(r *http.Request) (ownerID string, err error)
}

// Claims are the registered claims carried by owner tokens. Subject is the owner id.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTIdentifier verifies bearer tokens signed with a shared secret
type JWTIdentifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewJWTIdentifier creates an identifier. An empty issuer accepts any issuer.
func NewJWTIdentifier(secret, issuer string) *JWTIdentifier {
	return &JWTIdentifier{secret: []byte(secret), issuer: issuer, now: time.Now}
}

// Identify returns the token subject. Every failure unwraps to domain.ErrUnauthenticated.
func (j *JWTIdentifier) Identify(r *http.Request) (string, error) {
	header := r.Header.Get(HeaderAuthorization)
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgMissingToken)
	}
	return j.Verify(strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix)))
}

// Verify checks a raw token and returns its subject
func (j *JWTIdentifier) Verify(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgMissingToken)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{SigningMethod}),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	}, opts...)
	if err != nil {
		return "", mapJWTError(err)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgMissingSubject)
	}
	return claims.Subject, nil
}

// mapJWTError translates jwt library errors to domain errors
func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgTokenExpired)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgIssuerMismatch)
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrUnauthenticated, ErrMsgInvalidToken, err)
}

// Issuer mints owner tokens
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer creates an Issuer. A non-positive ttl falls back to one day.
func NewIssuer(secret, issuer string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New(ErrMsgEmptySecret)
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL * time.Second
	}
	return &Issuer{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for ownerID
func (i *Issuer) Issue(ownerID string) (string, error) {
	if strings.TrimSpace(ownerID) == "" {
		return "", errors.New(ErrMsgEmptyOwner)
	}
	now := i.now()
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    i.issuer,
		Subject:   ownerID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
