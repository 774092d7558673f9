// Package auth verifies the optional HS256 bearer tokens that guard the
// AdapterService.
//
// A token carries a subject and a roles claim. The viewer role may call read
// RPCs; the controller role may additionally change the adapter inventory.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// RoleViewer grants read-only access.
	RoleViewer = "viewer"
	// RoleController grants read and write access.
	RoleController = "controller"
)

var (
	// ErrUnauthenticated indicates a missing, malformed, expired or otherwise
	// unverifiable token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrPermissionDenied indicates a valid token without the required role.
	ErrPermissionDenied = errors.New("permission denied")
)

// Config holds the shared HMAC secret and the optional expected issuer.
type Config struct {
	Secret string
	Issuer string
}

// Claims is the token payload.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

// HasRole reports whether the claims carry role.
func (c *Claims) HasRole(role string) bool {
	if c == nil {
		return false
	}
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Verifier checks bearer tokens against a shared secret.
type Verifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewVerifier builds a verifier. The secret must not be empty.
func NewVerifier(cfg Config) (*Verifier, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("HS256 requires a secret")
	}
	return &Verifier{secret: []byte(cfg.Secret), issuer: cfg.Issuer, now: time.Now}, nil
}

// Verify parses and validates token, returning its claims.
func (v *Verifier) Verify(token string) (*Claims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: token cannot be empty", ErrUnauthenticated)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrUnauthenticated)
	}
	for _, r := range claims.Roles {
		if r != RoleViewer && r != RoleController {
			return nil, fmt.Errorf("%w: unknown role %q", ErrUnauthenticated, r)
		}
	}
	return claims, nil
}

// Authorize checks that claims allow a call. Read calls accept either role;
// writes need the controller role.
func Authorize(claims *Claims, write bool) error {
	if claims.HasRole(RoleController) {
		return nil
	}
	if !write && claims.HasRole(RoleViewer) {
		return nil
	}
	if write {
		return fmt.Errorf("%w: %s role required", ErrPermissionDenied, RoleController)
	}
	return fmt.Errorf("%w: %s or %s role required", ErrPermissionDenied, RoleViewer, RoleController)
}

// Issue mints a signed token for subject with the given roles and lifetime.
func Issue(cfg Config, subject string, roles []string, ttl time.Duration) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("HS256 requires a secret")
	}
	if subject == "" {
		return "", fmt.Errorf("subject is required")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("ttl must be positive")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Roles: roles,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}

type ctxKey struct{}

// ContextWithClaims stores verified claims on ctx.
func ContextWithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// ClaimsFromContext returns the claims stored by ContextWithClaims, or nil.
func ClaimsFromContext(ctx context.Context) *Claims {
	c, _ := ctx.Value(ctxKey{}).(*Claims)
	return c
}
