// Package session caches the bearer token issued at login so subsequent
// commands stay authenticated without a new round trip.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/minhtranvn/toystore/internal/errs"
)

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// fallbackTTL is assumed when the token carries no exp claim.
const fallbackTTL = 15 * time.Minute

// TokenStore persists the access token as token.json under dir.
type TokenStore struct {
	dir string
	now func() time.Time
}

// NewTokenStore constructs a store rooted at the given config dir.
func NewTokenStore(dir string) *TokenStore {
	return &TokenStore{dir: dir, now: time.Now}
}

func (s *TokenStore) path() string { return filepath.Join(s.dir, "token.json") }

// Save persists the token. Expiry is read from the JWT exp claim without
// validating the signature (the server owns validation; the client only
// needs to know when to prompt for a fresh login).
func (s *TokenStore) Save(token string) error {
	var claims jwt.RegisteredClaims
	_, _ = jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) { return nil, nil },
		jwt.WithoutClaimsValidation(),
	)
	exp := s.now().Add(fallbackTTL)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	f, err := os.Create(s.path())
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenFile{AccessToken: token, ExpiresAt: exp})
}

// Token returns the cached token, or ErrUnauthorized when it is absent
// or expired.
func (s *TokenStore) Token() (string, error) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		return "", fmt.Errorf("no saved login: %w", errs.ErrUnauthorized)
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", fmt.Errorf("token cache unreadable: %w", errs.ErrUnauthorized)
	}
	if tf.AccessToken == "" || s.now().After(tf.ExpiresAt) {
		return "", fmt.Errorf("login required: %w", errs.ErrUnauthorized)
	}
	return tf.AccessToken, nil
}

// Clear removes the cached token.
func (s *TokenStore) Clear() error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
