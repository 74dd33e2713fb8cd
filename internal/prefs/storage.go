// Package prefs maintains small user-preference values (wishlist ids,
// last-used shipping address, applied promo code, cart lines) that
// survive restarts without a server round trip. The in-memory value owns
// the state; durable storage is a mirror that is rewritten on every
// mutation.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/minhtranvn/toystore/internal/errs"
)

// Durable storage keys. One JSON value lives under each.
const (
	KeyWishlist = "wishlistItems"
	KeyShipping = "shippingAddress"
	KeyPromo    = "promoCode"
	KeyCart     = "cartItems"
)

// Storage is the durable mirror behind a preference value.
type Storage interface {
	// Read returns the stored blob or an error wrapping errs.ErrNotFound.
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
}

// DirStorage keeps one JSON file per key under a directory, typically the
// user config dir.
type DirStorage struct {
	dir string
}

// NewDirStorage constructs storage rooted at dir. The directory is
// created lazily on first write.
func NewDirStorage(dir string) *DirStorage {
	return &DirStorage{dir: dir}
}

func (s *DirStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *DirStorage) Read(key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", key, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", key, errs.ErrStorage)
	}
	return b, nil
}

func (s *DirStorage) Write(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", s.dir, errs.ErrStorage)
	}
	if err := os.WriteFile(s.path(key), data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", key, errs.ErrStorage)
	}
	return nil
}

func (s *DirStorage) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", key, errs.ErrStorage)
	}
	return nil
}
