package prefs

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/minhtranvn/toystore/internal/errs"
)

// Wishlist is an ordered set of product ids. Insertion order is kept for
// display; Add and Remove are idempotent.
type Wishlist struct {
	storage Storage
	log     *zap.Logger
	ids     []string
}

// NewWishlist hydrates the wishlist from storage. Absent or malformed
// stored data yields an empty wishlist, never an error.
func NewWishlist(storage Storage, log *zap.Logger) *Wishlist {
	w := &Wishlist{storage: storage, log: log}
	b, err := storage.Read(KeyWishlist)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			log.Warn("wishlist unreadable, starting empty", zap.Error(err))
		}
		return w
	}
	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		log.Warn("wishlist malformed, starting empty", zap.Error(err))
		return w
	}
	w.ids = dedupe(ids)
	return w
}

// IDs returns the ids in first-insertion order.
func (w *Wishlist) IDs() []string {
	out := make([]string, len(w.ids))
	copy(out, w.ids)
	return out
}

// Has reports membership.
func (w *Wishlist) Has(id string) bool {
	for _, v := range w.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Len returns the number of saved products.
func (w *Wishlist) Len() int { return len(w.ids) }

// Add inserts id once; adding a present id keeps the set unchanged but
// still rewrites the mirror.
func (w *Wishlist) Add(id string) error {
	if !w.Has(id) {
		w.ids = append(w.ids, id)
	}
	return w.persist()
}

// Remove drops id if present; removing an absent id is a no-op that still
// rewrites the mirror.
func (w *Wishlist) Remove(id string) error {
	for i, v := range w.ids {
		if v == id {
			w.ids = append(w.ids[:i], w.ids[i+1:]...)
			break
		}
	}
	return w.persist()
}

// Clear empties the wishlist and removes the durable entry.
func (w *Wishlist) Clear() error {
	w.ids = nil
	return w.storage.Delete(KeyWishlist)
}

func (w *Wishlist) persist() error {
	ids := w.ids
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := w.storage.Write(KeyWishlist, b); err != nil {
		w.log.Warn("wishlist not persisted", zap.Error(err))
		return err
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
