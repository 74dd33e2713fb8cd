package prefs

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/minhtranvn/toystore/internal/errs"
)

// Value mirrors a single JSON-serializable preference. Hydration happens
// in the constructor and never fails: an absent or malformed stored value
// falls back to the type's zero value.
type Value[T any] struct {
	storage Storage
	key     string
	log     *zap.Logger

	val T
	set bool
}

// NewValue hydrates the preference stored under key.
func NewValue[T any](storage Storage, key string, log *zap.Logger) *Value[T] {
	v := &Value[T]{storage: storage, key: key, log: log}
	b, err := storage.Read(key)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			log.Warn("preference unreadable, using empty default", zap.String("key", key), zap.Error(err))
		}
		return v
	}
	var decoded T
	if err := json.Unmarshal(b, &decoded); err != nil {
		log.Warn("preference malformed, using empty default", zap.String("key", key), zap.Error(err))
		return v
	}
	v.val, v.set = decoded, true
	return v
}

// Get returns the value and whether one has been set.
func (v *Value[T]) Get() (T, bool) { return v.val, v.set }

// Set applies the value in memory, then persists the full result. The
// in-memory state is updated even when persistence fails; the error is
// returned so the caller can decide to ignore it visibly.
func (v *Value[T]) Set(val T) error {
	v.val, v.set = val, true
	return v.persist()
}

// Clear resets to the empty default and removes the durable entry.
func (v *Value[T]) Clear() error {
	var zero T
	v.val, v.set = zero, false
	return v.storage.Delete(v.key)
}

func (v *Value[T]) persist() error {
	b, err := json.Marshal(v.val)
	if err != nil {
		return err
	}
	if err := v.storage.Write(v.key, b); err != nil {
		v.log.Warn("preference not persisted", zap.String("key", v.key), zap.Error(err))
		return err
	}
	return nil
}
