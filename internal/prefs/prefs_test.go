package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/minhtranvn/toystore/internal/errs"
	"github.com/minhtranvn/toystore/internal/model"
)

func newStorage(t *testing.T) (*DirStorage, string) {
	t.Helper()
	dir := t.TempDir()
	return NewDirStorage(dir), dir
}

func TestWishlist_AddIsIdempotent(t *testing.T) {
	t.Parallel()
	s, _ := newStorage(t)
	w := NewWishlist(s, zap.NewNop())

	require.NoError(t, w.Add("p1"))
	require.NoError(t, w.Add("p2"))
	require.NoError(t, w.Add("p1"))

	assert.Equal(t, []string{"p1", "p2"}, w.IDs())
	assert.True(t, w.Has("p1"))
	assert.Equal(t, 2, w.Len())
}

func TestWishlist_RemoveAbsentIsNoop(t *testing.T) {
	t.Parallel()
	s, _ := newStorage(t)
	w := NewWishlist(s, zap.NewNop())

	require.NoError(t, w.Remove("ghost"))
	assert.Empty(t, w.IDs())

	require.NoError(t, w.Add("p1"))
	require.NoError(t, w.Remove("p1"))
	assert.Empty(t, w.IDs())
}

func TestWishlist_KeepsInsertionOrderAcrossRestart(t *testing.T) {
	t.Parallel()
	s, _ := newStorage(t)
	w := NewWishlist(s, zap.NewNop())
	require.NoError(t, w.Add("b"))
	require.NoError(t, w.Add("a"))
	require.NoError(t, w.Add("c"))
	require.NoError(t, w.Remove("a"))

	reloaded := NewWishlist(s, zap.NewNop())
	assert.Equal(t, []string{"b", "c"}, reloaded.IDs())
}

func TestWishlist_MalformedStoredValueHydratesEmpty(t *testing.T) {
	t.Parallel()
	s, dir := newStorage(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyWishlist+".json"), []byte("{not json"), 0o600))

	w := NewWishlist(s, zap.NewNop())
	assert.Empty(t, w.IDs())

	// store stays usable after the bad hydrate
	require.NoError(t, w.Add("p1"))
	assert.Equal(t, []string{"p1"}, NewWishlist(s, zap.NewNop()).IDs())
}

func TestWishlist_ClearRemovesDurableEntry(t *testing.T) {
	t.Parallel()
	s, dir := newStorage(t)
	w := NewWishlist(s, zap.NewNop())
	require.NoError(t, w.Add("p1"))
	require.NoError(t, w.Clear())

	_, err := os.Stat(filepath.Join(dir, KeyWishlist+".json"))
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, NewWishlist(s, zap.NewNop()).IDs())
}

func TestValue_ShippingAddressRoundTrip(t *testing.T) {
	t.Parallel()
	s, _ := newStorage(t)

	v := NewValue[model.ShippingAddress](s, KeyShipping, zap.NewNop())
	_, ok := v.Get()
	assert.False(t, ok)

	addr := model.ShippingAddress{FullName: "Ngọc Anh", Address: "12 Lý Thường Kiệt", City: "Hà Nội", Phone: "0901234567"}
	require.NoError(t, v.Set(addr))

	got, ok := NewValue[model.ShippingAddress](s, KeyShipping, zap.NewNop()).Get()
	require.True(t, ok)
	assert.Equal(t, addr, got)
}

func TestValue_MalformedHydratesToDefault(t *testing.T) {
	t.Parallel()
	s, dir := newStorage(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyPromo+".json"), []byte("]]"), 0o600))

	v := NewValue[model.AppliedPromo](s, KeyPromo, zap.NewNop())
	_, ok := v.Get()
	assert.False(t, ok)
}

func TestValue_Clear(t *testing.T) {
	t.Parallel()
	s, _ := newStorage(t)
	v := NewValue[model.AppliedPromo](s, KeyPromo, zap.NewNop())
	require.NoError(t, v.Set(model.AppliedPromo{Code: "TET25", DiscountType: "percent", DiscountValue: 10, DiscountAmount: 35000}))
	require.NoError(t, v.Clear())

	_, ok := v.Get()
	assert.False(t, ok)
	_, ok = NewValue[model.AppliedPromo](s, KeyPromo, zap.NewNop()).Get()
	assert.False(t, ok)
}

func TestDirStorage_ReadAbsentIsNotFound(t *testing.T) {
	t.Parallel()
	s, _ := newStorage(t)
	_, err := s.Read("nope")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
