package renamer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresetStoreRoundTrip(t *testing.T) {
	store := NewPresetStore(filepath.Join(t.TempDir(), "presets"))
	require.Empty(t, store.Names())

	opts := Options{
		Pattern:  "*.bmp",
		Mode:     ModeNewName,
		Prefix:   "frame",
		PadWidth: 4,
		IndexMul: 1.0,
		Move:     true,
	}
	require.NoError(t, store.Save("daily", opts))
	require.NoError(t, store.Save("archive", Options{Pattern: "*.png", Mode: ModeKeepName}))

	require.Equal(t, []string{"archive", "daily"}, store.Names())

	got, err := store.Load("daily")
	require.NoError(t, err)
	require.Equal(t, opts, got)

	require.NoError(t, store.Delete("daily"))
	require.Equal(t, []string{"archive"}, store.Names())

	_, err = store.Load("daily")
	require.Error(t, err)
}

func TestPresetStoreRejectsBadNames(t *testing.T) {
	store := NewPresetStore(t.TempDir())
	for _, name := range []string{"", "..", "a/b", `a\b`} {
		require.ErrorIs(t, store.Save(name, Options{}), ErrBadPresetName, "name %q", name)
		_, err := store.Load(name)
		require.ErrorIs(t, err, ErrBadPresetName, "name %q", name)
	}
}

func TestPresetStoreOverwrites(t *testing.T) {
	store := NewPresetStore(t.TempDir())
	require.NoError(t, store.Save("p", Options{Prefix: "one"}))
	require.NoError(t, store.Save("p", Options{Prefix: "two"}))

	got, err := store.Load("p")
	require.NoError(t, err)
	require.Equal(t, "two", got.Prefix)
	require.Equal(t, []string{"p"}, store.Names())
}
