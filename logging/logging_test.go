package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInitWritesDatedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, true))
	defer func() { Logger = nil }()

	L().Info("hello from the test")
	Tool("renamer").Debug("scanning")
	Sync()

	name := time.Now().Format("2006-01-02") + "_automation-toolkit.log"
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)

	text := string(data)
	require.Contains(t, text, "hello from the test")
	require.Contains(t, text, "tools.renamer")
	require.Contains(t, text, "scanning")
}

func TestLFallsBackBeforeInit(t *testing.T) {
	Logger = nil
	require.NotNil(t, L())
	// must not panic
	L().Info("fallback logger works")
}

func TestInitInfoLevelDropsDebug(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, false))
	defer func() { Logger = nil }()

	L().Debug("too quiet to appear")
	L().Info("loud enough")
	Sync()

	name := time.Now().Format("2006-01-02") + "_automation-toolkit.log"
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	require.NotContains(t, string(data), "too quiet to appear")
	require.Contains(t, string(data), "loud enough")
}
