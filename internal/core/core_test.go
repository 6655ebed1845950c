package core

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/plymouth-manager/internal/config"
	"github.com/ytget/plymouth-manager/internal/model"
	"github.com/ytget/plymouth-manager/internal/platform"
)

func TestNewRunner(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Elevation.Helper = "doas"

	direct, ok := NewRunner(cfg, true).(*platform.CommandRunner)
	require.True(t, ok)
	assert.Empty(t, direct.Helper())

	elevated, ok := NewRunner(cfg, false).(*platform.CommandRunner)
	require.True(t, ok)
	argv := elevated.Argv("ls", "-l")
	assert.Equal(t, []string{"ls", "-l"}, argv[len(argv)-2:])
}

func TestNewBuildsEveryService(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ScratchDir = t.TempDir()

	svc := New(cfg, platform.NewDirectRunner())
	assert.NotNil(t, svc.Scanner)
	assert.NotNil(t, svc.Installer)
	assert.NotNil(t, svc.Activator)
	assert.NotNil(t, svc.Catalog)
	assert.NotNil(t, svc.Fetcher)
	assert.NotNil(t, svc.Downloads)
	assert.NotNil(t, svc.BootDelay)
	assert.Equal(t, cfg.Roots(), svc.Scanner.Roots())
	assert.Empty(t, svc.Downloads.GetAllTasks())
}

type recordingRunner struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, append([]string{name}, args...))
	return nil
}

func TestListedThemesCanBeApplied(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "themes")
	legacy := filepath.Join(base, "legacy")
	for _, dir := range []string{filepath.Join(root, "Mismatch-theme"), filepath.Join(legacy, "old")} {
		require.NoError(t, os.MkdirAll(dir, 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "Mismatch-theme", "mismatch.plymouth"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(legacy, "old", "old.plymouth"), []byte("x"), 0o644))

	cfg := config.DefaultConfig()
	cfg.InstallRoot = root
	cfg.ThemeRoots = []string{root, legacy}
	cfg.ScratchDir = t.TempDir()
	cfg.Activation.AlternativesLink = filepath.Join(base, "default.plymouth")
	runner := &recordingRunner{}
	svc := New(cfg, runner)

	listed := svc.Scanner.List()
	require.Len(t, listed, 2)
	for _, th := range listed {
		runner.calls = nil
		require.NoError(t, svc.Activator.Apply(context.Background(), th.ID), th.ID)
		assert.Contains(t, runner.calls[0], th.Descriptor, th.ID)

		if svc.Installer.Owns(th) {
			assert.NoError(t, svc.Installer.Remove(context.Background(), th.ID), th.ID)
		} else {
			assert.ErrorIs(t, svc.Installer.Remove(context.Background(), th.ID), model.ErrThemeNotFound, th.ID)
		}
	}
	assert.False(t, svc.Installer.Owns(listed[1]))
}
