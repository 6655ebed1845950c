package install

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/plymouth-manager/internal/config"
	"github.com/ytget/plymouth-manager/internal/model"
	"github.com/ytget/plymouth-manager/internal/platform"
)

// writeZip builds an archive from name -> content; names ending in "/" are directories
func writeZip(t *testing.T, dir string, files map[string]string) string {
	t.Helper()
	f, err := os.CreateTemp(dir, "theme-*.zip")
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		if !strings.HasSuffix(name, "/") {
			_, err = w.Write([]byte(body))
			require.NoError(t, err)
		}
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return f.Name()
}

type fixture struct {
	root    string
	scratch string
	inbox   string
	cfg     config.Config
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	base := t.TempDir()
	fx := fixture{
		root:    filepath.Join(base, "themes"),
		scratch: filepath.Join(base, "scratch"),
		inbox:   filepath.Join(base, "inbox"),
	}
	for _, d := range []string{fx.root, fx.scratch, fx.inbox} {
		require.NoError(t, os.MkdirAll(d, 0o755))
	}
	fx.cfg = config.DefaultConfig()
	fx.cfg.InstallRoot = fx.root
	fx.cfg.ThemeRoots = []string{fx.root}
	fx.cfg.ScratchDir = fx.scratch
	return fx
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := []string{}
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// recordingRunner captures commands and optionally fails the n-th call
type recordingRunner struct {
	mu     sync.Mutex
	calls  [][]string
	failAt int
	err    error
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, append([]string{name}, args...))
	if r.err != nil && len(r.calls) == r.failAt {
		return r.err
	}
	return nil
}

func TestInstallFromArchiveGithubLayout(t *testing.T) {
	fx := newFixture(t)
	archive := writeZip(t, fx.inbox, map[string]string{
		"plymouth-neon-main/":                    "",
		"plymouth-neon-main/README.md":           "readme",
		"plymouth-neon-main/neon/neon.plymouth":  "[Plymouth Theme]\nName=Neon\n",
		"plymouth-neon-main/neon/neon.script":    "script",
		"plymouth-neon-main/neon/progress-1.png": "png",
	})

	inst := NewInstaller(fx.cfg, platform.NewDirectRunner())
	theme, err := inst.InstallFromArchive(context.Background(), archive)
	require.NoError(t, err)

	assert.Equal(t, "neon", theme.ID)
	assert.Equal(t, filepath.Join(fx.root, "neon"), theme.Dir)
	assert.Equal(t, filepath.Join(fx.root, "neon", "neon.plymouth"), theme.Descriptor)
	assert.True(t, theme.HasGraphics)
	assert.ElementsMatch(t, []string{"neon.plymouth", "neon.script", "progress-1.png"}, listDir(t, theme.Dir))

	// scratch and the downloaded archive are gone
	assert.Empty(t, listDir(t, fx.scratch))
	assert.NoFileExists(t, archive)
}

func TestInstallIdentifierComesFromDescriptor(t *testing.T) {
	fx := newFixture(t)
	archive := writeZip(t, fx.inbox, map[string]string{
		"some-folder/Cyber.plymouth": "x",
	})

	theme, err := NewInstaller(fx.cfg, platform.NewDirectRunner()).InstallFromArchive(context.Background(), archive)
	require.NoError(t, err)
	assert.Equal(t, "Cyber", theme.ID)
	assert.DirExists(t, filepath.Join(fx.root, "Cyber"))
}

func TestInstallWithoutDescriptorLeavesRootUnchanged(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, os.MkdirAll(filepath.Join(fx.root, "existing"), 0o755))
	archive := writeZip(t, fx.inbox, map[string]string{
		"stuff/bg.png":    "png",
		"stuff/README.md": "no theme here",
	})
	runner := &recordingRunner{}

	_, err := NewInstaller(fx.cfg, runner).InstallFromArchive(context.Background(), archive)
	require.ErrorIs(t, err, model.ErrDescriptorNotFound)

	assert.Empty(t, runner.calls, "no privileged command may run")
	assert.Equal(t, []string{"existing"}, listDir(t, fx.root))
	assert.Empty(t, listDir(t, fx.scratch), "scratch must be cleaned on failure too")
	assert.NoFileExists(t, archive)
}

func TestInstallTwiceIsLastWriteWins(t *testing.T) {
	fx := newFixture(t)
	inst := NewInstaller(fx.cfg, platform.NewDirectRunner())

	first := writeZip(t, fx.inbox, map[string]string{
		"a/glow.plymouth": "v1",
		"a/old.png":       "old",
	})
	_, err := inst.InstallFromArchive(context.Background(), first)
	require.NoError(t, err)

	second := writeZip(t, fx.inbox, map[string]string{
		"b/glow.plymouth": "v2",
		"b/new.png":       "new",
	})
	_, err = inst.InstallFromArchive(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, []string{"glow"}, listDir(t, fx.root))
	assert.ElementsMatch(t, []string{"glow.plymouth", "new.png"}, listDir(t, filepath.Join(fx.root, "glow")))
	body, err := os.ReadFile(filepath.Join(fx.root, "glow", "glow.plymouth"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(body))
}

func TestImportArchiveKeepsSourceFile(t *testing.T) {
	fx := newFixture(t)
	archive := writeZip(t, fx.inbox, map[string]string{"t/keep.plymouth": "x"})

	_, err := NewInstaller(fx.cfg, platform.NewDirectRunner()).ImportArchive(context.Background(), archive)
	require.NoError(t, err)
	assert.FileExists(t, archive)
	assert.Empty(t, listDir(t, fx.scratch))
}

func TestInstallBadArchiveIsExtractionError(t *testing.T) {
	fx := newFixture(t)
	bogus := filepath.Join(fx.inbox, "bogus.zip")
	require.NoError(t, os.WriteFile(bogus, []byte("not a zip"), 0o644))

	_, err := NewInstaller(fx.cfg, &recordingRunner{}).InstallFromArchive(context.Background(), bogus)
	require.ErrorIs(t, err, model.ErrExtraction)
	assert.Empty(t, listDir(t, fx.scratch))
}

func TestInstallRejectsPathTraversal(t *testing.T) {
	fx := newFixture(t)
	archive := writeZip(t, fx.inbox, map[string]string{
		"../../evil.plymouth": "x",
	})

	_, err := NewInstaller(fx.cfg, &recordingRunner{}).InstallFromArchive(context.Background(), archive)
	require.ErrorIs(t, err, model.ErrExtraction)
}

func TestInstallRefusesProtectedIdentifier(t *testing.T) {
	fx := newFixture(t)
	archive := writeZip(t, fx.inbox, map[string]string{"x/text.plymouth": "x"})
	runner := &recordingRunner{}

	_, err := NewInstaller(fx.cfg, runner).InstallFromArchive(context.Background(), archive)
	require.ErrorIs(t, err, model.ErrProtectedTheme)
	assert.Empty(t, runner.calls)
}

func TestInstallPropagatesDenied(t *testing.T) {
	fx := newFixture(t)
	archive := writeZip(t, fx.inbox, map[string]string{"x/foo.plymouth": "x"})
	runner := &recordingRunner{failAt: 2, err: model.ErrInstallationDenied}

	_, err := NewInstaller(fx.cfg, runner).InstallFromArchive(context.Background(), archive)
	require.ErrorIs(t, err, model.ErrInstallationDenied)
	assert.Len(t, runner.calls, 2, "copy must not run after a refused mkdir")
	assert.Empty(t, listDir(t, fx.scratch))
}

func TestInstallCommandSequence(t *testing.T) {
	fx := newFixture(t)
	archive := writeZip(t, fx.inbox, map[string]string{"x/foo.plymouth": "x"})
	runner := &recordingRunner{}

	_, err := NewInstaller(fx.cfg, runner).InstallFromArchive(context.Background(), archive)
	require.NoError(t, err)

	dest := filepath.Join(fx.root, "foo")
	require.Len(t, runner.calls, 3)
	assert.Equal(t, []string{"rm", "-rf", "--", dest}, runner.calls[0])
	assert.Equal(t, []string{"mkdir", "-p", "--", dest}, runner.calls[1])
	assert.Equal(t, "cp", runner.calls[2][0])
	assert.True(t, strings.HasSuffix(runner.calls[2][3], string(os.PathSeparator)+"x"+string(os.PathSeparator)+"."))
	assert.Equal(t, dest, runner.calls[2][4])
}

func TestRemove(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, os.MkdirAll(filepath.Join(fx.root, "gone"), 0o755))
	inst := NewInstaller(fx.cfg, platform.NewDirectRunner())

	require.NoError(t, inst.Remove(context.Background(), "gone"))
	assert.NoDirExists(t, filepath.Join(fx.root, "gone"))

	assert.ErrorIs(t, inst.Remove(context.Background(), "gone"), model.ErrThemeNotFound)
	assert.ErrorIs(t, inst.Remove(context.Background(), "Details"), model.ErrProtectedTheme)
	assert.ErrorIs(t, inst.Remove(context.Background(), "../etc"), model.ErrInvalidThemeID)
	assert.ErrorIs(t, inst.Remove(context.Background(), ""), model.ErrInvalidThemeID)
}

func TestRemoveOnlyTouchesInstallRoot(t *testing.T) {
	fx := newFixture(t)
	legacy := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(legacy, "old"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(fx.root, "Mismatch-theme"), 0o755))
	inst := NewInstaller(fx.cfg, platform.NewDirectRunner())

	assert.False(t, inst.Owns(model.Theme{ID: "old", Dir: filepath.Join(legacy, "old")}))
	assert.True(t, inst.Owns(model.Theme{ID: "Mismatch-theme", Dir: filepath.Join(fx.root, "Mismatch-theme")}))
	assert.False(t, inst.Owns(model.Theme{ID: "x"}))

	assert.ErrorIs(t, inst.Remove(context.Background(), "old"), model.ErrThemeNotFound)
	assert.DirExists(t, filepath.Join(legacy, "old"))

	require.NoError(t, inst.Remove(context.Background(), "Mismatch-theme"))
	assert.NoDirExists(t, filepath.Join(fx.root, "Mismatch-theme"))
}

func TestGenerateScratchIDUnique(t *testing.T) {
	a := generateScratchID()
	b := generateScratchID()
	assert.NotEqual(t, a, b)
	assert.NotEmpty(t, a)
}
