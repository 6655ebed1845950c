package themes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/plymouth-manager/internal/config"
)

// makeTheme creates root/name containing the given files
func makeTheme(t *testing.T, root, name string, files ...string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644))
	}
	return dir
}

func testConfig(roots ...string) config.Config {
	cfg := config.DefaultConfig()
	cfg.InstallRoot = roots[0]
	cfg.ThemeRoots = roots
	return cfg
}

func ids(s *Scanner) []string {
	out := []string{}
	for _, th := range s.List() {
		out = append(out, th.ID)
	}
	return out
}

func TestListExampleScenario(t *testing.T) {
	root := t.TempDir()
	fooDir := makeTheme(t, root, "foo", "foo.plymouth", "bg.png")
	makeTheme(t, root, "text", "text.plymouth")

	themes := NewScanner(testConfig(root)).List()
	require.Len(t, themes, 1)
	assert.Equal(t, "foo", themes[0].ID)
	assert.Equal(t, fooDir, themes[0].Dir)
	assert.Equal(t, filepath.Join(fooDir, "foo.plymouth"), themes[0].Descriptor)
	assert.True(t, themes[0].HasDescriptor)
	assert.True(t, themes[0].HasGraphics)
}

func TestListExcludesProtectedRegardlessOfContent(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"text", "Details", "ubuntu-text", "SCRIPT"} {
		makeTheme(t, root, name, name+".plymouth", "logo.png")
	}
	makeTheme(t, root, "spinner", "spinner.plymouth")

	assert.Equal(t, []string{"spinner"}, ids(NewScanner(testConfig(root))))
}

func TestListRequiresDescriptor(t *testing.T) {
	root := t.TempDir()
	makeTheme(t, root, "good", "good.plymouth")
	makeTheme(t, root, "images-only", "bg.png", "logo.svg")
	makeTheme(t, root, "nested")
	makeTheme(t, filepath.Join(root, "nested"), "inner", "inner.plymouth")
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.plymouth"), []byte("x"), 0o644))

	assert.Equal(t, []string{"good"}, ids(NewScanner(testConfig(root))))
}

func TestListRequireGraphicsVariant(t *testing.T) {
	root := t.TempDir()
	makeTheme(t, root, "plain", "plain.plymouth", "plain.script")
	makeTheme(t, root, "pretty", "pretty.plymouth", "Throbber.PNG")

	cfg := testConfig(root)
	assert.Equal(t, []string{"plain", "pretty"}, ids(NewScanner(cfg)))

	cfg.RequireGraphics = true
	assert.Equal(t, []string{"pretty"}, ids(NewScanner(cfg)))
}

func TestListSortedCaseInsensitiveAndStable(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"zeta", "Alpha", "beta", "Gamma"} {
		makeTheme(t, root, name, name+".plymouth")
	}
	s := NewScanner(testConfig(root))

	first := ids(s)
	assert.Equal(t, []string{"Alpha", "beta", "Gamma", "zeta"}, first)
	assert.Equal(t, first, ids(s))
}

func TestListMultipleRootsFirstWins(t *testing.T) {
	primary := t.TempDir()
	legacy := t.TempDir()
	makeTheme(t, primary, "bgrt", "bgrt.plymouth")
	makeTheme(t, legacy, "bgrt", "bgrt.plymouth")
	makeTheme(t, legacy, "fade-in", "fade-in.plymouth")

	themes := NewScanner(testConfig(primary, legacy)).List()
	require.Len(t, themes, 2)
	assert.Equal(t, "bgrt", themes[0].ID)
	assert.Equal(t, filepath.Join(primary, "bgrt"), themes[0].Dir)
	assert.Equal(t, "fade-in", themes[1].ID)
}

func TestListSkipsMissingRootAndFollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	elsewhere := t.TempDir()
	target := makeTheme(t, elsewhere, "linked", "linked.plymouth")
	require.NoError(t, os.Symlink(target, filepath.Join(root, "linked")))

	s := NewScanner(testConfig(root, filepath.Join(root, "does-not-exist")))
	assert.Equal(t, []string{"linked"}, ids(s))
}

func TestListUnreadableThemeIsSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	root := t.TempDir()
	makeTheme(t, root, "ok", "ok.plymouth")
	locked := makeTheme(t, root, "locked", "locked.plymouth")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	assert.Equal(t, []string{"ok"}, ids(NewScanner(testConfig(root))))
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	makeTheme(t, root, "foo", "foo.plymouth")
	s := NewScanner(testConfig(root))

	th, ok := s.Find("foo")
	require.True(t, ok)
	assert.Equal(t, "foo", th.ID)

	_, ok = s.Find("bar")
	assert.False(t, ok)
}

func TestFindDescriptorPrefersDirectoryName(t *testing.T) {
	root := t.TempDir()
	dir := makeTheme(t, root, "neon", "neon-alt.plymouth", "neon.plymouth", "bg.png")

	got, ok := FindDescriptor(dir, ".plymouth")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "neon.plymouth"), got)

	th, ok := NewScanner(testConfig(root)).Find("neon")
	require.True(t, ok)
	assert.Equal(t, got, th.Descriptor)
}

func TestFindDescriptorAnyName(t *testing.T) {
	root := t.TempDir()
	dir := makeTheme(t, root, "Mismatch-theme", "mismatch.plymouth")
	makeTheme(t, root, "bare", "bg.png")

	got, ok := FindDescriptor(dir, ".plymouth")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "mismatch.plymouth"), got)

	_, ok = FindDescriptor(filepath.Join(root, "bare"), ".plymouth")
	assert.False(t, ok)
	_, ok = FindDescriptor(filepath.Join(root, "missing"), ".plymouth")
	assert.False(t, ok)
}
