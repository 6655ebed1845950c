package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/plymouth-manager/internal/config"
	"github.com/ytget/plymouth-manager/internal/model"
)

const sampleResponse = `{
  "total_count": 2,
  "items": [
    {
      "name": "plymouth-themes",
      "description": "A hot collection of plymouth themes",
      "html_url": "https://github.com/adi1090x/plymouth-themes",
      "default_branch": "master",
      "stargazers_count": 4000,
      "owner": {"login": "adi1090x"}
    },
    {
      "name": "no-url",
      "owner": {"login": "ghost"}
    },
    {
      "name": "arch-splash",
      "html_url": "https://github.com/someone/arch-splash/",
      "owner": {"login": "someone"}
    }
  ]
}`

func newTestClient(endpoint string) *Client {
	cfg := config.DefaultConfig().Search
	cfg.Endpoint = endpoint
	return NewClient(cfg)
}

func TestSearchTerm(t *testing.T) {
	c := newTestClient("http://unused")
	assert.Equal(t, "plymouth theme", c.SearchTerm(""))
	assert.Equal(t, "plymouth theme", c.SearchTerm("   "))
	assert.Equal(t, "dark topic:plymouth-theme", c.SearchTerm("dark"))
	assert.Equal(t, "dark topic:plymouth-theme", c.SearchTerm(" dark "))
}

func TestSearchMapsItems(t *testing.T) {
	var gotQuery, gotSort, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotSort = r.URL.Query().Get("sort")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	entries := newTestClient(srv.URL).Search(context.Background(), "dark")

	assert.Equal(t, "dark topic:plymouth-theme", gotQuery)
	assert.Equal(t, "stars", gotSort)
	assert.Equal(t, AcceptHeader, gotAccept)
	require.Len(t, entries, 2)
	assert.Equal(t, model.CatalogEntry{
		Name:        "plymouth-themes",
		Author:      "adi1090x",
		ArchiveURL:  "https://github.com/adi1090x/plymouth-themes/archive/refs/heads/master.zip",
		Description: "A hot collection of plymouth themes",
		Stars:       4000,
	}, entries[0])
	assert.Equal(t, "https://github.com/someone/arch-splash/archive/refs/heads/main.zip", entries[1].ArchiveURL)
}

func TestSearchDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusForbidden)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()
			c := newTestClient(srv.URL)

			entries := c.Search(context.Background(), "")
			assert.NotNil(t, entries)
			assert.Empty(t, entries)

			_, err := c.SearchResult(context.Background(), "")
			assert.ErrorIs(t, err, model.ErrNetwork)
		})
	}
}

func TestSearchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	assert.Empty(t, newTestClient(url).Search(context.Background(), "x"))
}

func TestLocalIndex(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig().Search

	c := NewClient(cfg)
	assert.Empty(t, c.Local(context.Background()), "no index configured")

	cfg.LocalIndex = filepath.Join(dir, "themes.json")
	c = NewClient(cfg)
	assert.Empty(t, c.Local(context.Background()), "missing file")

	require.NoError(t, os.WriteFile(cfg.LocalIndex, []byte(`[
  {"name": "Cubes", "author": "adi", "download": "https://example.org/cubes.zip"},
  {"name": "Repo", "html_url": "https://github.com/a/repo", "default_branch": "dev", "owner": {"login": "a"}}
]`), 0o644))
	entries := c.Local(context.Background())
	require.Len(t, entries, 2)
	assert.Equal(t, "https://example.org/cubes.zip", entries[0].ArchiveURL)
	assert.Equal(t, "adi", entries[0].Author)
	assert.Equal(t, "https://github.com/a/repo/archive/refs/heads/dev.zip", entries[1].ArchiveURL)

	require.NoError(t, os.WriteFile(cfg.LocalIndex, []byte(sampleResponse), 0o644))
	assert.Len(t, c.Local(context.Background()), 2, "saved search responses are accepted")

	require.NoError(t, os.WriteFile(cfg.LocalIndex, []byte("garbage"), 0o644))
	assert.Empty(t, c.Local(context.Background()))
}

func TestArchiveURL(t *testing.T) {
	assert.Equal(t, "https://github.com/a/b/archive/refs/heads/main.zip", ArchiveURL("https://github.com/a/b", ""))
	assert.Equal(t, "", ArchiveURL("", "main"))
}
