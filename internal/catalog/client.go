package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"pkt.systems/pslog"

	"github.com/ytget/plymouth-manager/internal/config"
	"github.com/ytget/plymouth-manager/internal/model"
)

// Archive URL layout for GitHub repositories
const (
	ArchivePathFormat = "%s/archive/refs/heads/%s.zip"
	DefaultBranch     = "main"
	AcceptHeader      = "application/vnd.github+json"
	UserAgent         = "plymouth-manager"
)

// MaxResponseBytes bounds the decoded search response
const MaxResponseBytes = 8 << 20

// repository is the subset of a search result item the catalog needs
type repository struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	HTMLURL       string `json:"html_url"`
	DefaultBranch string `json:"default_branch"`
	Stars         int    `json:"stargazers_count"`
	Owner         struct {
		Login string `json:"login"`
	} `json:"owner"`

	// local index shape
	Author   string `json:"author"`
	Download string `json:"download"`
}

type searchResponse struct {
	Items []repository `json:"items"`
}

// Client searches the remote theme catalog
type Client struct {
	http        *http.Client
	endpoint    string
	defaultTerm string
	topic       string
	sort        string
	localIndex  string
}

// NewClient creates a catalog client from the process configuration
func NewClient(cfg config.SearchConfig) *Client {
	return &Client{
		http:        &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		endpoint:    cfg.Endpoint,
		defaultTerm: cfg.DefaultTerm,
		topic:       cfg.Topic,
		sort:        cfg.Sort,
		localIndex:  cfg.LocalIndex,
	}
}

// SearchTerm maps a user query to the search term sent upstream
func (c *Client) SearchTerm(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.defaultTerm
	}
	return fmt.Sprintf("%s topic:%s", query, c.topic)
}

// Search returns matching themes ordered by popularity. Any failure yields an
// empty slice; use SearchResult to see the error.
func (c *Client) Search(ctx context.Context, query string) []model.CatalogEntry {
	entries, err := c.SearchResult(ctx, query)
	if err != nil {
		pslog.Ctx(ctx).Warn("theme search failed", "query", query, "err", err)
		return []model.CatalogEntry{}
	}
	return entries
}

// SearchResult is Search with the failure reported to the caller
func (c *Client) SearchResult(ctx context.Context, query string) ([]model.CatalogEntry, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: endpoint: %w", model.ErrNetwork, err)
	}
	q := u.Query()
	q.Set("q", c.SearchTerm(query))
	if c.sort != "" {
		q.Set("sort", c.sort)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrNetwork, err)
	}
	req.Header.Set("Accept", AcceptHeader)
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: search returned %s", model.ErrNetwork, resp.Status)
	}

	var body searchResponse
	dec := json.NewDecoder(io.LimitReader(resp.Body, MaxResponseBytes))
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %w", model.ErrNetwork, err)
	}
	return toEntries(body.Items), nil
}

// Local returns the entries of the configured local index, or an empty slice
// when no index is configured or it cannot be read
func (c *Client) Local(ctx context.Context) []model.CatalogEntry {
	if c.localIndex == "" {
		return []model.CatalogEntry{}
	}
	data, err := os.ReadFile(c.localIndex)
	if err != nil {
		pslog.Ctx(ctx).Debug("local theme index unavailable", "path", c.localIndex, "err", err)
		return []model.CatalogEntry{}
	}

	var items []repository
	if err := json.Unmarshal(data, &items); err != nil {
		// a saved search response is accepted too
		var wrapped searchResponse
		if err2 := json.Unmarshal(data, &wrapped); err2 != nil {
			pslog.Ctx(ctx).Warn("local theme index is not valid JSON", "path", c.localIndex, "err", err)
			return []model.CatalogEntry{}
		}
		items = wrapped.Items
	}
	return toEntries(items)
}

func toEntries(items []repository) []model.CatalogEntry {
	entries := make([]model.CatalogEntry, 0, len(items))
	for _, it := range items {
		archive := it.Download
		if archive == "" {
			archive = ArchiveURL(it.HTMLURL, it.DefaultBranch)
		}
		if archive == "" {
			continue
		}
		author := it.Owner.Login
		if author == "" {
			author = it.Author
		}
		name := it.Name
		if name == "" {
			name = "Unknown"
		}
		entries = append(entries, model.CatalogEntry{
			Name:        name,
			Author:      author,
			ArchiveURL:  archive,
			Description: it.Description,
			Stars:       it.Stars,
		})
	}
	return entries
}

// ArchiveURL builds the branch archive URL of a repository web URL
func ArchiveURL(htmlURL, branch string) string {
	htmlURL = strings.TrimSuffix(strings.TrimSpace(htmlURL), "/")
	if htmlURL == "" {
		return ""
	}
	if branch == "" {
		branch = DefaultBranch
	}
	return fmt.Sprintf(ArchivePathFormat, htmlURL, branch)
}
