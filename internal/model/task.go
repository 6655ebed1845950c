package model

import (
	"time"
)

// InstallTask represents a single download-and-install of a catalog entry
type InstallTask struct {
	ID         string
	URL        string
	Name       string
	Status     TaskStatus
	Progress   float64   // 0.0 to 1.0
	Percent    int       // 0 to 100
	Speed      string    // human readable throughput (e.g., "1.2 MB/s")
	LastError  string    // last error message if any
	ThemeID    string    // installed theme identifier once completed
	StartedAt  time.Time // when the task was queued
	FinishedAt time.Time // when the task finished
}

// GetDisplayTitle returns the installed theme id, the catalog name, or the URL in order of preference
func (t *InstallTask) GetDisplayTitle() string {
	if t.ThemeID != "" {
		return t.ThemeID
	}
	if t.Name != "" {
		return t.Name
	}
	return t.URL
}

// GetDuration returns how long the task has been running, or ran for once finished
func (t *InstallTask) GetDuration() time.Duration {
	if t.StartedAt.IsZero() {
		return 0
	}
	if t.FinishedAt.IsZero() {
		return time.Since(t.StartedAt)
	}
	return t.FinishedAt.Sub(t.StartedAt)
}
