package model

import (
	"testing"
	"time"
)

func TestInstallTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		name     string
		task     InstallTask
		expected string
	}{
		{"theme id wins", InstallTask{ThemeID: "spinfinity", Name: "plymouth-spinfinity", URL: "https://x"}, "spinfinity"},
		{"catalog name", InstallTask{Name: "plymouth-spinfinity", URL: "https://x"}, "plymouth-spinfinity"},
		{"url fallback", InstallTask{URL: "https://x"}, "https://x"},
	}

	for _, test := range tests {
		if got := test.task.GetDisplayTitle(); got != test.expected {
			t.Errorf("%s: GetDisplayTitle() = %q, expected %q", test.name, got, test.expected)
		}
	}
}

func TestInstallTask_GetDuration(t *testing.T) {
	var task InstallTask
	if task.GetDuration() != 0 {
		t.Error("Expected zero duration for a task that never started")
	}

	start := time.Now().Add(-3 * time.Second)
	task = InstallTask{StartedAt: start, FinishedAt: start.Add(2 * time.Second)}
	if got := task.GetDuration(); got != 2*time.Second {
		t.Errorf("Expected 2s duration, got %v", got)
	}

	task.FinishedAt = time.Time{}
	if got := task.GetDuration(); got < 3*time.Second {
		t.Errorf("Expected running duration of at least 3s, got %v", got)
	}
}
