package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestBootDelaySeconds(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetBootDelaySeconds(); got != DefaultBootDelaySeconds {
		t.Errorf("Expected default boot delay %d, got %d", DefaultBootDelaySeconds, got)
	}

	// Test setting custom value
	settings.SetBootDelaySeconds(5)
	if got := settings.GetBootDelaySeconds(); got != 5 {
		t.Errorf("Expected boot delay 5, got %d", got)
	}

	// Test boundary values
	settings.SetBootDelaySeconds(-3) // Should be clamped to 0
	if settings.GetBootDelaySeconds() != 0 {
		t.Error("Boot delay should be clamped to minimum 0")
	}

	settings.SetBootDelaySeconds(45) // Should be clamped to 20
	if settings.GetBootDelaySeconds() != 20 {
		t.Error("Boot delay should be clamped to maximum 20")
	}
}

func TestLastSearchQuery(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetLastSearchQuery(); got != "" {
		t.Errorf("Expected empty last query, got %q", got)
	}

	settings.SetLastSearchQuery("dark")
	if got := settings.GetLastSearchQuery(); got != "dark" {
		t.Errorf("Expected last query 'dark', got %q", got)
	}
}

func TestApplyAfterInstall(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetApplyAfterInstall() != DefaultApplyAfterGet {
		t.Errorf("Expected default apply-after-install %v", DefaultApplyAfterGet)
	}

	settings.SetApplyAfterInstall(true)
	if !settings.GetApplyAfterInstall() {
		t.Error("Expected apply-after-install to be true")
	}
}

func TestApplyPolicy(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.ApplyPolicy(); got != PolicyStrict {
		t.Errorf("Expected default policy %s, got %s", PolicyStrict, got)
	}

	settings.SetLenientApply(true)
	if got := settings.ApplyPolicy(); got != PolicyLenient {
		t.Errorf("Expected policy %s, got %s", PolicyLenient, got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected default language %q, got %q", DefaultLanguage, got)
	}

	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language 'ru', got %q", got)
	}
}
