package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyBootDelaySeconds = "boot_delay_seconds"
	KeyLastSearchQuery  = "last_search_query"
	KeyApplyAfterGet    = "apply_after_install"
	KeyLenientApply     = "lenient_apply"
	KeyLanguage         = "language"
)

// Boot delay bounds accepted by the display manager override
const (
	MinBootDelaySeconds = 0
	MaxBootDelaySeconds = 20
)

// Default values
const (
	DefaultBootDelaySeconds = 0
	DefaultApplyAfterGet    = false
	DefaultLenientApply     = false
	DefaultLanguage         = "system"
)

// Settings manages per-user GUI preferences. System paths and commands live in
// Config; this only remembers what the user last chose.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBootDelaySeconds returns the last boot delay the user saved
func (s *Settings) GetBootDelaySeconds() int {
	return clampDelay(s.app.Preferences().IntWithFallback(KeyBootDelaySeconds, DefaultBootDelaySeconds))
}

// SetBootDelaySeconds stores the boot delay, clamped to [0, 20]
func (s *Settings) SetBootDelaySeconds(seconds int) {
	s.app.Preferences().SetInt(KeyBootDelaySeconds, clampDelay(seconds))
}

// GetLastSearchQuery returns the last query typed in the Online tab
func (s *Settings) GetLastSearchQuery() string {
	return s.app.Preferences().String(KeyLastSearchQuery)
}

// SetLastSearchQuery stores the last query typed in the Online tab
func (s *Settings) SetLastSearchQuery(query string) {
	s.app.Preferences().SetString(KeyLastSearchQuery, query)
}

// GetApplyAfterInstall returns whether a theme is applied right after an online install
func (s *Settings) GetApplyAfterInstall() bool {
	return s.app.Preferences().BoolWithFallback(KeyApplyAfterGet, DefaultApplyAfterGet)
}

// SetApplyAfterInstall sets whether a theme is applied right after an online install
func (s *Settings) SetApplyAfterInstall(apply bool) {
	s.app.Preferences().SetBool(KeyApplyAfterGet, apply)
}

// GetLenientApply returns whether activation keeps going after a failed step
func (s *Settings) GetLenientApply() bool {
	return s.app.Preferences().BoolWithFallback(KeyLenientApply, DefaultLenientApply)
}

// SetLenientApply sets whether activation keeps going after a failed step
func (s *Settings) SetLenientApply(lenient bool) {
	s.app.Preferences().SetBool(KeyLenientApply, lenient)
}

// GetLanguage returns the UI language code, or "system"
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the UI language code
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// ApplyPolicy maps the lenient preference onto an activation policy name
func (s *Settings) ApplyPolicy() string {
	if s.GetLenientApply() {
		return PolicyLenient
	}
	return PolicyStrict
}

func clampDelay(seconds int) int {
	if seconds < MinBootDelaySeconds {
		return MinBootDelaySeconds
	}
	if seconds > MaxBootDelaySeconds {
		return MaxBootDelaySeconds
	}
	return seconds
}
