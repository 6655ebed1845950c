package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconClose    = "×"
	IconError    = "❌"
	IconStar     = "★"
	IconCheck    = "✔"
	IconWarning  = "⚠"
	IconPending  = "⏳"
	IconDownload = "⬇"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
	BootDelayFormat     = "%d s"
)

// Layout sizing
const (
	StatusLabelWidth  float32 = 110
	SpeedLabelWidth   float32 = 100
	PercentLabelWidth float32 = 48

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 64

	WindowWidth  float32 = 860
	WindowHeight float32 = 600

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 360
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 96
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)

// Archive import filter
var ImportExtensions = []string{".zip"}
