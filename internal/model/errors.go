package model

import "errors"

// Error taxonomy. Services wrap these with fmt.Errorf("...: %w") so callers can
// branch with errors.Is while still getting a descriptive message.
var (
	ErrExtraction         = errors.New("archive extraction failed")
	ErrDescriptorNotFound = errors.New("no theme descriptor found in archive")
	ErrInstallationDenied = errors.New("privilege elevation denied")
	ErrThemeFileMissing   = errors.New("theme descriptor file missing")
	ErrNetwork            = errors.New("network error")
	ErrConfigWrite        = errors.New("config write failed")

	ErrCommandFailed  = errors.New("privileged command failed")
	ErrInvalidDelay   = errors.New("boot delay out of range")
	ErrProtectedTheme = errors.New("theme is protected")
	ErrInvalidThemeID = errors.New("invalid theme identifier")
	ErrThemeNotFound  = errors.New("theme not found")
)
