package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It has two tabs: Installed, which lists theme bundles found on disk and lets
// the user apply, remove or import them, and Online, which searches the theme
// catalog and tracks download-and-install tasks. Long-running work happens on
// background goroutines and every widget update is marshalled back with fyne.Do.
// All UI strings are localized via Localization.
