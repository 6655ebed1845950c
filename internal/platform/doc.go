package platform

// Package platform contains OS-specific helpers: directory creation, opening
// folders in the desktop file manager, and running commands with elevated
// privileges through an authorization helper such as pkexec.
