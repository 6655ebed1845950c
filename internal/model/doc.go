package model

// Package model defines domain data structures used across the app: installed
// themes, remote catalog entries, download progress, online install tasks and
// the error taxonomy shared by every service.
