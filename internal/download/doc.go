package download

// Package download implements the online install pipeline: it streams theme
// archives to local storage with progress reporting, hands each finished
// archive to the installer, and tracks every request as a task the UI can
// render. Tasks run concurrently, one goroutine each, with no upper bound.
