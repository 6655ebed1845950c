package install

// Package install turns a theme archive into an installed bundle: it extracts
// the archive to a scratch directory, locates the descriptor, and copies the
// bundle into the install root through the elevation runner.
