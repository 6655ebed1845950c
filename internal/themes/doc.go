// Package themes discovers installed Plymouth theme bundles. The filesystem is
// the only source of truth: every List call rescans the configured roots and
// nothing is cached between calls.
package themes
