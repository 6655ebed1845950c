package catalog

// Package catalog finds downloadable themes. Remote search queries the GitHub
// repository search API; a local JSON index can be used as an offline
// fallback. Both degrade to an empty list on any failure.
