package blog

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version is the release of the toolkit.
var Version = strings.TrimSpace(rawVersion)
