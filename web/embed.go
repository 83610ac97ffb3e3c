// Package web holds the embedded dashboard page and its static assets.
package web

import "embed"

// FS contains the HTML template and static assets served by the router.
//
//go:embed templates static
var FS embed.FS
