package static

import "embed"

// FS exposes navshell static assets for HTTP serving.
//
//go:embed *.css *.js avatars/*.svg
var FS embed.FS
