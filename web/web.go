// Package web embeds the dashboard assets served by the HTTP app and
// inlined into self-contained HTML exports.
package web

import "embed"

//go:embed index.html app.js styles.css
var FS embed.FS
