// Package web embeds the static assets served to the Mini App webview.
package web

import "embed"

//go:embed public
var Public embed.FS
