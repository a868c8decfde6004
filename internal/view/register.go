// Package view renders the site's HTML pages. Each page section is bound to
// its proxy endpoint through an Adapter, loaded concurrently, and rendered
// with html/template; a failing section degrades to an inline message while
// the rest of the page renders normally.
package view

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed assets
var assetFS embed.FS

// Assets returns the static files served under /assets/.
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// Register registers one route per configured page and the static assets.
func Register(mux *http.ServeMux, h PageHandler) {
	for _, p := range h.Site.Pages {
		ph := h
		ph.Page = p
		pattern := "GET " + p.Path
		if p.Path == "/" {
			pattern = "GET /{$}"
		}
		mux.Handle(pattern, ph)
	}
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(Assets())))
}
