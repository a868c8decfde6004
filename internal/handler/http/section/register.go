// Package section exposes page sections as same-origin JSON resources.
//
// Every route answers 200 {"data": <section|null>} or a non-200
// {"error": ..., "details": ...} envelope.
package section

import (
	"net/http"

	sectionUC "propellus-site/internal/usecase/section"
)

// Register registers the section routes with the given mux:
//
//	GET /api/sections          catalog listing
//	GET /api/sections/{name}   one section
//
// plus one fixed route per endpoint alias.
func Register(mux *http.ServeMux, svc *sectionUC.Service) {
	mux.Handle("GET /api/sections", ListHandler{Catalog: svc.Catalog})
	mux.Handle("GET /api/sections/{name}", GetHandler{Svc: svc})

	for _, ep := range svc.Catalog.Endpoints() {
		for _, alias := range ep.Aliases {
			mux.Handle("GET "+alias, GetHandler{Svc: svc, Name: ep.Name})
		}
	}
}
