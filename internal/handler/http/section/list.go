package section

import (
	"net/http"

	"propellus-site/internal/handler/http/respond"
	sectionUC "propellus-site/internal/usecase/section"
)

// ListHandler lists the section catalog.
type ListHandler struct {
	Catalog sectionUC.Catalog
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	eps := h.Catalog.Endpoints()
	out := make([]CatalogEntryDTO, 0, len(eps))
	for _, ep := range eps {
		aliases := ep.Aliases
		if aliases == nil {
			aliases = []string{}
		}
		out = append(out, CatalogEntryDTO{
			Name:     ep.Name,
			Route:    "/api/sections/" + ep.Name,
			Resource: ep.Resource,
			Aliases:  aliases,
		})
	}
	respond.Data(w, out)
}
