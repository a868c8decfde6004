// Package app assembles the site from its configuration: CMS client,
// section catalog, proxy routes and page renderer. Both the server and the
// sitectl tool build on it.
package app

import (
	"fmt"
	"net/http"

	"propellus-site/internal/config"
	hsection "propellus-site/internal/handler/http/section"
	"propellus-site/internal/infra/cms"
	"propellus-site/internal/normalize"
	sectionUC "propellus-site/internal/usecase/section"
	"propellus-site/internal/view"
)

// Components is the wired site.
type Components struct {
	CMS      *cms.Client
	Sections *sectionUC.Service
	Site     *config.Site
	Renderer *view.Renderer
	// API serves the proxy endpoints only, without middleware.
	API *http.ServeMux
}

// Build wires the site around a CMS client. httpClient may be nil.
func Build(cmsCfg cms.Config, site *config.Site, httpClient *http.Client) (*Components, error) {
	client := cms.NewClient(cmsCfg, httpClient)
	svc := &sectionUC.Service{
		Repo:       client,
		Normalizer: normalize.New(normalize.NewMediaResolver(cmsCfg.MediaBaseURL)),
		Catalog:    sectionUC.DefaultCatalog(),
	}

	if site == nil {
		var err error
		site, err = config.Load(svc.Catalog.Names())
		if err != nil {
			return nil, fmt.Errorf("load site config: %w", err)
		}
	} else if err := site.Validate(svc.Catalog.Names()); err != nil {
		return nil, err
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	api := http.NewServeMux()
	hsection.Register(api, svc)

	return &Components{
		CMS:      client,
		Sections: svc,
		Site:     site,
		Renderer: renderer,
		API:      api,
	}, nil
}

// Pages returns the page handler reading sections through f. A nil f reads
// them in-process from the proxy routes.
func (c *Components) Pages(f view.Fetcher) view.PageHandler {
	if f == nil {
		f = view.HandlerFetcher{Handler: c.API}
	}
	return view.PageHandler{Site: c.Site, Fetcher: f, Renderer: c.Renderer}
}
