package view

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"propellus-site/internal/config"
	"propellus-site/internal/handler/http/respond"
	"propellus-site/internal/observability/logging"
	"propellus-site/internal/observability/metrics"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentSections bounds the fan-out of one page render.
const maxConcurrentSections = 8

// PageHandler renders one configured page. Every request gets fresh
// adapters, so a failed section is retried on the next page view.
type PageHandler struct {
	Site     *config.Site
	Page     config.Page
	Fetcher  Fetcher
	Renderer *Renderer
}

// LoadSections runs one adapter per section concurrently and returns the
// views in page order. Section failures are recorded in their view; they
// never fail the page.
func LoadSections(ctx context.Context, site *config.Site, page config.Page, f Fetcher) []SectionView {
	views := make([]SectionView, len(page.Sections))

	var g errgroup.Group
	g.SetLimit(maxConcurrentSections)
	for i, ps := range page.Sections {
		views[i] = SectionView{Name: ps.Name, Template: ps.Template}
		if ps.Template == config.TemplateCarousel {
			views[i].Speed = site.SpeedFor(ps)
		}
		g.Go(func() error {
			views[i].Status = NewAdapter(ps.Name, f).Load(ctx)
			return nil
		})
	}
	_ = g.Wait()
	return views
}

// Render loads and renders the page into a complete document.
func (h PageHandler) Render(ctx context.Context) ([]byte, error) {
	views := LoadSections(ctx, h.Site, h.Page, h.Fetcher)

	logger := logging.FromContext(ctx)
	fragments := make([]template.HTML, 0, len(views))
	for _, v := range views {
		if v.State == StateFailed {
			logger.Warn("section unavailable",
				slog.String("page", h.Page.Path),
				slog.String("section", v.Name),
				slog.String("reason", v.Reason))
		}
		frag, err := h.Renderer.RenderSection(v)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, frag)
	}

	var buf bytes.Buffer
	err := h.Renderer.RenderPage(&buf, PageView{
		Path:     h.Page.Path,
		Title:    h.Page.Title,
		Nav:      navigation(h.Site, h.Page.Path),
		Sections: fragments,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (h PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { metrics.RecordPageRender(h.Page.Path, time.Since(start)) }()

	body, err := h.Render(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("page render failed",
			slog.String("page", h.Page.Path),
			slog.Any("error", err))
		respond.Failure(w, http.StatusInternalServerError, "failed to render page", "")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func navigation(site *config.Site, current string) []NavLink {
	nav := make([]NavLink, 0, len(site.Pages))
	for _, p := range site.Pages {
		if p.Path == "/" || p.Path == "/terms" {
			continue
		}
		nav = append(nav, NavLink{Path: p.Path, Title: p.Title, Current: p.Path == current})
	}
	return nav
}
