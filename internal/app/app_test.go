package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"propellus-site/internal/config"
	"propellus-site/internal/infra/cms"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cmsServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/terms-of-services":
			_, _ = w.Write([]byte(`{"data":[{"id":1,"title":"Use of the service","description":"Be nice.","last_update_date":"2025-01-01"}]}`))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"maintenance"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func build(t *testing.T, srv *httptest.Server) *Components {
	t.Helper()
	cfg := cms.DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.MediaBaseURL = srv.URL

	t.Setenv("SITE_CONFIG_PATH", "")
	c, err := Build(cfg, nil, srv.Client())
	require.NoError(t, err)
	return c
}

func TestBuild_LoadsDefaultSite(t *testing.T) {
	c := build(t, cmsServer(t))

	assert.Len(t, c.Site.Pages, 6)
	assert.Equal(t, 36, c.Sections.Catalog.Len())
}

func TestBuild_RejectsInvalidSite(t *testing.T) {
	site := &config.Site{Pages: []config.Page{{Path: "/", Sections: []config.PageSection{{Name: "nope", Template: config.TemplateText}}}}}

	_, err := Build(cms.DefaultConfig(), site, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidSite)
}

func TestComponents_ProxyRoutes(t *testing.T) {
	c := build(t, cmsServer(t))

	rr := httptest.NewRecorder()
	c.API.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/terms", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"data"`)

	rr = httptest.NewRecorder()
	c.API.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/sections/vision", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestComponents_PagesInProcess(t *testing.T) {
	c := build(t, cmsServer(t))
	page, ok := c.Site.Page("/terms")
	require.True(t, ok)

	h := c.Pages(nil)
	h.Page = page
	body, err := h.Render(context.Background())
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	require.NoError(t, err)
	assert.Equal(t, "ready", doc.Find("#terms").AttrOr("data-state", ""))
}

func TestComponents_PageSurvivesFailingSections(t *testing.T) {
	c := build(t, cmsServer(t))
	page, ok := c.Site.Page("/about")
	require.True(t, ok)

	h := c.Pages(nil)
	h.Page = page
	body, err := h.Render(context.Background())
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	require.NoError(t, err)
	assert.Equal(t, len(page.Sections), doc.Find(`main > section[data-state="failed"]`).Length())
}
