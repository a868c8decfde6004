package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "/"},
		{"/about", "/about"},
		{"/about/", "/about"},
		{"/travel-agents", "/travel-agents"},
		{"/terms?lang=en", "/terms"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
		{"/api/sections", "/api/sections"},
		{"/api/sections/vision", "/api/sections/:name"},
		{"/api/sections/does-not-exist", "/api/sections/:name"},
		{"/api/aboutUs/roadmapSlides", "/api/aboutUs/roadmapSlides"},
		{"/api/otas/visaApi", "/api/otas/visaApi"},
		{"/api/terms", "/api/terms"},
		{"/assets/carousel.js", "/assets/:file"},
		{"/assets/img/logo.svg", "/assets/:file"},
		{"/api/sections/vision/extra", Unmatched},
		{"/.env", Unmatched},
		{"/api/aboutUs/../../etc/passwd", Unmatched},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
