// Package csp builds Content-Security-Policy header values.
package csp

import (
	"slices"
	"strings"
)

// directiveOrder fixes the rendering order so headers are stable across builds.
var directiveOrder = []string{
	"default-src",
	"script-src",
	"style-src",
	"img-src",
	"media-src",
	"font-src",
	"connect-src",
	"frame-src",
	"frame-ancestors",
	"form-action",
	"base-uri",
	"object-src",
	"report-uri",
}

// CSPBuilder provides a fluent interface for constructing Content-Security-Policy headers.
//
//	policy := NewCSPBuilder().
//	    DefaultSrc("'self'").
//	    ImgSrc("'self'", "https://cms.example.com").
//	    Build()
//	// "default-src 'self'; img-src 'self' https://cms.example.com"
//
// CSPBuilder is not safe for concurrent mutation. Build the policy once at
// startup and share only the result.
type CSPBuilder struct {
	directives map[string][]string
	reportOnly bool
}

// NewCSPBuilder creates an empty builder.
func NewCSPBuilder() *CSPBuilder {
	return &CSPBuilder{directives: make(map[string][]string)}
}

func (b *CSPBuilder) set(directive string, sources []string) *CSPBuilder {
	b.directives[directive] = slices.Compact(slices.Clone(sources))
	return b
}

// DefaultSrc sets the fallback for the other fetch directives.
func (b *CSPBuilder) DefaultSrc(sources ...string) *CSPBuilder { return b.set("default-src", sources) }

// ScriptSrc sets script-src.
func (b *CSPBuilder) ScriptSrc(sources ...string) *CSPBuilder { return b.set("script-src", sources) }

// StyleSrc sets style-src.
func (b *CSPBuilder) StyleSrc(sources ...string) *CSPBuilder { return b.set("style-src", sources) }

// ImgSrc sets img-src.
func (b *CSPBuilder) ImgSrc(sources ...string) *CSPBuilder { return b.set("img-src", sources) }

// MediaSrc sets media-src, used by the carousel's video slides.
func (b *CSPBuilder) MediaSrc(sources ...string) *CSPBuilder { return b.set("media-src", sources) }

// FontSrc sets font-src.
func (b *CSPBuilder) FontSrc(sources ...string) *CSPBuilder { return b.set("font-src", sources) }

// ConnectSrc sets connect-src.
func (b *CSPBuilder) ConnectSrc(sources ...string) *CSPBuilder { return b.set("connect-src", sources) }

// FrameSrc sets frame-src.
func (b *CSPBuilder) FrameSrc(sources ...string) *CSPBuilder { return b.set("frame-src", sources) }

// FrameAncestors controls which origins may embed the page.
func (b *CSPBuilder) FrameAncestors(sources ...string) *CSPBuilder {
	return b.set("frame-ancestors", sources)
}

// FormAction sets form-action.
func (b *CSPBuilder) FormAction(sources ...string) *CSPBuilder { return b.set("form-action", sources) }

// BaseUri sets base-uri.
func (b *CSPBuilder) BaseUri(sources ...string) *CSPBuilder { return b.set("base-uri", sources) }

// ObjectSrc sets object-src.
func (b *CSPBuilder) ObjectSrc(sources ...string) *CSPBuilder { return b.set("object-src", sources) }

// ReportUri sets the violation report endpoint. An empty uri removes it.
func (b *CSPBuilder) ReportUri(uri string) *CSPBuilder {
	if uri == "" {
		delete(b.directives, "report-uri")
		return b
	}
	return b.set("report-uri", []string{uri})
}

// ReportOnly switches the header to Content-Security-Policy-Report-Only.
func (b *CSPBuilder) ReportOnly(enabled bool) *CSPBuilder {
	b.reportOnly = enabled
	return b
}

// IsReportOnly reports whether the builder emits the report-only header.
func (b *CSPBuilder) IsReportOnly() bool {
	return b.reportOnly
}

// Clone returns an independent copy of the builder.
func (b *CSPBuilder) Clone() *CSPBuilder {
	c := &CSPBuilder{directives: make(map[string][]string, len(b.directives)), reportOnly: b.reportOnly}
	for k, v := range b.directives {
		c.directives[k] = slices.Clone(v)
	}
	return c
}

// Build renders the header value. Directives appear in a fixed order and
// empty directives are omitted.
func (b *CSPBuilder) Build() string {
	parts := make([]string, 0, len(b.directives))
	for _, directive := range directiveOrder {
		if sources := b.directives[directive]; len(sources) > 0 {
			parts = append(parts, directive+" "+strings.Join(sources, " "))
		}
	}
	return strings.Join(parts, "; ")
}

// HeaderName returns the header the policy must be sent under.
func (b *CSPBuilder) HeaderName() string {
	if b.reportOnly {
		return "Content-Security-Policy-Report-Only"
	}
	return "Content-Security-Policy"
}

// PagePolicy returns the policy for rendered site pages. Images and videos
// may be served by the media origin; everything else must be same-origin.
// Inline styles are allowed because section templates set per-slide
// background images.
func PagePolicy(mediaOrigins ...string) *CSPBuilder {
	media := append([]string{"'self'", "data:"}, mediaOrigins...)
	return NewCSPBuilder().
		DefaultSrc("'self'").
		ScriptSrc("'self'").
		StyleSrc("'self'", "'unsafe-inline'").
		ImgSrc(media...).
		MediaSrc(media...).
		FontSrc("'self'", "data:").
		ConnectSrc("'self'").
		FrameSrc("https://www.youtube-nocookie.com").
		FrameAncestors("'none'").
		BaseUri("'self'").
		FormAction("'self'").
		ObjectSrc("'none'")
}

// StrictPolicy returns a policy for JSON endpoints that never render HTML.
func StrictPolicy() *CSPBuilder {
	return NewCSPBuilder().
		DefaultSrc("'none'").
		ConnectSrc("'self'").
		FrameAncestors("'none'").
		BaseUri("'self'").
		FormAction("'self'")
}
