package normalize

import (
	"strings"

	"github.com/tidwall/gjson"

	"propellus-site/internal/domain/entity"
)

// Image format names offered by the CMS upload plugin.
const (
	FormatOriginal  = ""
	FormatThumbnail = "thumbnail"
	FormatSmall     = "small"
	FormatMedium    = "medium"
	FormatLarge     = "large"
)

// MediaResolver turns CMS media paths into absolute URLs.
type MediaResolver struct {
	base string
}

// NewMediaResolver returns a resolver for the given content-host base,
// e.g. "http://127.0.0.1:1337". Trailing slashes are ignored.
func NewMediaResolver(base string) MediaResolver {
	return MediaResolver{base: strings.TrimRight(strings.TrimSpace(base), "/")}
}

// Base returns the configured content-host base.
func (r MediaResolver) Base() string {
	return r.base
}

// Resolve makes a media URL absolute. URLs that already carry a scheme (or
// are protocol-relative) are returned unchanged, root-relative paths are
// prefixed with the base, and an empty input stays empty. Resolve is
// idempotent.
func (r MediaResolver) Resolve(raw string) string {
	u := strings.TrimSpace(raw)
	switch {
	case u == "":
		return ""
	case hasScheme(u), strings.HasPrefix(u, "//"):
		return u
	case strings.HasPrefix(u, "/"):
		return r.base + u
	default:
		return r.base + "/" + u
	}
}

// hasScheme reports whether u starts with an RFC 3986 scheme followed by ':'.
func hasScheme(u string) bool {
	for i := 0; i < len(u); i++ {
		c := u[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9', c == '+', c == '-', c == '.':
			if i == 0 {
				return false
			}
		case c == ':':
			return i > 0
		default:
			return false
		}
	}
	return false
}

// Media reads one media object at path below v. A list of media yields its
// first element. When format is set and the CMS generated that rendition it
// is preferred over the original. altFallback is used when the upload has
// no alternative text.
func (r MediaResolver) Media(v gjson.Result, path, format, altFallback string) (entity.MediaRef, bool) {
	m := mediaObject(get(v, path))
	if !m.Exists() {
		return entity.MediaRef{}, false
	}
	return r.ref(m, format, altFallback)
}

// MediaList reads every media object of the list at path.
func (r MediaResolver) MediaList(v gjson.Result, path, format, altFallback string) []entity.MediaRef {
	raw := get(v, path)
	if raw.Get("data").Exists() {
		raw = raw.Get("data")
	}
	var items []gjson.Result
	if raw.IsArray() {
		items = raw.Array()
	} else if raw.IsObject() {
		items = []gjson.Result{raw}
	}
	refs := []entity.MediaRef{}
	for _, item := range items {
		if ref, ok := r.ref(unwrap(item), format, altFallback); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

func (r MediaResolver) ref(m gjson.Result, format, altFallback string) (entity.MediaRef, bool) {
	src := m
	if format != FormatOriginal {
		if f := m.Get("formats." + format); f.IsObject() && str(f, "url") != "" {
			src = f
		}
	}
	url := r.Resolve(str(src, "url"))
	if url == "" {
		return entity.MediaRef{}, false
	}
	alt := firstStr(m, "alternativeText", "caption")
	if alt == "" {
		alt = altFallback
	}
	return entity.MediaRef{
		URL:    url,
		Alt:    alt,
		Width:  int(src.Get("width").Int()),
		Height: int(src.Get("height").Int()),
	}, true
}

// mediaObject accepts the shapes a media field takes across CMS versions:
// a bare object, a list of objects, or a v4 {data: {attributes}} relation.
func mediaObject(v gjson.Result) gjson.Result {
	if d := v.Get("data"); d.Exists() {
		v = d
	}
	if v.IsArray() {
		items := v.Array()
		if len(items) == 0 {
			return gjson.Result{}
		}
		v = items[0]
	}
	if !v.IsObject() {
		return gjson.Result{}
	}
	return unwrap(v)
}
