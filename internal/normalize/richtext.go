package normalize

import (
	"github.com/tidwall/gjson"

	"propellus-site/internal/domain/entity"
)

// richText reads a rich text field. The CMS stores some of these as block
// arrays and some as plain strings depending on the content type; a string
// is lifted into a single paragraph.
func richText(v gjson.Result, path string) entity.RichText {
	r := get(v, path)
	switch {
	case r.Type == gjson.String:
		return entity.Paragraph(r.Str)
	case r.IsArray():
		return nodes(r)
	case r.IsObject() && r.Get("type").Exists():
		return entity.RichText{node(r)}
	default:
		return entity.RichText{}
	}
}

func nodes(r gjson.Result) []entity.Node {
	out := []entity.Node{}
	for _, item := range r.Array() {
		if !item.IsObject() {
			continue
		}
		out = append(out, node(item))
	}
	return out
}

func node(r gjson.Result) entity.Node {
	n := entity.Node{
		Type:   r.Get("type").String(),
		Text:   r.Get("text").String(),
		Bold:   r.Get("bold").Bool(),
		Italic: r.Get("italic").Bool(),
		Format: r.Get("format").String(),
		URL:    r.Get("url").String(),
		Level:  int(r.Get("level").Int()),
	}
	if children := r.Get("children"); children.IsArray() {
		n.Children = nodes(children)
		if len(n.Children) == 0 {
			n.Children = nil
		}
	}
	return n
}

// plain reads a field that may be a string or rich text and returns its
// paragraph text.
func plain(v gjson.Result, path string) string {
	return richText(v, path).PlainText()
}
