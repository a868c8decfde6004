package view

import (
	"html"
	"html/template"
	"strings"

	"propellus-site/internal/domain/entity"

	"github.com/microcosm-cc/bluemonday"
)

// richTextPolicy allows the formatting the CMS editor can produce and
// nothing else.
var richTextPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}()

// RichTextHTML renders rich text as sanitized HTML. Unknown block kinds
// contribute their text as a paragraph.
func RichTextHTML(rt entity.RichText) template.HTML {
	if len(rt) == 0 {
		return ""
	}
	var b strings.Builder
	for _, block := range rt {
		writeBlock(&b, block)
	}
	// #nosec G203 -- output of the sanitizer
	return template.HTML(richTextPolicy.Sanitize(b.String()))
}

func writeBlock(b *strings.Builder, n entity.Node) {
	switch n.Type {
	case entity.KindParagraph:
		if entity.RichText(n.Children).Text() == "" {
			return
		}
		b.WriteString("<p>")
		writeInline(b, n.Children)
		b.WriteString("</p>")
	case entity.KindList:
		tag := "ul"
		if n.Format == "ordered" {
			tag = "ol"
		}
		b.WriteString("<" + tag + ">")
		for _, item := range n.Children {
			if item.Type != entity.KindListItem {
				continue
			}
			b.WriteString("<li>")
			writeInline(b, item.Children)
			b.WriteString("</li>")
		}
		b.WriteString("</" + tag + ">")
	case entity.KindHeading:
		level := min(max(n.Level, 2), 6)
		tag := "h" + string(rune('0'+level))
		b.WriteString("<" + tag + ">")
		writeInline(b, n.Children)
		b.WriteString("</" + tag + ">")
	default:
		if text := (entity.RichText{n}).Text(); text != "" {
			b.WriteString("<p>" + html.EscapeString(text) + "</p>")
		}
	}
}

func writeInline(b *strings.Builder, nodes []entity.Node) {
	for _, n := range nodes {
		switch n.Type {
		case entity.KindText:
			text := html.EscapeString(n.Text)
			if n.Bold {
				text = "<strong>" + text + "</strong>"
			}
			if n.Italic {
				text = "<em>" + text + "</em>"
			}
			b.WriteString(text)
		case entity.KindLink:
			b.WriteString(`<a href="` + html.EscapeString(n.URL) + `">`)
			writeInline(b, n.Children)
			b.WriteString("</a>")
		default:
			writeInline(b, n.Children)
		}
	}
}
