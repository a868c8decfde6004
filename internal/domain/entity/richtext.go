package entity

import (
	"encoding/json"
	"strings"
)

// Block and leaf kinds understood by the reducers. Other kinds (heading,
// quote, link, ...) are carried through untouched and ignored when reducing.
const (
	KindParagraph = "paragraph"
	KindList      = "list"
	KindListItem  = "list-item"
	KindText      = "text"
	KindHeading   = "heading"
	KindLink      = "link"
)

// Node is one element of a rich text tree. Leaves have Type "text" and carry
// Text; blocks carry Children.
type Node struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Bold     bool   `json:"bold,omitempty"`
	Italic   bool   `json:"italic,omitempty"`
	Format   string `json:"format,omitempty"`
	URL      string `json:"url,omitempty"`
	Level    int    `json:"level,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// RichText is an ordered sequence of blocks.
type RichText []Node

// Paragraph lifts a plain string into a one-paragraph rich text value.
// An empty string yields an empty value.
func Paragraph(text string) RichText {
	if text == "" {
		return RichText{}
	}
	return RichText{{
		Type:     KindParagraph,
		Children: []Node{{Type: KindText, Text: text}},
	}}
}

// PlainText concatenates the text leaves of paragraph blocks, with no
// separator between leaves or paragraphs. Non-paragraph blocks and
// non-text children are skipped.
func (rt RichText) PlainText() string {
	var b strings.Builder
	for _, block := range rt {
		if block.Type != KindParagraph {
			continue
		}
		for _, child := range block.Children {
			if child.Type == KindText && child.Text != "" {
				b.WriteString(child.Text)
			}
		}
	}
	return b.String()
}

// Bullets walks list → list-item → first child leaf and returns one string
// per list item. Blocks other than lists are ignored.
func (rt RichText) Bullets() []string {
	bullets := []string{}
	for _, block := range rt {
		if block.Type != KindList {
			continue
		}
		for _, item := range block.Children {
			if item.Type != KindListItem || len(item.Children) == 0 {
				continue
			}
			bullets = append(bullets, item.Children[0].Text)
		}
	}
	return bullets
}

// Text is a looser reduction used for headings: the text of every leaf in
// every block, blocks joined without separator.
func (rt RichText) Text() string {
	var b strings.Builder
	for _, block := range rt {
		collectText(&b, block)
	}
	return b.String()
}

func collectText(b *strings.Builder, n Node) {
	if n.Type == KindText {
		b.WriteString(n.Text)
		return
	}
	for _, child := range n.Children {
		collectText(b, child)
	}
}

// MarshalJSON encodes a nil value as an empty array.
func (rt RichText) MarshalJSON() ([]byte, error) {
	if rt == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Node(rt))
}
