// Package normalize maps raw CMS documents onto the flat section view-model.
//
// Every reader in this package is total: a missing key, a null, a value of
// the wrong type or an empty collection resolves to the zero value of the
// target field instead of an error. Each page section has exactly one
// function here, so the field mapping for a section is defined in one place.
package normalize

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Doc is a parsed CMS response body.
type Doc struct {
	root gjson.Result
}

// Parse wraps raw JSON. Invalid input yields an empty document.
func Parse(raw []byte) Doc {
	if !gjson.ValidBytes(raw) {
		return Doc{}
	}
	return Doc{root: gjson.ParseBytes(raw)}
}

// Get reads a value using dotted paths with optional indexes, for example
// "grow[0].description".
func (d Doc) Get(path string) gjson.Result {
	return d.root.Get(gjsonPath(path))
}

// Entry returns the document's primary entry. Single types answer with an
// object under "data"; collection types answer with an array, of which the
// first element is used. An empty collection reports false.
func (d Doc) Entry() (gjson.Result, bool) {
	data := d.root.Get("data")
	switch {
	case data.IsArray():
		items := data.Array()
		if len(items) == 0 {
			return gjson.Result{}, false
		}
		return unwrap(items[0]), true
	case data.IsObject():
		return unwrap(data), true
	default:
		return gjson.Result{}, false
	}
}

// Entries returns every entry of a collection response.
func (d Doc) Entries() []gjson.Result {
	data := d.root.Get("data")
	if data.IsObject() {
		return []gjson.Result{unwrap(data)}
	}
	var out []gjson.Result
	for _, item := range data.Array() {
		if item.IsObject() {
			out = append(out, unwrap(item))
		}
	}
	return out
}

// get reads path below v.
func get(v gjson.Result, path string) gjson.Result {
	return unwrap(v).Get(gjsonPath(path))
}

// component returns the object at path. Repeatable components stored as a
// one-element list are unwrapped to their first element.
func component(v gjson.Result, path string) (gjson.Result, bool) {
	c := get(v, path)
	if c.IsArray() {
		items := c.Array()
		if len(items) == 0 {
			return gjson.Result{}, false
		}
		c = items[0]
	}
	if !c.IsObject() {
		return gjson.Result{}, false
	}
	return unwrap(c), true
}

// list returns the objects of the array at path, unwrapping v4 attributes
// and {data: [...]} relations. A single object reads as a one-element list.
func list(v gjson.Result, path string) []gjson.Result {
	r := get(v, path)
	if d := r.Get("data"); r.IsObject() && d.IsArray() {
		r = d
	}
	var out []gjson.Result
	for _, item := range r.Array() {
		if item.IsObject() {
			out = append(out, unwrap(item))
		}
	}
	return out
}

// str reads a scalar as a string. Objects, arrays and nulls read as "".
func str(v gjson.Result, path string) string {
	r := get(v, path)
	switch r.Type {
	case gjson.String:
		return strings.TrimSpace(r.Str)
	case gjson.Number:
		return r.Raw
	default:
		return ""
	}
}

// firstStr returns the first non-empty string among paths.
func firstStr(v gjson.Result, paths ...string) string {
	for _, p := range paths {
		if s := str(v, p); s != "" {
			return s
		}
	}
	return ""
}

// unwrap strips the Strapi v4 "attributes" envelope when present.
func unwrap(v gjson.Result) gjson.Result {
	if attrs := v.Get("attributes"); attrs.IsObject() {
		return attrs
	}
	return v
}

var pathReplacer = strings.NewReplacer("[", ".", "]", "")

func gjsonPath(path string) string {
	return strings.TrimPrefix(pathReplacer.Replace(path), ".")
}
