// Package theme injects the widget stylesheet and flips the container's
// dark/light attribute. Themes change colour variables only.
package theme

import (
	"notesgraph/internal/dom"
)

// StyleID keys the injected stylesheet
const StyleID = "notes-graph-styles"

// Attribute is the container attribute style rules key on
const Attribute = "data-theme"

// Theme is the binary colour scheme
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Palette holds the colour variables a theme resolves to
type Palette struct {
	Node       string `json:"node"`
	Link       string `json:"link"`
	Text       string `json:"text"`
	Background string `json:"background"`
	Highlight  string `json:"highlight"`
}

var palettes = map[Theme]Palette{
	Dark: {
		Node:       "#14b5ff",
		Link:       "rgba(20, 181, 255, 0.3)",
		Text:       "#e0e0e0",
		Background: "#0a0a0f",
		Highlight:  "#ffb347",
	},
	Light: {
		Node:       "#0a7bbf",
		Link:       "rgba(10, 123, 191, 0.35)",
		Text:       "#1a1a2e",
		Background: "#f7f7fa",
		Highlight:  "#e07b00",
	},
}

// Palette returns the colours for t. Unknown themes get the dark palette.
func (t Theme) Palette() Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[Dark]
}

// Opposite returns the other theme
func (t Theme) Opposite() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Inject adds the widget stylesheet to the document head once. It reports
// whether this call added it.
func Inject(doc *dom.Document) bool {
	return doc.EnsureHead(StyleID, func() *dom.Element {
		style := dom.NewElement("style")
		style.Inner = Stylesheet
		return style
	})
}

// Current reads the container's theme. A container without the attribute
// is dark.
func Current(container *dom.Element) Theme {
	if v, ok := container.Attr(Attribute); ok && Theme(v) == Light {
		return Light
	}
	return Dark
}

// Toggle flips the container between dark and light and returns the new
// theme
func Toggle(container *dom.Element) Theme {
	next := Current(container).Opposite()
	container.SetAttr(Attribute, string(next))
	return next
}
