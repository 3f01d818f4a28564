// Package dom is a minimal document model for the chrome around the graph:
// the container element, its control buttons, the tooltip and the svg root,
// plus the document head where styles are injected.
package dom

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
)

// Element is a node in the document tree. Elements are not safe for
// concurrent use; each widget owns its container subtree.
type Element struct {
	Tag   string
	ID    string
	Text  string // escaped when rendered
	Inner string // raw markup, rendered before children

	// client size in pixels
	Width  float64
	Height float64

	classes  []string
	attrs    map[string]string
	style    map[string]string
	children []*Element
	parent   *Element
}

// NewElement creates a detached element
func NewElement(tag string) *Element {
	return &Element{
		Tag:   tag,
		attrs: make(map[string]string),
		style: make(map[string]string),
	}
}

// SetAttr sets an attribute. "id" and "class" update the element's id and
// class list.
func (e *Element) SetAttr(name, value string) {
	switch name {
	case "id":
		e.ID = value
	case "class":
		e.classes = strings.Fields(value)
	default:
		e.attrs[name] = value
	}
}

// Attr returns an attribute value
func (e *Element) Attr(name string) (string, bool) {
	switch name {
	case "id":
		return e.ID, e.ID != ""
	case "class":
		return e.ClassName(), len(e.classes) > 0
	}
	v, ok := e.attrs[name]
	return v, ok
}

// RemoveAttr deletes an attribute
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// ClassName returns the class list as a space separated string
func (e *Element) ClassName() string {
	return strings.Join(e.classes, " ")
}

// HasClass reports whether the element carries class
func (e *Element) HasClass(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds class if missing
func (e *Element) AddClass(class string) {
	if !e.HasClass(class) {
		e.classes = append(e.classes, class)
	}
}

// RemoveClass drops class if present
func (e *Element) RemoveClass(class string) {
	out := e.classes[:0]
	for _, c := range e.classes {
		if c != class {
			out = append(out, c)
		}
	}
	e.classes = out
}

// SetStyle sets an inline style property
func (e *Element) SetStyle(prop, value string) {
	e.style[prop] = value
}

// Style returns an inline style property
func (e *Element) Style(prop string) string {
	return e.style[prop]
}

// AppendChild attaches child as the last child, detaching it first
func (e *Element) AppendChild(child *Element) *Element {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// RemoveChild detaches child. It reports whether child was found.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Clear removes every child and any inner markup
func (e *Element) Clear() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	e.Inner = ""
	e.Text = ""
}

// Children returns the element's children in document order
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil when detached
func (e *Element) Parent() *Element {
	return e.parent
}

// QuerySelector returns the first descendant matching sel, depth first.
// Supported selectors are compound simple selectors: tag, #id, .class and
// combinations such as "div.graph-controls" or "button.graph-btn.zoom-in".
func (e *Element) QuerySelector(sel string) *Element {
	m, err := parseSelector(sel)
	if err != nil {
		return nil
	}
	return e.find(m)
}

func (e *Element) find(m matcher) *Element {
	for _, c := range e.children {
		if m.match(c) {
			return c
		}
		if found := c.find(m); found != nil {
			return found
		}
	}
	return nil
}

// Render writes the element as HTML
func (e *Element) Render(w io.Writer) error {
	var b strings.Builder
	e.render(&b)
	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the element to a string
func (e *Element) String() string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

func (e *Element) render(b *strings.Builder) {
	b.WriteString("<")
	b.WriteString(e.Tag)
	if e.ID != "" {
		fmt.Fprintf(b, ` id="%s"`, html.EscapeString(e.ID))
	}
	if len(e.classes) > 0 {
		fmt.Fprintf(b, ` class="%s"`, html.EscapeString(e.ClassName()))
	}

	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(b, ` %s="%s"`, name, html.EscapeString(e.attrs[name]))
	}

	if len(e.style) > 0 {
		props := make([]string, 0, len(e.style))
		for p := range e.style {
			props = append(props, p)
		}
		sort.Strings(props)
		parts := make([]string, 0, len(props))
		for _, p := range props {
			parts = append(parts, p+": "+e.style[p])
		}
		fmt.Fprintf(b, ` style="%s"`, html.EscapeString(strings.Join(parts, "; ")))
	}
	b.WriteString(">")

	b.WriteString(e.Inner)
	b.WriteString(html.EscapeString(e.Text))
	for _, c := range e.children {
		c.render(b)
	}

	fmt.Fprintf(b, "</%s>", e.Tag)
}
