package dom

import (
	"sync"
)

// DefaultWidth and DefaultHeight size a new document's body
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Document holds the head, the body, window resize listeners and the
// current location. Head, listeners and location are guarded by the
// document lock; body subtrees belong to whoever created them.
type Document struct {
	mu        sync.Mutex
	head      *Element
	body      *Element
	listeners map[int]func()
	nextID    int
	location  string
}

// NewDocument creates an empty document
func NewDocument() *Document {
	body := NewElement("body")
	body.Width = DefaultWidth
	body.Height = DefaultHeight
	return &Document{
		head:      NewElement("head"),
		body:      body,
		listeners: make(map[int]func()),
	}
}

// Body returns the body element
func (d *Document) Body() *Element {
	return d.body
}

// QuerySelector searches the body
func (d *Document) QuerySelector(sel string) *Element {
	if m, err := parseSelector(sel); err == nil && m.match(d.body) {
		return d.body
	}
	return d.body.QuerySelector(sel)
}

// HeadElement returns the head child with the given id
func (d *Document) HeadElement(id string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.head.QuerySelector("#" + id)
}

// EnsureHead appends the element built by create to the head unless an
// element with id is already there. It reports whether it appended.
func (d *Document) EnsureHead(id string, create func() *Element) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.head.QuerySelector("#"+id) != nil {
		return false
	}
	el := create()
	el.ID = id
	d.head.AppendChild(el)
	return true
}

// HeadCount returns how many head elements carry id
func (d *Document) HeadCount(id string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for _, c := range d.head.Children() {
		if c.ID == id {
			n++
		}
	}
	return n
}

// AddResizeListener registers fn for window resizes and returns a handle
// for RemoveResizeListener
func (d *Document) AddResizeListener(fn func()) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	d.listeners[d.nextID] = fn
	return d.nextID
}

// RemoveResizeListener unregisters a listener. Unknown handles are ignored.
func (d *Document) RemoveResizeListener(handle int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.listeners, handle)
}

// ResizeListeners returns how many listeners are registered
func (d *Document) ResizeListeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

// DispatchResize notifies every resize listener. Listeners run outside the
// document lock.
func (d *Document) DispatchResize() {
	d.mu.Lock()
	fns := make([]func(), 0, len(d.listeners))
	for _, fn := range d.listeners {
		fns = append(fns, fn)
	}
	d.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Navigate sets the current location
func (d *Document) Navigate(href string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.location = href
}

// Location returns the current location
func (d *Document) Location() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.location
}
