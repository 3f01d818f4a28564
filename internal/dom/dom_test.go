package dom

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree() (*Document, *Element) {
	doc := NewDocument()
	container := NewElement("div")
	container.ID = "graph-container"
	doc.Body().AppendChild(container)

	controls := NewElement("div")
	controls.SetAttr("class", "graph-controls")
	container.AppendChild(controls)
	for _, name := range []string{"zoom-in", "zoom-out"} {
		btn := NewElement("button")
		btn.SetAttr("class", "graph-btn "+name)
		controls.AppendChild(btn)
	}
	return doc, container
}

func TestQuerySelector(t *testing.T) {
	doc, container := buildTree()

	tests := []struct {
		sel   string
		found bool
	}{
		{"#graph-container", true},
		{"div#graph-container", true},
		{".graph-controls", true},
		{"button.zoom-out", true},
		{".graph-btn.zoom-in", true},
		{"span", false},
		{"#missing", false},
		{"div > button", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.sel, func(t *testing.T) {
			got := doc.QuerySelector(tt.sel)
			assert.Equal(t, tt.found, got != nil)
		})
	}

	assert.Same(t, container, doc.QuerySelector("#graph-container"))
	assert.Same(t, doc.Body(), doc.QuerySelector("body"))
}

func TestElementClasses(t *testing.T) {
	el := NewElement("div")
	el.SetAttr("class", "graph-tooltip hidden")

	assert.True(t, el.HasClass("hidden"))
	el.RemoveClass("hidden")
	assert.False(t, el.HasClass("hidden"))
	el.AddClass("hidden")
	el.AddClass("hidden")
	assert.Equal(t, "graph-tooltip hidden", el.ClassName())
}

func TestElementTree(t *testing.T) {
	parent := NewElement("div")
	other := NewElement("div")
	child := NewElement("span")

	parent.AppendChild(child)
	other.AppendChild(child)

	assert.Empty(t, parent.Children())
	assert.Same(t, other, child.Parent())

	other.Clear()
	assert.Empty(t, other.Children())
	assert.Nil(t, child.Parent())
}

func TestElementRender(t *testing.T) {
	el := NewElement("div")
	el.SetAttr("class", "graph-tooltip")
	el.SetAttr("data-theme", "dark")
	el.SetStyle("top", "10px")
	el.SetStyle("left", "5px")
	el.Text = "<b>"

	out := el.String()
	assert.Equal(t, `<div class="graph-tooltip" data-theme="dark" style="left: 5px; top: 10px">&lt;b&gt;</div>`, out)
}

func TestEnsureHead(t *testing.T) {
	doc := NewDocument()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc.EnsureHead("notes-graph-styles", func() *Element {
				return NewElement("style")
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, doc.HeadCount("notes-graph-styles"))
	require.NotNil(t, doc.HeadElement("notes-graph-styles"))
}

func TestResizeListeners(t *testing.T) {
	doc := NewDocument()
	calls := 0
	h := doc.AddResizeListener(func() { calls++ })

	doc.DispatchResize()
	assert.Equal(t, 1, calls)

	doc.RemoveResizeListener(h)
	doc.DispatchResize()
	assert.Equal(t, 1, calls)
	assert.Zero(t, doc.ResizeListeners())
}

func TestLocation(t *testing.T) {
	doc := NewDocument()
	doc.Navigate("/notes/go")
	assert.True(t, strings.HasSuffix(doc.Location(), "/notes/go"))
}
