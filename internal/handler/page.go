package handler

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
)

//go:embed web/index.html
var pageSource string

var page = template.Must(template.New("index").Parse(pageSource))

type pageData struct {
	Title  string
	Styles template.HTML
	Widget template.HTML
}

// Page serves the viewer: the widget's current markup plus a script that
// forwards pointer input to the API and redraws on events
func (h *GraphHandler) Page(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := page.Execute(&buf, pageData{
		Title: "Notes graph",
		// both are generated by the widget with every text node escaped
		Styles: template.HTML(h.widget.Styles()),
		Widget: template.HTML(h.widget.Markup()),
	})
	if err != nil {
		h.fail(w, "Failed to render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
