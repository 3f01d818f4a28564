package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"notesgraph/internal/dom"
	"notesgraph/internal/domain"
	"notesgraph/internal/metrics"
	"notesgraph/internal/service"
	"notesgraph/internal/widget"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const dataset = `{
  "nodes": [
    {"id": "a", "title": "Alpha", "url": "/notes/a"},
    {"id": "b", "title": "Beta"},
    {"id": "c"}
  ],
  "links": [
    {"source": "a", "target": "b"},
    {"source": "b", "target": "c"},
    {"source": "c", "target": "ghost"}
  ]
}`

type fixture struct {
	server *httptest.Server
	widget *widget.Widget
	doc    *dom.Document
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zaptest.NewLogger(t)

	doc := dom.NewDocument()
	container := dom.NewElement("div")
	container.SetAttr("id", "graph")
	doc.Body().AppendChild(container)

	opts := widget.DefaultOptions()
	opts.FitDelay = time.Hour
	opts.BaseURL = "https://notes.example"

	reg := metrics.NewRegistry()
	bus := service.NewEventBus()
	w := widget.New(doc, "#graph", opts, logger, widget.WithPublisher(bus), widget.WithMetrics(reg))
	t.Cleanup(w.Destroy)

	svc := service.NewGraphService(w, bus, logger)
	router := NewRouter(RouterConfig{
		Graph:   NewGraphHandler(svc, w, logger),
		Metrics: reg,
		Logger:  logger,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &fixture{server: srv, widget: w, doc: doc}
}

func (f *fixture) do(t *testing.T, method, path, contentType, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, f.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestGraphEndpoints(t *testing.T) {
	f := newFixture(t)

	t.Run("put replaces the dataset", func(t *testing.T) {
		resp := f.do(t, http.MethodPut, "/api/graph", "application/json", dataset)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var stats domain.Stats
		decode(t, resp, &stats)
		assert.Equal(t, 3, stats.Nodes)
		assert.Equal(t, 2, stats.Links)
		assert.Equal(t, 1, stats.DroppedLinks)
	})

	t.Run("put yaml", func(t *testing.T) {
		resp := f.do(t, http.MethodPut, "/api/graph", "application/yaml", "nodes:\n  - id: solo\nlinks: []\n")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, f.widget.Stats().Nodes)

		resp = f.do(t, http.MethodPut, "/api/graph", "application/json", dataset)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("malformed dataset is a 400 and keeps the old one", func(t *testing.T) {
		resp := f.do(t, http.MethodPut, "/api/graph", "application/json", `{"nodes":[{"id":"x"},{"id":"x"}],"links":[]}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body ErrorResponse
		decode(t, resp, &body)
		assert.Contains(t, body.Details, "duplicate")
		assert.Equal(t, 3, f.widget.Stats().Nodes)

		resp = f.do(t, http.MethodPut, "/api/graph", "application/json", `{not json`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("get exports json and yaml", func(t *testing.T) {
		resp := f.do(t, http.MethodGet, "/api/graph", "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		resp = f.do(t, http.MethodGet, "/api/graph?format=yaml", "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/x-yaml", resp.Header.Get("Content-Type"))
	})

	t.Run("load without a source is a 400", func(t *testing.T) {
		resp := f.do(t, http.MethodPost, "/api/graph/load", "application/json", `{}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("failed fetch is a 502", func(t *testing.T) {
		upstream := httptest.NewServer(http.NotFoundHandler())
		defer upstream.Close()

		resp := f.do(t, http.MethodPost, "/api/graph/load", "application/json", `{"url":"`+upstream.URL+`/graph.json"}`)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, 3, f.widget.Stats().Nodes)
	})

	t.Run("load fetches a url", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(dataset))
		}))
		defer upstream.Close()

		resp := f.do(t, http.MethodPost, "/api/graph/load", "application/json", `{"url":"`+upstream.URL+`/graph.json"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Source string       `json:"source"`
			Stats  domain.Stats `json:"stats"`
		}
		decode(t, resp, &body)
		assert.Equal(t, upstream.URL+"/graph.json", body.Source)
		assert.Equal(t, 3, body.Stats.Nodes)

		resp = f.do(t, http.MethodPost, "/api/graph/load", "", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestPointerEndpoints(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPut, "/api/graph", "application/json", dataset).StatusCode)
	f.widget.Settle(300)

	t.Run("hover round trip", func(t *testing.T) {
		resp := f.do(t, http.MethodPost, "/api/nodes/a/hover", "application/json", `{"x":100,"y":100}`)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		var during widget.Snapshot
		decode(t, f.do(t, http.MethodGet, "/api/scene", "", ""), &during)
		assert.Equal(t, "a", during.Hovered)
		assert.True(t, during.Tooltip.Visible)
		assert.Contains(t, during.Tooltip.HTML, "Alpha")

		marks := make(map[string][2]bool)
		for _, c := range during.Nodes {
			marks[c.ID] = [2]bool{c.Highlighted, c.Dimmed}
		}
		assert.Equal(t, [2]bool{true, false}, marks["a"])
		assert.Equal(t, [2]bool{false, false}, marks["b"])
		assert.Equal(t, [2]bool{false, true}, marks["c"])

		resp = f.do(t, http.MethodDelete, "/api/nodes/a/hover", "", "")
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		var after widget.Snapshot
		decode(t, f.do(t, http.MethodGet, "/api/scene", "", ""), &after)
		assert.Empty(t, after.Hovered)
		assert.False(t, after.Tooltip.Visible)
		for _, c := range after.Nodes {
			assert.False(t, c.Highlighted, c.ID)
			assert.False(t, c.Dimmed, c.ID)
		}
		for _, l := range after.Links {
			assert.False(t, l.Highlighted, l.Key)
			assert.False(t, l.Dimmed, l.Key)
		}
		for _, lbl := range after.Labels {
			assert.False(t, lbl.Dimmed, lbl.ID)
		}
	})

	t.Run("unknown node is a 404", func(t *testing.T) {
		resp := f.do(t, http.MethodPost, "/api/nodes/nope/hover", "application/json", `{}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body ErrorResponse
		decode(t, resp, &body)
		assert.Equal(t, "Pointer event failed", body.Error)
	})

	t.Run("click navigates", func(t *testing.T) {
		resp := f.do(t, http.MethodPost, "/api/nodes/a/click", "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		decode(t, resp, &body)
		assert.Equal(t, "https://notes.example/notes/a", body["href"])
		assert.Equal(t, body["href"], f.doc.Location())
	})

	t.Run("drag lifecycle", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodPost, "/api/nodes/b/drag/start", "", "").StatusCode)
		assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodPost, "/api/nodes/b/drag/move", "application/json", `{"x":10,"y":20}`).StatusCode)

		var scene widget.Snapshot
		decode(t, f.do(t, http.MethodGet, "/api/scene", "", ""), &scene)
		assert.Equal(t, "b", scene.Dragging)

		assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodPost, "/api/nodes/b/drag/end", "", "").StatusCode)
	})

	t.Run("bad body is a 400", func(t *testing.T) {
		resp := f.do(t, http.MethodPost, "/api/nodes/a/drag/move", "application/json", `{"x":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestViewportEndpoints(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPut, "/api/graph", "application/json", dataset).StatusCode)

	var body struct {
		Transform struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
			K float64 `json:"k"`
		} `json:"transform"`
		Theme string `json:"theme"`
	}

	decode(t, f.do(t, http.MethodPost, "/api/viewport/zoom-in", "", ""), &body)
	assert.InDelta(t, 1.3, body.Transform.K, 1e-9)

	decode(t, f.do(t, http.MethodPost, "/api/viewport/reset", "", ""), &body)
	assert.InDelta(t, 1.0, body.Transform.K, 1e-9)
	assert.Zero(t, body.Transform.X)

	decode(t, f.do(t, http.MethodPost, "/api/theme/toggle", "", ""), &body)
	assert.Equal(t, "light", body.Theme)

	resp := f.do(t, http.MethodPost, "/api/viewport/resize", "application/json", `{"width":400,"height":300}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 400.0, f.widget.Snapshot().Size.Width)

	resp = f.do(t, http.MethodPost, "/api/viewport/resize", "application/json", `{"width":0,"height":300}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPageAndOutputs(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPut, "/api/graph", "application/json", dataset).StatusCode)

	resp := f.do(t, http.MethodGet, "/graph.svg", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))

	resp = f.do(t, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(page), `id="notes-graph-styles"`)
	assert.Contains(t, string(page), `class="graph-controls"`)

	resp = f.do(t, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	metricsBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(metricsBody), "notesgraph_http_requests_total")
}

func TestDestroyedWidget(t *testing.T) {
	f := newFixture(t)
	f.widget.Destroy()

	resp := f.do(t, http.MethodPut, "/api/graph", "application/json", dataset)
	assert.Equal(t, http.StatusGone, resp.StatusCode)
}
