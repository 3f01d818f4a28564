package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"notesgraph/internal/domain"
	"notesgraph/internal/interaction"
	"notesgraph/internal/service"
	"notesgraph/internal/widget"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodySize bounds uploaded datasets
const maxBodySize = 8 << 20

// GraphHandler handles graph API requests
type GraphHandler struct {
	svc    *service.GraphService
	widget *widget.Widget
	logger *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(svc *service.GraphService, w *widget.Widget, logger *zap.Logger) *GraphHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GraphHandler{svc: svc, widget: w, logger: logger}
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// PointRequest carries pointer coordinates in container pixels
type PointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LoadRequest names a dataset to fetch; an empty URL reloads the current
// source
type LoadRequest struct {
	URL string `json:"url"`
}

// ResizeRequest is the container's new client size
type ResizeRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Health reports liveness and the rendered graph's size
func (h *GraphHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]interface{}{
		"status":    "ok",
		"inert":     h.widget.Inert(),
		"destroyed": h.widget.Destroyed(),
		"stats":     h.widget.Stats(),
	}, http.StatusOK)
}

// SVG returns the current scene as a standalone SVG document
func (h *GraphHandler) SVG(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.widget.WriteSVG(&buf); err != nil {
		h.fail(w, "Failed to render graph", err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(buf.Bytes())
}

// GetGraph exports the displayed dataset; ?format=yaml selects YAML
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")

	var buf bytes.Buffer
	if err := h.svc.Export(&buf, format); err != nil {
		h.writeError(w, "Failed to export graph", err.Error(), http.StatusBadRequest)
		return
	}

	contentType := "application/json"
	if format == "yaml" || format == "yml" {
		contentType = "application/x-yaml"
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(buf.Bytes())
}

// PutGraph replaces the displayed dataset with the request body, JSON or
// YAML by Content-Type
func (h *GraphHandler) PutGraph(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Import(http.MaxBytesReader(w, r.Body, maxBodySize), bodyFormat(r))
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			// anything unclassified here is an unparseable body
			status = http.StatusBadRequest
		}
		h.writeError(w, "Failed to set graph data", err.Error(), status)
		return
	}

	h.writeJSON(w, stats, http.StatusOK)
}

// LoadGraph fetches a dataset by URL or path and displays it
func (h *GraphHandler) LoadGraph(w http.ResponseWriter, r *http.Request) {
	var req LoadRequest
	if !h.decode(w, r, &req) {
		return
	}

	var err error
	if req.URL == "" {
		err = h.svc.Reload(r.Context())
	} else {
		err = h.svc.Load(r.Context(), req.URL)
	}
	if err != nil {
		h.fail(w, "Failed to load graph", err)
		return
	}

	h.writeJSON(w, map[string]interface{}{
		"source": h.svc.Source(),
		"stats":  h.widget.Stats(),
	}, http.StatusOK)
}

// GetScene returns the widget snapshot
func (h *GraphHandler) GetScene(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.widget.Snapshot(), http.StatusOK)
}

// HoverEnter highlights a node's neighbourhood and shows its tooltip
func (h *GraphHandler) HoverEnter(w http.ResponseWriter, r *http.Request) {
	var req PointRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.pointer(w, h.widget.HoverEnter(chi.URLParam(r, "id"), req.X, req.Y))
}

// HoverLeave clears the hover state
func (h *GraphHandler) HoverLeave(w http.ResponseWriter, r *http.Request) {
	h.pointer(w, h.widget.HoverLeave(chi.URLParam(r, "id")))
}

// Click dispatches a click; the response names the navigated href, if any
func (h *GraphHandler) Click(w http.ResponseWriter, r *http.Request) {
	var ev interaction.Event
	if !h.decode(w, r, &ev) {
		return
	}

	href, err := h.widget.Click(chi.URLParam(r, "id"), ev)
	if err != nil {
		h.fail(w, "Click failed", err)
		return
	}

	h.writeJSON(w, map[string]string{"href": href}, http.StatusOK)
}

// DragStart pins a node
func (h *GraphHandler) DragStart(w http.ResponseWriter, r *http.Request) {
	h.pointer(w, h.widget.DragStart(chi.URLParam(r, "id")))
}

// DragMove moves a pinned node
func (h *GraphHandler) DragMove(w http.ResponseWriter, r *http.Request) {
	var req PointRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.pointer(w, h.widget.DragMove(chi.URLParam(r, "id"), req.X, req.Y))
}

// DragEnd releases a pinned node
func (h *GraphHandler) DragEnd(w http.ResponseWriter, r *http.Request) {
	h.pointer(w, h.widget.DragEnd(chi.URLParam(r, "id")))
}

// ZoomIn scales the view up about its centre
func (h *GraphHandler) ZoomIn(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]interface{}{"transform": h.widget.ZoomIn()}, http.StatusOK)
}

// ZoomOut scales the view down about its centre
func (h *GraphHandler) ZoomOut(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]interface{}{"transform": h.widget.ZoomOut()}, http.StatusOK)
}

// ResetZoom returns the view to identity
func (h *GraphHandler) ResetZoom(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]interface{}{"transform": h.widget.ResetZoom()}, http.StatusOK)
}

// Fit frames the graph; fitted is false when there was nothing to frame
func (h *GraphHandler) Fit(w http.ResponseWriter, r *http.Request) {
	tr, ok := h.widget.FitToContent()
	h.writeJSON(w, map[string]interface{}{"transform": tr, "fitted": ok}, http.StatusOK)
}

// Resize sets the container size and dispatches a resize
func (h *GraphHandler) Resize(w http.ResponseWriter, r *http.Request) {
	var req ResizeRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Width <= 0 || req.Height <= 0 {
		h.writeError(w, "Invalid size", "width and height must be positive", http.StatusBadRequest)
		return
	}

	h.widget.Resize(req.Width, req.Height)
	h.writeJSON(w, h.widget.Snapshot().Size, http.StatusOK)
}

// ToggleTheme flips between dark and light
func (h *GraphHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]interface{}{"theme": h.widget.ToggleTheme()}, http.StatusOK)
}

// Helper methods

func (h *GraphHandler) pointer(w http.ResponseWriter, err error) {
	if err != nil {
		h.fail(w, "Pointer event failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decode reads an optional JSON body into v. An empty body leaves v zero.
func (h *GraphHandler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// fail maps a domain error to its status code
func (h *GraphHandler) fail(w http.ResponseWriter, msg string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(msg, zap.Error(err))
	}
	h.writeError(w, msg, err.Error(), status)
}

func statusFor(err error) int {
	var loadErr *domain.LoadError
	switch {
	case errors.Is(err, domain.ErrNodeNotFound):
		return http.StatusNotFound
	case domain.IsMalformed(err), errors.Is(err, service.ErrNoSource):
		return http.StatusBadRequest
	case errors.Is(err, widget.ErrDestroyed):
		return http.StatusGone
	case errors.Is(err, domain.ErrContainerNotFound):
		return http.StatusServiceUnavailable
	case errors.As(err, &loadErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func bodyFormat(r *http.Request) string {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && strings.Contains(mediaType, "yaml") {
		return "yaml"
	}
	return "json"
}

func (h *GraphHandler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("failed to encode JSON", zap.Error(err))
	}
}

func (h *GraphHandler) writeError(w http.ResponseWriter, error, details string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   error,
		Details: details,
	}); err != nil {
		h.logger.Warn("failed to encode error response", zap.Error(err))
	}
}
