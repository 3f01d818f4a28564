// Package widget is the NotesGraph facade. It binds a container element to
// a dataset and coordinates the loader, scene, physics simulation,
// interaction controller, viewport and theme.
//
// Every operation on a Widget goes through one mutex: HTTP handlers, the
// animation loop and the fit timer never interleave, so a new dataset's
// primitives fully replace the old ones before the next tick runs.
package widget

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"notesgraph/internal/dom"
	"notesgraph/internal/domain"
	"notesgraph/internal/interaction"
	"notesgraph/internal/loader"
	"notesgraph/internal/metrics"
	"notesgraph/internal/physics"
	"notesgraph/internal/scene"
	"notesgraph/internal/service"
	"notesgraph/internal/theme"
	"notesgraph/internal/viewport"

	"go.uber.org/zap"
)

// ResizeAlpha is the energy a resize gives the simulation
const ResizeAlpha = 0.3

// Control button names, also their CSS classes
const (
	ControlZoomIn      = "zoom-in"
	ControlZoomOut     = "zoom-out"
	ControlZoomReset   = "zoom-reset"
	ControlToggleTheme = "toggle-theme"
)

var controlButtons = []struct {
	name  string
	title string
	text  string
}{
	{ControlZoomIn, "Zoom In", "+"},
	{ControlZoomOut, "Zoom Out", "−"},
	{ControlZoomReset, "Reset View", "⟲"},
	{ControlToggleTheme, "Toggle Theme", "◐"},
}

var (
	// ErrDestroyed is returned by loads on a torn down widget
	ErrDestroyed = errors.New("widget destroyed")

	// ErrUnknownControl is returned by Press for a missing button
	ErrUnknownControl = errors.New("unknown control")
)

// Publisher receives widget events
type Publisher interface {
	Publish(event service.Event)
}

// Option customises a widget's collaborators
type Option func(*Widget)

// WithPublisher sends events to p
func WithPublisher(p Publisher) Option {
	return func(w *Widget) { w.publisher = p }
}

// WithLoader replaces the default loader
func WithLoader(l *loader.Loader) Option {
	return func(w *Widget) { w.loader = l }
}

// WithMetrics records renders, loads and ticks in m
func WithMetrics(m *metrics.Registry) Option {
	return func(w *Widget) { w.metrics = m }
}

// WithClock replaces the time source used for viewport transitions
func WithClock(now func() time.Time) Option {
	return func(w *Widget) { w.now = now }
}

// Widget is one graph view bound to a container
type Widget struct {
	mu sync.Mutex

	doc       *dom.Document
	selector  string
	container *dom.Element
	controls  *dom.Element
	svg       *dom.Element
	tooltip   *interaction.Tooltip

	opts      Options
	logger    *zap.Logger
	loader    *loader.Loader
	publisher Publisher
	metrics   *metrics.Registry
	now       func() time.Time

	dataset *domain.Dataset
	scene   *scene.Scene
	sim     *physics.Simulation
	ctrl    *interaction.Controller
	view    *viewport.Controller

	fitTimer     *time.Timer
	resizeHandle int
	generation   uint64
	renders      uint64
	inert        bool
	destroyed    bool

	wake chan struct{}
	done chan struct{}
}

// New binds a widget to the element sel resolves to. When nothing matches,
// the failure is logged and the returned widget is inert: every operation
// is a no-op.
func New(doc *dom.Document, sel string, opts Options, logger *zap.Logger, options ...Option) *Widget {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Widget{
		doc:      doc,
		selector: sel,
		opts:     opts.withDefaults(),
		logger:   logger.With(zap.String("container", sel)),
		now:      time.Now,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	for _, opt := range options {
		opt(w)
	}
	if w.loader == nil {
		w.loader = loader.New(nil, w.logger)
	}

	w.container = doc.QuerySelector(sel)
	if w.container == nil {
		w.inert = true
		w.logger.Error("graph widget is inert", zap.Error(domain.ErrContainerNotFound))
		return w
	}

	w.createDOM()
	theme.Inject(doc)

	w.view = viewport.New(w.containerSize())
	w.view.SetClock(w.now)
	w.scene = scene.New(w.opts.sceneOptions())

	var nav interaction.Navigator
	if w.opts.Sink == nil {
		nav = doc
	}
	w.ctrl = interaction.New(interaction.Config{
		Scene:     w.scene,
		Tooltip:   w.tooltip,
		Sink:      w.opts.Sink,
		Navigator: nav,
		BaseURL:   w.opts.BaseURL,
	})

	w.resizeHandle = doc.AddResizeListener(w.handleResize)
	w.dataset = domain.NewDataset()
	return w
}

// createDOM fills the container with, in order, the control buttons, the
// tooltip and the svg root
func (w *Widget) createDOM() {
	w.container.SetStyle("position", "relative")
	w.container.Clear()

	if w.opts.Controls() {
		w.controls = dom.NewElement("div")
		w.controls.SetAttr("class", "graph-controls")
		for _, b := range controlButtons {
			btn := dom.NewElement("button")
			btn.SetAttr("class", "graph-btn "+b.name)
			btn.SetAttr("title", b.title)
			btn.Text = b.text
			w.controls.AppendChild(btn)
		}
		w.container.AppendChild(w.controls)
	}

	w.tooltip = interaction.NewTooltip(w.container.AppendChild(dom.NewElement("div")))

	w.svg = dom.NewElement("svg")
	w.svg.SetAttr("class", "graph-svg")
	w.svg.SetAttr("xmlns", "http://www.w3.org/2000/svg")
	w.container.AppendChild(w.svg)
	w.sizeSVG(w.containerSize())
}

func (w *Widget) sizeSVG(size viewport.Size) {
	w.svg.SetAttr("width", num(size.Width))
	w.svg.SetAttr("height", num(size.Height))
}

func (w *Widget) containerSize() viewport.Size {
	width, height := w.container.Width, w.container.Height
	if width <= 0 {
		width = dom.DefaultWidth
	}
	if height <= 0 {
		height = dom.DefaultHeight
	}
	return viewport.Size{Width: width, Height: height}
}

// Inert reports whether the container was missing at construction
func (w *Widget) Inert() bool {
	return w.inert
}

func (w *Widget) live() bool {
	return !w.inert && !w.destroyed
}

func (w *Widget) publish(kind service.EventType, payload interface{}) {
	if w.publisher == nil {
		return
	}
	w.publisher.Publish(service.Event{Type: kind, Payload: payload})
}

// signal wakes the animation loop
func (w *Widget) signal() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// LoadData fetches a dataset and renders it. Failures are logged and the
// previous dataset stays on screen.
func (w *Widget) LoadData(ctx context.Context, source string) {
	_ = w.Load(ctx, source)
}

// Load is LoadData with the failure returned as well as logged. The fetch
// runs outside the widget lock; concurrent loads race and the last one to
// resolve wins.
func (w *Widget) Load(ctx context.Context, source string) error {
	if w.inert {
		return domain.ErrContainerNotFound
	}

	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return ErrDestroyed
	}
	w.generation++
	gen := w.generation
	w.mu.Unlock()

	ds, err := w.loader.Load(ctx, source)
	w.metrics.RecordLoad(err)
	if err != nil {
		w.logger.Error("error loading graph data",
			zap.String("source", source),
			zap.Uint64("generation", gen),
			zap.Error(err))
		w.publish(service.EventLoadFailed, map[string]interface{}{
			"source": source,
			"error":  err.Error(),
		})
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return ErrDestroyed
	}
	if gen != w.generation {
		w.logger.Warn("applying superseded load",
			zap.String("source", source),
			zap.Uint64("generation", gen),
			zap.Uint64("latest", w.generation))
	}
	w.applyLocked(ds, source, gen)
	return nil
}

// SetData renders ds, replacing the current dataset wholesale. An invalid
// dataset is logged and ignored.
func (w *Widget) SetData(ds *domain.Dataset) {
	_ = w.Apply(ds)
}

// Apply is SetData with the validation failure returned as well as logged.
// The widget renders a copy; ds itself is not mutated.
func (w *Widget) Apply(ds *domain.Dataset) error {
	if w.inert {
		return domain.ErrContainerNotFound
	}
	if err := domain.Validate(ds); err != nil {
		w.metrics.RecordLoad(err)
		w.logger.Error("rejected graph data", zap.Error(err))
		w.publish(service.EventLoadFailed, map[string]interface{}{
			"source": "inline",
			"error":  err.Error(),
		})
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return ErrDestroyed
	}
	w.metrics.RecordLoad(nil)
	w.generation++
	w.applyLocked(ds.Clone(), "inline", w.generation)
	return nil
}

func (w *Widget) applyLocked(ds *domain.Dataset, source string, gen uint64) {
	w.dataset = ds
	stats := w.renderLocked()

	w.logger.Info("graph data loaded",
		zap.String("source", source),
		zap.Uint64("generation", gen),
		zap.Int("nodes", stats.Nodes),
		zap.Int("links", stats.Links),
		zap.Int("dropped_links", stats.DroppedLinks))
	w.publish(service.EventDatasetLoaded, map[string]interface{}{
		"source":     source,
		"generation": gen,
		"stats":      stats,
	})
}

// renderLocked tears down the previous scene and simulation and builds new
// ones from the current dataset
func (w *Widget) renderLocked() domain.Stats {
	if w.sim != nil {
		w.sim.Stop()
	}
	w.stopFitLocked()
	w.ctrl.Reset()

	graph := domain.DeriveGraph(w.dataset)
	if graph.Dropped > 0 {
		w.logger.Debug("dropped dangling links", zap.Int("count", graph.Dropped))
	}
	w.scene.Build(graph, theme.Current(w.container).Palette().Node)

	center := w.view.Size().Center()
	sim := physics.New(graph.Nodes, graph.Links, physics.Config{
		LinkDistance:    w.opts.LinkDistance,
		ChargeStrength:  w.opts.ChargeStrength,
		CenterX:         center.X,
		CenterY:         center.Y,
		CollisionRadius: w.scene.CollisionRadius,
		Seed:            w.opts.Seed,
	})
	sim.OnTick(w.onTickLocked)
	w.sim = sim
	w.ctrl.SetSimulation(sim)
	w.scene.Update()
	w.renders++

	stats := graph.Stats()
	w.metrics.RecordRender(stats)

	if len(graph.Nodes) > 0 && w.opts.FitDelay > 0 {
		w.scheduleFitLocked()
	}
	w.signal()
	return stats
}

// onTickLocked runs inside Simulation.Step, with the widget lock held
func (w *Widget) onTickLocked() {
	w.scene.Update()
	w.metrics.RecordTick(w.sim.Alpha())
	w.publish(service.EventTick, TickInfo{Ticks: w.sim.Ticks(), Alpha: w.sim.Alpha()})
}

// TickInfo is the payload of tick and settled events
type TickInfo struct {
	Ticks int     `json:"ticks"`
	Alpha float64 `json:"alpha"`
}

func (w *Widget) scheduleFitLocked() {
	render := w.renders
	w.fitTimer = time.AfterFunc(w.opts.FitDelay, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if !w.live() || render != w.renders {
			return
		}
		w.fitTimer = nil
		w.fitLocked()
	})
}

func (w *Widget) stopFitLocked() {
	if w.fitTimer != nil {
		w.fitTimer.Stop()
		w.fitTimer = nil
	}
}

func (w *Widget) fitLocked() bool {
	tr, ok := w.view.Fit(w.scene.Bounds(), w.scene.CenterExtent())
	if !ok {
		w.logger.Debug("fit skipped, bounds are degenerate")
		return false
	}
	w.publish(service.EventViewportChanged, tr)
	return true
}

// Run drives the simulation until ctx is done or the widget is destroyed.
// While the simulation is hot it ticks every TickInterval; once it cools
// the loop sleeps until a render, drag or resize restarts it.
func (w *Widget) Run(ctx context.Context) error {
	if w.inert {
		return nil
	}

	ticker := time.NewTicker(w.opts.TickInterval)
	defer ticker.Stop()

	for {
		if w.step() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-w.done:
				return nil
			case <-ticker.C:
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case <-w.wake:
		}
	}
}

// step runs one simulation tick and reports whether the simulation is
// still hot
func (w *Widget) step() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.live() || w.sim == nil {
		return false
	}
	if !w.sim.Step() {
		return false
	}
	if !w.sim.Running() {
		w.publish(service.EventSettled, TickInfo{Ticks: w.sim.Ticks(), Alpha: w.sim.Alpha()})
		return false
	}
	return true
}

// Advance runs up to n ticks synchronously and returns how many ran
func (w *Widget) Advance(n int) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.live() || w.sim == nil {
		return 0
	}
	ran := 0
	for ran < n && w.sim.Step() {
		ran++
	}
	return ran
}

// Settle ticks until the simulation cools or max ticks have run
func (w *Widget) Settle(max int) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.live() || w.sim == nil {
		return 0
	}
	ran := 0
	for ran < max && w.sim.Running() {
		w.sim.Step()
		ran++
	}
	return ran
}

func (w *Widget) handleResize() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.live() {
		return
	}

	size := w.containerSize()
	w.view.Resize(size)
	w.sizeSVG(size)

	if w.sim != nil {
		c := size.Center()
		w.sim.SetCenter(c.X, c.Y)
		w.sim.SetAlpha(ResizeAlpha)
		w.sim.Restart()
		w.signal()
	}
	w.publish(service.EventViewportChanged, map[string]interface{}{"size": size})
}

// Resize sets the container's client size and dispatches a window resize
func (w *Widget) Resize(width, height float64) {
	w.mu.Lock()
	if !w.live() {
		w.mu.Unlock()
		return
	}
	w.container.Width = width
	w.container.Height = height
	w.mu.Unlock()

	w.doc.DispatchResize()
}

// Destroy stops the simulation and the fit timer, removes the resize
// listener and clears every rendered primitive. It is safe to call twice.
func (w *Widget) Destroy() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.live() {
		return
	}
	w.destroyed = true

	if w.sim != nil {
		w.sim.Stop()
	}
	w.stopFitLocked()
	w.doc.RemoveResizeListener(w.resizeHandle)
	w.ctrl.Reset()
	w.scene.Clear()
	w.svg.Clear()
	close(w.done)

	w.logger.Info("graph widget destroyed")
	w.publish(service.EventDestroyed, nil)
}

// Destroyed reports whether Destroy has run
func (w *Widget) Destroyed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}

// Dataset returns a copy of the current dataset without simulation state
func (w *Widget) Dataset() *domain.Dataset {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dataset == nil {
		return domain.NewDataset()
	}
	return w.dataset.Clone()
}

// Stats summarises the rendered graph
func (w *Widget) Stats() domain.Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.scene == nil {
		return domain.Stats{}
	}
	return w.scene.Graph().Stats()
}

// WriteSVG writes the current scene as a standalone SVG document
func (w *Widget) WriteSVG(out io.Writer) error {
	var buf bytes.Buffer

	w.mu.Lock()
	if w.inert {
		w.mu.Unlock()
		return domain.ErrContainerNotFound
	}
	err := w.scene.WriteSVG(&buf, w.view.Current(), w.view.Size(), theme.Current(w.container).Palette())
	w.mu.Unlock()
	if err != nil {
		return err
	}

	_, err = out.Write(buf.Bytes())
	return err
}

// Markup renders the container, with the scene inside its svg root, as
// HTML
func (w *Widget) Markup() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inert {
		return ""
	}
	w.svg.Inner = w.scene.Groups(w.view.Current(), theme.Current(w.container).Palette())
	return w.container.String()
}

// Styles renders the stylesheet injected into the document head
func (w *Widget) Styles() string {
	if w.inert {
		return ""
	}
	if el := w.doc.HeadElement(theme.StyleID); el != nil {
		return el.String()
	}
	return ""
}
