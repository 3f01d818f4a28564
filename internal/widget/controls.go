package widget

import (
	"fmt"
	"strconv"

	"notesgraph/internal/domain"
	"notesgraph/internal/interaction"
	"notesgraph/internal/scene"
	"notesgraph/internal/service"
	"notesgraph/internal/theme"
	"notesgraph/internal/viewport"

	"go.uber.org/zap"
)

// ZoomIn scales the view by 1.3 about the viewport centre
func (w *Widget) ZoomIn() viewport.Transform {
	return w.zoom(func(v *viewport.Controller) viewport.Transition { return v.ZoomIn() })
}

// ZoomOut scales the view by 0.7 about the viewport centre
func (w *Widget) ZoomOut() viewport.Transform {
	return w.zoom(func(v *viewport.Controller) viewport.Transition { return v.ZoomOut() })
}

// ResetZoom animates back to the identity transform
func (w *Widget) ResetZoom() viewport.Transform {
	return w.zoom(func(v *viewport.Controller) viewport.Transition { return v.Reset() })
}

// Pan moves the view by dx, dy screen pixels
func (w *Widget) Pan(dx, dy float64) viewport.Transform {
	return w.zoom(func(v *viewport.Controller) viewport.Transition { return v.Pan(dx, dy) })
}

func (w *Widget) zoom(op func(*viewport.Controller) viewport.Transition) viewport.Transform {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.live() {
		return viewport.Identity
	}
	tr := op(w.view)
	w.publish(service.EventViewportChanged, tr.To)
	return tr.To
}

// FitToContent frames every node in 80% of the viewport. It reports false,
// leaving the view alone, when the graph is empty or has a single node.
func (w *Widget) FitToContent() (viewport.Transform, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.live() {
		return viewport.Identity, false
	}
	ok := w.fitLocked()
	return w.view.Transform(), ok
}

// Transform returns the displayed and target view transforms
func (w *Widget) Transform() (current, target viewport.Transform) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inert {
		return viewport.Identity, viewport.Identity
	}
	return w.view.Current(), w.view.Transform()
}

// Theme returns the container's current theme
func (w *Widget) Theme() theme.Theme {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inert {
		return theme.Dark
	}
	return theme.Current(w.container)
}

// ToggleTheme flips the container between dark and light. Node colours
// without an explicit colour follow the theme; layout is untouched.
func (w *Widget) ToggleTheme() theme.Theme {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.live() {
		return theme.Dark
	}
	next := theme.Toggle(w.container)
	w.scene.Recolor(next.Palette().Node)
	w.logger.Debug("theme toggled", zap.String("theme", string(next)))
	w.publish(service.EventThemeChanged, next)
	return next
}

// Press activates a control button by name, as a click on it would
func (w *Widget) Press(control string) error {
	w.mu.Lock()
	present := w.live() && w.controls != nil &&
		w.controls.QuerySelector("button."+control) != nil
	w.mu.Unlock()
	if !present {
		return fmt.Errorf("%w: %s", ErrUnknownControl, control)
	}

	switch control {
	case ControlZoomIn:
		w.ZoomIn()
	case ControlZoomOut:
		w.ZoomOut()
	case ControlZoomReset:
		w.ResetZoom()
	case ControlToggleTheme:
		w.ToggleTheme()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownControl, control)
	}
	return nil
}

// HoverEnter highlights id and its neighbourhood and shows the tooltip at
// x, y in container pixels
func (w *Widget) HoverEnter(id string, x, y float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.live() {
		return nil
	}
	if err := w.ctrl.HoverEnter(id, viewport.Point{X: x, Y: y}, w.view.Size()); err != nil {
		return err
	}
	w.publish(service.EventHover, map[string]interface{}{"id": id, "entered": true})
	return nil
}

// HoverLeave clears every hover mark and hides the tooltip
func (w *Widget) HoverLeave(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.live() {
		return nil
	}
	if err := w.ctrl.HoverLeave(id); err != nil {
		return err
	}
	w.publish(service.EventHover, map[string]interface{}{"id": id, "entered": false})
	return nil
}

// Click dispatches a click on id. It returns the href navigated to, empty
// when the click went to the sink or the node has no URL.
func (w *Widget) Click(id string, ev interaction.Event) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.live() {
		return "", nil
	}
	href, err := w.ctrl.Click(id, ev)
	if err != nil {
		return "", err
	}
	if href != "" {
		w.logger.Debug("navigating", zap.String("id", id), zap.String("href", href))
		w.publish(service.EventNavigate, map[string]interface{}{"id": id, "href": href})
	}
	return href, nil
}

// DragStart pins id at its position and reheats the simulation
func (w *Widget) DragStart(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.live() {
		return nil
	}
	if err := w.ctrl.DragStart(id); err != nil {
		return err
	}
	w.signal()
	return nil
}

// DragMove moves the pinned node to x, y in container pixels
func (w *Widget) DragMove(id string, x, y float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.live() {
		return nil
	}
	p := w.view.Current().Invert(viewport.Point{X: x, Y: y})
	return w.ctrl.DragMove(id, p)
}

// DragEnd hands id back to the simulation
func (w *Widget) DragEnd(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.live() {
		return nil
	}
	return w.ctrl.DragEnd(id)
}

// Snapshot is a consistent copy of the widget's visible state
type Snapshot struct {
	Generation uint64                   `json:"generation"`
	Inert      bool                     `json:"inert"`
	Destroyed  bool                     `json:"destroyed"`
	Theme      theme.Theme              `json:"theme"`
	Size       viewport.Size            `json:"size"`
	Current    viewport.Transform       `json:"transform"`
	Target     viewport.Transform       `json:"target"`
	Animating  bool                     `json:"animating"`
	Alpha      float64                  `json:"alpha"`
	Running    bool                     `json:"running"`
	Ticks      int                      `json:"ticks"`
	Hovered    string                   `json:"hovered,omitempty"`
	Dragging   string                   `json:"dragging,omitempty"`
	Tooltip    interaction.TooltipState `json:"tooltip"`
	Stats      domain.Stats             `json:"stats"`
	Nodes      []scene.Circle           `json:"nodes"`
	Links      []scene.Line             `json:"links"`
	Labels     []scene.Label            `json:"labels"`
}

// Snapshot copies the widget's state. The copies share nothing with the
// live scene.
func (w *Widget) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := Snapshot{
		Generation: w.generation,
		Inert:      w.inert,
		Destroyed:  w.destroyed,
		Theme:      theme.Dark,
		Current:    viewport.Identity,
		Target:     viewport.Identity,
		Nodes:      []scene.Circle{},
		Links:      []scene.Line{},
		Labels:     []scene.Label{},
	}
	if w.inert {
		return snap
	}

	snap.Theme = theme.Current(w.container)
	snap.Size = w.view.Size()
	snap.Current = w.view.Current()
	snap.Target = w.view.Transform()
	snap.Animating = w.view.Animating()
	if w.sim != nil {
		snap.Alpha = w.sim.Alpha()
		snap.Running = w.sim.Running()
		snap.Ticks = w.sim.Ticks()
	}
	snap.Hovered = w.ctrl.Hovered()
	snap.Dragging = w.ctrl.Dragging()
	snap.Tooltip = w.tooltip.State()
	snap.Stats = w.scene.Graph().Stats()

	for _, c := range w.scene.Circles() {
		cp := *c
		cp.Node = nil
		snap.Nodes = append(snap.Nodes, cp)
	}
	for _, l := range w.scene.Lines() {
		cp := *l
		cp.Source, cp.Target = nil, nil
		snap.Links = append(snap.Links, cp)
	}
	for _, lbl := range w.scene.Labels() {
		cp := *lbl
		cp.Node = nil
		snap.Labels = append(snap.Labels, cp)
	}
	return snap
}

// Generation counts load and SetData calls
func (w *Widget) Generation() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.generation
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
