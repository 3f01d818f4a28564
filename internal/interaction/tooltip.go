package interaction

import (
	"bytes"
	"html/template"
	"math"

	"notesgraph/internal/dom"
	"notesgraph/internal/domain"
	"notesgraph/internal/viewport"
)

// TooltipPadding separates the tooltip from the pointer
const TooltipPadding = 15.0

// Tooltip box metrics, mirroring the stylesheet
const (
	tooltipMaxWidth = 300.0
	tooltipPadX     = 16.0
	tooltipPadY     = 12.0
	titleLine       = 21.0
	bodyLine        = 19.0
	tagRow          = 26.0
	charWidth       = 7.5
	tagCharWidth    = 6.2
	tagChrome       = 20.0
)

var tooltipTemplate = template.Must(template.New("tooltip").Parse(
	`<div class="tooltip-title">{{.DisplayName}}</div>` +
		`{{with .Description}}<div class="tooltip-description">{{.}}</div>{{end}}` +
		`{{if .Tags}}<div class="tooltip-tags">{{range .Tags}}<span class="tooltip-tag">{{.}}</span>{{end}}</div>{{end}}`))

// TooltipContent renders a node's tooltip markup. Node text is escaped.
func TooltipContent(n *domain.Node) (string, error) {
	var buf bytes.Buffer
	if err := tooltipTemplate.Execute(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MeasureTooltip estimates the rendered tooltip size for n
func MeasureTooltip(n *domain.Node) viewport.Size {
	inner := tooltipMaxWidth - 2*tooltipPadX

	lines := func(text string, cw float64) (float64, float64) {
		w := float64(len([]rune(text))) * cw
		if w <= inner {
			return w, 1
		}
		return inner, math.Ceil(w / inner)
	}

	width, rows := lines(n.DisplayName(), charWidth)
	height := rows * titleLine

	if n.Description != "" {
		w, r := lines(n.Description, charWidth)
		width = math.Max(width, w)
		height += r * bodyLine
	}

	if len(n.Tags) > 0 {
		row, tagRows := 0.0, 1.0
		for _, tag := range n.Tags {
			tw := float64(len([]rune(tag)))*tagCharWidth + tagChrome
			if row > 0 && row+tw > inner {
				tagRows++
				row = 0
			}
			row += tw + 4
			width = math.Max(width, math.Min(row, inner))
		}
		height += 8 + tagRows*tagRow
	}

	return viewport.Size{
		Width:  width + 2*tooltipPadX,
		Height: height + 2*tooltipPadY,
	}
}

// PlaceTooltip offsets the tooltip from the pointer and flips it to the
// other side of the pointer on any axis where it would overflow the
// container. The result is kept inside the container when it fits.
func PlaceTooltip(pointer viewport.Point, tip, container viewport.Size) viewport.Point {
	x := pointer.X + TooltipPadding
	y := pointer.Y + TooltipPadding

	if x+tip.Width > container.Width {
		x = pointer.X - tip.Width - TooltipPadding
	}
	if y+tip.Height > container.Height {
		y = pointer.Y - tip.Height - TooltipPadding
	}

	x = math.Max(0, math.Min(x, container.Width-tip.Width))
	y = math.Max(0, math.Min(y, container.Height-tip.Height))
	return viewport.Point{X: x, Y: y}
}

// TooltipState is the visible state of the tooltip element
type TooltipState struct {
	Visible bool    `json:"visible"`
	HTML    string  `json:"html,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
}

// Tooltip drives the tooltip element
type Tooltip struct {
	el    *dom.Element
	state TooltipState
}

// NewTooltip wraps el, hiding it
func NewTooltip(el *dom.Element) *Tooltip {
	el.AddClass("graph-tooltip")
	el.AddClass("hidden")
	return &Tooltip{el: el}
}

// Element returns the tooltip element
func (t *Tooltip) Element() *dom.Element {
	return t.el
}

// State returns the tooltip's visible state
func (t *Tooltip) State() TooltipState {
	return t.state
}

// Show fills the tooltip for n and positions it near pointer
func (t *Tooltip) Show(n *domain.Node, pointer viewport.Point, container viewport.Size) error {
	content, err := TooltipContent(n)
	if err != nil {
		return err
	}
	size := MeasureTooltip(n)
	pos := PlaceTooltip(pointer, size, container)

	t.el.Inner = content
	t.el.RemoveClass("hidden")
	t.el.SetStyle("left", px(pos.X))
	t.el.SetStyle("top", px(pos.Y))

	t.state = TooltipState{
		Visible: true,
		HTML:    content,
		X:       pos.X,
		Y:       pos.Y,
		Width:   size.Width,
		Height:  size.Height,
	}
	return nil
}

// Hide hides the tooltip. Content and position are left in place.
func (t *Tooltip) Hide() {
	t.el.AddClass("hidden")
	t.state.Visible = false
}
