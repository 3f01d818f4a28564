package widget

import (
	"time"

	"notesgraph/internal/interaction"
	"notesgraph/internal/scene"
)

// Options configure a widget. Zero numeric fields and nil switches take
// their defaults, so a partly filled Options is valid.
type Options struct {
	NodeRadius      float64 `json:"node_radius" yaml:"node_radius" toml:"node_radius"`
	NodeRadiusScale float64 `json:"node_radius_scale" yaml:"node_radius_scale" toml:"node_radius_scale"`
	LinkDistance    float64 `json:"link_distance" yaml:"link_distance" toml:"link_distance"`
	ChargeStrength  float64 `json:"charge_strength" yaml:"charge_strength" toml:"charge_strength"`
	LabelOffset     float64 `json:"label_offset" yaml:"label_offset" toml:"label_offset"`
	BaseURL         string  `json:"base_url" yaml:"base_url" toml:"base_url"`

	// ShowLabels and ShowControls are on unless set to false
	ShowLabels   *bool `json:"show_labels,omitempty" yaml:"show_labels,omitempty" toml:"show_labels,omitempty"`
	ShowControls *bool `json:"show_controls,omitempty" yaml:"show_controls,omitempty" toml:"show_controls,omitempty"`

	// FitDelay is how long after a render the one-shot fit waits
	FitDelay time.Duration `json:"fit_delay" yaml:"fit_delay" toml:"fit_delay"`
	// TickInterval paces the animation loop
	TickInterval time.Duration `json:"tick_interval" yaml:"tick_interval" toml:"tick_interval"`
	// Seed feeds the simulation's jiggle
	Seed uint64 `json:"seed" yaml:"seed" toml:"seed"`

	// Sink takes clicks and hovers; nil clicks navigate to BaseURL + URL
	Sink interaction.Sink `json:"-" yaml:"-" toml:"-"`
}

// DefaultOptions returns the stock configuration
func DefaultOptions() Options {
	return Options{
		NodeRadius:      6,
		NodeRadiusScale: 1.5,
		LinkDistance:    80,
		ChargeStrength:  -200,
		LabelOffset:     12,
		FitDelay:        500 * time.Millisecond,
		TickInterval:    16 * time.Millisecond,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.NodeRadius == 0 {
		o.NodeRadius = d.NodeRadius
	}
	if o.NodeRadiusScale == 0 {
		o.NodeRadiusScale = d.NodeRadiusScale
	}
	if o.LinkDistance == 0 {
		o.LinkDistance = d.LinkDistance
	}
	if o.ChargeStrength == 0 {
		o.ChargeStrength = d.ChargeStrength
	}
	if o.LabelOffset == 0 {
		o.LabelOffset = d.LabelOffset
	}
	if o.FitDelay == 0 {
		o.FitDelay = d.FitDelay
	}
	if o.TickInterval <= 0 {
		o.TickInterval = d.TickInterval
	}
	return o
}

func (o Options) sceneOptions() scene.Options {
	return scene.Options{
		NodeRadius:      o.NodeRadius,
		NodeRadiusScale: o.NodeRadiusScale,
		LabelOffset:     o.LabelOffset,
		ShowLabels:      o.Labels(),
	}
}

// Labels reports whether node labels are drawn
func (o Options) Labels() bool {
	return o.ShowLabels == nil || *o.ShowLabels
}

// Controls reports whether the zoom and theme buttons are created
func (o Options) Controls() bool {
	return o.ShowControls == nil || *o.ShowControls
}

// Bool returns a pointer to v, for the optional switches
func Bool(v bool) *bool {
	return &v
}
