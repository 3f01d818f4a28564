package scene

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strconv"

	"notesgraph/internal/theme"
	"notesgraph/internal/viewport"
)

// WriteSVG writes the scene as a standalone SVG document
func (s *Scene) WriteSVG(w io.Writer, t viewport.Transform, size viewport.Size, pal theme.Palette) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" class="graph-svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		f(size.Width), f(size.Height), f(size.Width), f(size.Height))
	fmt.Fprintf(&buf, `<rect class="background" width="100%%" height="100%%" fill="%s"/>`+"\n", attr(pal.Background))
	s.writeGroups(&buf, t, pal)
	buf.WriteString("</svg>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// Groups returns the scene's markup without the outer svg element, for
// embedding in an existing svg root. Links, nodes and labels sit in their
// own groups under one group carrying the transform.
func (s *Scene) Groups(t viewport.Transform, pal theme.Palette) string {
	var buf bytes.Buffer
	s.writeGroups(&buf, t, pal)
	return buf.String()
}

func (s *Scene) writeGroups(buf *bytes.Buffer, t viewport.Transform, pal theme.Palette) {
	fmt.Fprintf(buf, `<g transform="%s">`+"\n", t.String())

	buf.WriteString(`<g class="links">` + "\n")
	for _, l := range s.lines {
		stroke := pal.Link
		if l.Highlighted {
			stroke = pal.Highlight
		}
		fmt.Fprintf(buf, `<line class="%s" data-source="%s" data-target="%s" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"%s/>`+"\n",
			classes("link", l.Marks), attr(l.SourceID), attr(l.TargetID),
			f(l.X1), f(l.Y1), f(l.X2), f(l.Y2), attr(stroke), f(l.StrokeWidth), opacity(l.Dimmed))
	}
	buf.WriteString("</g>\n")

	buf.WriteString(`<g class="nodes">` + "\n")
	for _, c := range s.circles {
		stroke := pal.Text
		if c.Highlighted {
			stroke = pal.Highlight
		}
		fmt.Fprintf(buf, `<circle class="%s" data-id="%s" cx="%s" cy="%s" r="%s" fill="%s" stroke="%s"%s><title>%s</title></circle>`+"\n",
			classes("node", c.Marks), attr(c.ID), f(c.CX), f(c.CY), f(c.R),
			attr(c.Fill), attr(stroke), opacity(c.Dimmed), html.EscapeString(c.Node.DisplayName()))
	}
	buf.WriteString("</g>\n")

	buf.WriteString(`<g class="labels">` + "\n")
	for _, lbl := range s.labels {
		fmt.Fprintf(buf, `<text class="%s" x="%s" y="%s" dy="%s" fill="%s" font-size="%s" text-anchor="middle"%s>%s</text>`+"\n",
			classes("node-label", Marks{Dimmed: lbl.Dimmed}), f(lbl.X), f(lbl.Y), f(lbl.DY),
			attr(pal.Text), f(labelFontSize), opacity(lbl.Dimmed), html.EscapeString(lbl.Text))
	}
	buf.WriteString("</g>\n")

	buf.WriteString("</g>\n")
}

func classes(base string, m Marks) string {
	if m.Highlighted {
		base += " highlighted"
	}
	if m.Dimmed {
		base += " dimmed"
	}
	return base
}

func opacity(dimmed bool) string {
	if dimmed {
		return ` opacity="0.15"`
	}
	return ""
}

func attr(s string) string {
	return html.EscapeString(s)
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
