package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"notesgraph/internal/dom"
	"notesgraph/internal/theme"
	"notesgraph/internal/viewport"
	"notesgraph/internal/widget"

	"github.com/spf13/cobra"
)

type renderFlags struct {
	output string
	width  float64
	height float64
	ticks  int
	theme  string
	fit    bool
	labels bool
	seed   uint64
}

func renderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render <dataset>",
		Short: "Lay out a dataset and write it as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().Float64Var(&f.width, "width", dom.DefaultWidth, "canvas width")
	cmd.Flags().Float64Var(&f.height, "height", dom.DefaultHeight, "canvas height")
	cmd.Flags().IntVar(&f.ticks, "ticks", 300, "maximum simulation ticks")
	cmd.Flags().StringVar(&f.theme, "theme", string(theme.Dark), "dark or light")
	cmd.Flags().BoolVar(&f.fit, "fit", true, "frame the graph in the canvas")
	cmd.Flags().BoolVar(&f.labels, "labels", true, "draw node labels")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "layout seed")
	return cmd
}

func render(cmd *cobra.Command, source string, f renderFlags) error {
	if f.theme != string(theme.Dark) && f.theme != string(theme.Light) {
		return fmt.Errorf("unknown theme %q", f.theme)
	}

	logger := cliLogger()
	defer func() { _ = logger.Sync() }()

	doc := dom.NewDocument()
	container := dom.NewElement("div")
	container.SetAttr("id", "graph")
	container.Width = f.width
	container.Height = f.height
	doc.Body().AppendChild(container)

	opts := widget.DefaultOptions()
	opts.ShowControls = widget.Bool(false)
	opts.ShowLabels = widget.Bool(f.labels)
	opts.Seed = f.seed
	opts.FitDelay = time.Hour

	// a frozen clock lets the fit transition be completed by hand
	now := time.Now()
	w := widget.New(doc, "#graph", opts, logger,
		widget.WithClock(func() time.Time { return now }),
	)
	defer w.Destroy()

	if err := w.Load(cmd.Context(), source); err != nil {
		return err
	}
	ticks := w.Settle(f.ticks)

	if f.theme == string(theme.Light) {
		w.ToggleTheme()
	}
	if f.fit {
		if _, ok := w.FitToContent(); ok {
			now = now.Add(viewport.FitDuration)
		}
	}

	if f.output == "-" {
		if err := w.WriteSVG(cmd.OutOrStdout()); err != nil {
			return err
		}
	} else if err := writeFile(f.output, w.WriteSVG); err != nil {
		return err
	}

	stats := w.Stats()
	errOut := cmd.ErrOrStderr()
	fmt.Fprintf(errOut, "%s %d nodes, %d links %s\n",
		good.Sprint("rendered"), stats.Nodes, stats.Links,
		subtle.Sprintf("(%d ticks)", ticks))
	if stats.DroppedLinks > 0 {
		warn.Fprintf(errOut, "  %d links point at unknown notes\n", stats.DroppedLinks)
	}
	return nil
}

// writeFile creates path and fills it with write. A failed close is an
// error since the data may not have reached the disk.
func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
