// Command notesgraph serves, renders and validates note graphs.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.1.0"

var (
	brand  = color.New(color.FgHiCyan, color.Bold)
	subtle = color.New(color.FgHiBlack)
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed)
	warn   = color.New(color.FgYellow)
)

var (
	configPath string
	verbose    bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		bad.Fprintf(os.Stderr, "notesgraph: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "notesgraph",
		Short: "notesgraph: a force-directed view of your notes",
		Long: brand.Sprint("notesgraph") + " lays out notes and their links as a force-directed graph\n" +
			subtle.Sprint("Serve it interactively, render it to SVG, or validate a dataset"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("notesgraph {{ .Version }}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: search $NOTESGRAPH_CONFIG, ./notesgraph.yaml, XDG)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		serveCmd(),
		renderCmd(),
		validateCmd(),
		configCmd(),
	)
	return root
}

// cliLogger is silent unless --verbose
func cliLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "notesgraph: logger: %v\n", err)
		return zap.NewNop()
	}
	return logger
}
