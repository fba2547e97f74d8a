// Package cli implements the pdf2graph command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/docmap-io/pdf2graph/internal/config"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	flagVerbose bool
	flagQuiet   bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "pdf2graph",
	Short: "Convert a PDF's visual structure into a knowledge-graph outline",
	Long: `pdf2graph reads a PDF and reconstructs its implied outline from layout
cues alone (font size, boldness, underlines), without any structural
markup in the document. The result is a rooted hierarchy written as an
interactive HTML visualization and a JSON interchange file.

Usage:
  pdf2graph convert <document.pdf> <output.html> <output.json>`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (default ~/.pdf2graph/config.yaml)")
}

// Execute runs the root command. Fatal errors are printed to standard
// output and the process exits with code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		os.Exit(1)
	}
}

// logger returns the process logger: warnings only by default, debug
// detail with --verbose or PDF2GRAPH_VERBOSE. Diagnostics go to stderr so
// they never mix with command output.
func logger() *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose || config.GetEnvBool("PDF2GRAPH_VERBOSE") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig loads the effective configuration, honoring --config and
// PDF2GRAPH_CONFIG.
func loadConfig() (*config.Config, error) {
	loader, err := configLoader()
	if err != nil {
		return nil, err
	}
	return loader.Load()
}
