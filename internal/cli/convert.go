package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docmap-io/pdf2graph/internal/config"
	"github.com/docmap-io/pdf2graph/internal/element"
	"github.com/docmap-io/pdf2graph/internal/graph"
	"github.com/docmap-io/pdf2graph/internal/output"
	"github.com/docmap-io/pdf2graph/internal/pdf"
	"github.com/docmap-io/pdf2graph/internal/render"
)

var convertCmd = &cobra.Command{
	Use:   "convert <document.pdf> <output.html> <output.json>",
	Short: "Build the outline hierarchy and write both output files",
	Long: `Convert a PDF into its outline hierarchy.

The pipeline classifies text lines by their visual attributes (font size,
boldness, geometric underline detection), promotes qualifying bold lines
to headings, and arranges them into a rooted tree. The tree is written as
an interactive HTML network and as a JSON document with the node and edge
collections.

Example:
  pdf2graph convert report.pdf report.html report.json`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, htmlPath, jsonPath := args[0], args[1], args[2]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger()

	g, err := buildHierarchy(inputPath, cfg, log)
	if err != nil {
		return err
	}
	log.Debug("hierarchy built", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	html, err := render.NewHTMLRenderer(render.HTMLOptions{
		Height:     cfg.Render.Height,
		Width:      cfg.Render.Width,
		LabelLimit: cfg.Render.LabelLimit,
	}).Render(g)
	if err != nil {
		return fmt.Errorf("failed to render visualization: %w", err)
	}
	if err := output.WriteFile(htmlPath, html); err != nil {
		return fmt.Errorf("failed to save visualization: %w", err)
	}

	data, err := render.MarshalGraph(g)
	if err != nil {
		return fmt.Errorf("failed to serialize graph: %w", err)
	}
	if err := output.WriteFile(jsonPath, data); err != nil {
		return fmt.Errorf("failed to save graph JSON: %w", err)
	}

	if !flagQuiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Visualization saved to %s\n", htmlPath)
		fmt.Fprintf(cmd.OutOrStdout(), "Graph details saved to %s\n", jsonPath)
	}
	return nil
}

// buildHierarchy runs the two pipeline stages for a document: classify
// page geometry into elements, then build the heading tree.
func buildHierarchy(inputPath string, cfg *config.Config, log *slog.Logger) (*graph.Graph, error) {
	elements, err := classifyDocument(inputPath, cfg, log)
	if err != nil {
		return nil, err
	}

	builder := graph.NewBuilder(graph.Options{
		RootFontSize:            graph.DefaultOptions().RootFontSize,
		FallbackRegularFontSize: cfg.Builder.FallbackRegularFontSize,
		Placeholder:             cfg.Builder.Placeholder,
	})
	g, err := builder.Build(elements, inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build hierarchy: %w", err)
	}
	return g, nil
}

// classifyDocument reads the PDF and classifies its lines into the
// ordered element sequence.
func classifyDocument(inputPath string, cfg *config.Config, log *slog.Logger) ([]element.Element, error) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", inputPath)
	}
	if pdf.DetectFormat(inputPath) == pdf.FormatUnknown {
		return nil, fmt.Errorf("unsupported file format: %s", filepath.Ext(inputPath))
	}

	reader, err := pdf.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	pages, err := reader.Pages()
	if err != nil {
		return nil, err
	}

	classifier := element.NewClassifier(element.Options{
		UnderlineMaxHeight: cfg.Classifier.UnderlineMaxHeight,
		UnderlineMaxGap:    cfg.Classifier.UnderlineMaxGap,
	})
	elements := classifier.Classify(pages)
	log.Debug("document classified", "pages", len(pages), "elements", len(elements))
	return elements, nil
}
