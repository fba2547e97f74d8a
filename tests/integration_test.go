package tests

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// binaryName returns the appropriate binary name for the current OS
func binaryName() string {
	if runtime.GOOS == "windows" {
		return "pdf2graph_test.exe"
	}
	return "pdf2graph_test"
}

// buildTestBinary builds the test binary and returns a cleanup function
func buildTestBinary(t *testing.T) (string, func()) {
	t.Helper()
	binName := binaryName()
	buildCmd := exec.Command("go", "build", "-o", binName, "../cmd/pdf2graph")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return binName, func() { os.Remove(binName) }
}

// writeSamplePDF generates the fixture document: a bold title, two
// chapters, an underlined subheading with a plain heading nested inside,
// and body text between them.
func writeSamplePDF(t *testing.T, path string) {
	t.Helper()

	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.AddPage()

	put := func(style string, size, y float64, text string) {
		doc.SetFont("Helvetica", style, size)
		doc.SetXY(72, y)
		doc.CellFormat(400, size+4, text, "", 0, "L", false, 0, "")
	}

	put("B", 20, 60, "Sample Document")
	put("", 10, 100, "An introduction to the sample.")
	put("B", 16, 140, "Chapter One")
	put("", 10, 180, "Text belonging to the first chapter.")
	put("BU", 12, 220, "Key Terms")
	put("B", 12, 260, "Definitions")
	put("", 10, 300, "A definition goes here.")
	put("B", 16, 340, "Chapter Two")

	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("failed to write fixture PDF: %v", err)
	}
}

func TestConvertCommand(t *testing.T) {
	tmpDir := t.TempDir()
	sampleFile := filepath.Join(tmpDir, "sample.pdf")
	writeSamplePDF(t, sampleFile)

	textFile := filepath.Join(tmpDir, "notes.txt")
	if err := os.WriteFile(textFile, []byte("not a pdf"), 0644); err != nil {
		t.Fatal(err)
	}

	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	tests := []struct {
		name       string
		args       []string
		wantErr    bool
		wantOutput []string
	}{
		{
			name: "basic convert",
			args: []string{"convert", sampleFile,
				filepath.Join(tmpDir, "out.html"), filepath.Join(tmpDir, "out.json")},
			wantErr:    false,
			wantOutput: []string{"Visualization saved to", "Graph details saved to"},
		},
		{
			name: "convert with verbose",
			args: []string{"convert", sampleFile,
				filepath.Join(tmpDir, "out2.html"), filepath.Join(tmpDir, "out2.json"), "-v"},
			wantErr: false,
		},
		{
			name: "convert non-existent file",
			args: []string{"convert", filepath.Join(tmpDir, "nonexistent.pdf"),
				filepath.Join(tmpDir, "x.html"), filepath.Join(tmpDir, "x.json")},
			wantErr:    true,
			wantOutput: []string{"file not found"},
		},
		{
			name: "convert unsupported format",
			args: []string{"convert", textFile,
				filepath.Join(tmpDir, "y.html"), filepath.Join(tmpDir, "y.json")},
			wantErr:    true,
			wantOutput: []string{"unsupported file format"},
		},
		{
			name:    "convert with missing arguments",
			args:    []string{"convert", sampleFile},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := exec.Command("./"+binPath, tc.args...)
			output, err := cmd.CombinedOutput()

			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v\noutput: %s", err, output)
				}
			}

			for _, want := range tc.wantOutput {
				if !strings.Contains(string(output), want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestExtractCommand(t *testing.T) {
	tmpDir := t.TempDir()
	sampleFile := filepath.Join(tmpDir, "sample.pdf")
	writeSamplePDF(t, sampleFile)

	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	tests := []struct {
		name       string
		args       []string
		wantErr    bool
		wantOutput []string
	}{
		{
			name:       "extract as json",
			args:       []string{"extract", sampleFile},
			wantErr:    false,
			wantOutput: []string{"Chapter One", "font_size"},
		},
		{
			name:       "extract as text",
			args:       []string{"extract", sampleFile, "--format", "text"},
			wantErr:    false,
			wantOutput: []string{"PAGE", "Chapter One"},
		},
		{
			name:    "extract non-existent file",
			args:    []string{"extract", filepath.Join(tmpDir, "nonexistent.pdf")},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := exec.Command("./"+binPath, tc.args...)
			output, err := cmd.CombinedOutput()

			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v\noutput: %s", err, output)
				}
			}

			for _, want := range tc.wantOutput {
				if !strings.Contains(string(output), want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	cmd := exec.Command("./"+binPath, "version")
	output, err := cmd.CombinedOutput()

	if err != nil {
		t.Errorf("unexpected error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(string(output), "pdf2graph") {
		t.Errorf("output should contain 'pdf2graph', got: %s", output)
	}
}

func TestConfigCommand(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	t.Run("config show", func(t *testing.T) {
		cmd := exec.Command("./"+binPath, "config", "show")
		output, err := cmd.CombinedOutput()

		if err != nil {
			t.Errorf("unexpected error: %v\noutput: %s", err, output)
		}
		if !strings.Contains(string(output), "underline_max_height") {
			t.Errorf("output should contain 'underline_max_height', got: %s", output)
		}
	})

	t.Run("config path", func(t *testing.T) {
		cmd := exec.Command("./"+binPath, "config", "path")
		output, err := cmd.CombinedOutput()

		if err != nil {
			t.Errorf("unexpected error: %v\noutput: %s", err, output)
		}
		if !strings.Contains(string(output), "config.yaml") {
			t.Errorf("output should contain 'config.yaml', got: %s", output)
		}
	})

	t.Run("config path from environment", func(t *testing.T) {
		envPath := filepath.Join(t.TempDir(), "custom.yaml")

		cmd := exec.Command("./"+binPath, "config", "path")
		cmd.Env = append(os.Environ(), "PDF2GRAPH_CONFIG="+envPath)
		output, err := cmd.CombinedOutput()

		if err != nil {
			t.Errorf("unexpected error: %v\noutput: %s", err, output)
		}
		if !strings.Contains(string(output), envPath) {
			t.Errorf("output should contain %q, got: %s", envPath, output)
		}
	})

	t.Run("config init", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")

		cmd := exec.Command("./"+binPath, "config", "init", "--config", configPath)
		output, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("unexpected error: %v\noutput: %s", err, output)
		}
		if _, err := os.Stat(configPath); err != nil {
			t.Errorf("expected config file to be created: %v", err)
		}

		// A second init must refuse to overwrite.
		cmd = exec.Command("./"+binPath, "config", "init", "--config", configPath)
		output, err = cmd.CombinedOutput()
		if err == nil {
			t.Error("expected error when config file already exists")
		}
		if !strings.Contains(string(output), "already exists") {
			t.Errorf("output should mention the existing file, got: %s", output)
		}

		// --force overwrites.
		cmd = exec.Command("./"+binPath, "config", "init", "--config", configPath, "--force")
		output, err = cmd.CombinedOutput()
		if err != nil {
			t.Errorf("unexpected error with --force: %v\noutput: %s", err, output)
		}
	})
}

func TestHelpCommand(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	cmd := exec.Command("./"+binPath, "--help")
	output, err := cmd.CombinedOutput()

	if err != nil {
		t.Errorf("unexpected error: %v\noutput: %s", err, output)
	}

	expectedStrings := []string{"pdf2graph", "convert", "extract", "config"}
	for _, s := range expectedStrings {
		if !strings.Contains(string(output), s) {
			t.Errorf("output should contain %q, got: %s", s, output)
		}
	}
}
