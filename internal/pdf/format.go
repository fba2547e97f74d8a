package pdf

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a detected input file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatPDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	default:
		return "unknown"
	}
}

// DetectFormat detects the document format from the file path.
func DetectFormat(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".pdf" {
		return FormatPDF
	}
	return FormatUnknown
}

// DetectFormatFromReader detects the format by reading magic bytes.
func DetectFormatFromReader(r io.ReaderAt) (Format, error) {
	buf := make([]byte, 5)
	n, err := r.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return FormatUnknown, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if n < 5 {
		return FormatUnknown, fmt.Errorf("file too small to detect format")
	}

	if string(buf) == "%PDF-" {
		return FormatPDF, nil
	}
	return FormatUnknown, nil
}
