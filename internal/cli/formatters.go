package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"gopkg.in/yaml.v3"
)

// OutputFormat is the value of the -o flag
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// Texter is implemented by results that know their text rendering
type Texter interface {
	Text() string
}

// SectionWriter prints labeled values grouped under section titles, with
// the values of a section aligned
type SectionWriter struct {
	w  io.Writer
	tw *tabwriter.Writer
}

// NewSectionWriter creates a section writer on w
func NewSectionWriter(w io.Writer) *SectionWriter {
	return &SectionWriter{w: w}
}

// Section starts a new titled group, flushing the previous one
func (s *SectionWriter) Section(title string) {
	s.Flush()
	fmt.Fprintf(s.w, "\n%s\n", title)
	s.tw = tabwriter.NewWriter(s.w, 0, 0, 2, ' ', 0)
}

// Field writes one label/value row; empty values print as "-"
func (s *SectionWriter) Field(label, value string) {
	if s.tw == nil {
		s.tw = tabwriter.NewWriter(s.w, 0, 0, 2, ' ', 0)
	}
	if value == "" {
		value = "-"
	}
	fmt.Fprintf(s.tw, "  %s\t%s\n", label, value)
}

// Flush writes any buffered rows
func (s *SectionWriter) Flush() {
	if s.tw != nil {
		s.tw.Flush()
		s.tw = nil
	}
}

// OutputResults writes data as json or yaml. Text output uses the Texter
// rendering when data has one.
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = w.Write(out)
		return err

	case FormatText:
		if t, ok := data.(Texter); ok {
			fmt.Fprintln(w, t.Text())
			return nil
		}
		fmt.Fprintf(w, "%v\n", data)
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// TruncateString shortens s to maxLen cells, ending in "..."
func TruncateString(s string, maxLen int) string {
	if ansi.PrintableRuneWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return truncate.String(s, uint(max(maxLen, 0)))
	}
	return truncate.StringWithTail(s, uint(maxLen), "...")
}
