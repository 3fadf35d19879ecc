package output

import (
	"io"

	"github.com/lgbarn/chess-strategies-go/internal/config"
	"github.com/lgbarn/chess-strategies-go/internal/tournament"
)

// ReportWriter is the interface for writing tournament reports.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a complete report to the output.
	WriteReport(report *tournament.Report) error
}

// TextWriter writes reports as a plain-text standings table.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteReport writes the report as text.
func (tw *TextWriter) WriteReport(report *tournament.Report) error {
	ew := &errWriter{w: tw.w}
	OutputReport(report, tw.cfg, ew)
	return ew.err
}

// JSONWriter writes reports as one indented JSON document.
type JSONWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// WriteReport writes the report as JSON.
func (jw *JSONWriter) WriteReport(report *tournament.Report) error {
	return OutputReportJSON(report, jw.cfg, jw.w)
}

// NewReportWriter returns the writer selected by the configuration,
// writing to cfg.OutputFile.
func NewReportWriter(cfg *config.Config) ReportWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(cfg.OutputFile, cfg.Output)
	}
	return NewTextWriter(cfg.OutputFile, cfg.Output)
}

// errWriter remembers the first write error and discards later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
