// Package cli renders command results for the terminal: tables for people,
// JSON and YAML for scripts.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a user-supplied format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	case "":
		return OutputFormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (use table, json or yaml)", s)
	}
}

// Printer writes results in one format.
type Printer struct {
	Format OutputFormat
	Out    io.Writer
}

// NewPrinter creates a printer for the named format.
func NewPrinter(format string, out io.Writer) (*Printer, error) {
	f, err := ParseOutputFormat(format)
	if err != nil {
		return nil, err
	}
	return &Printer{Format: f, Out: out}, nil
}

// Print writes data. JSON and YAML encode data itself; the table shows rows
// under columns.
func (p *Printer) Print(columns []string, rows [][]interface{}, data interface{}) error {
	switch p.Format {
	case OutputFormatJSON:
		return p.outputJSON(data)
	case OutputFormatYAML:
		return p.outputYAML(data)
	case OutputFormatTable:
		p.outputTable(columns, rows)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", p.Format)
	}
}

func (p *Printer) outputJSON(data interface{}) error {
	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func (p *Printer) outputYAML(data interface{}) error {
	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	_, err = p.Out.Write(yamlData)
	return err
}

func (p *Printer) outputTable(columns []string, rows [][]interface{}) {
	if len(rows) == 0 {
		fmt.Fprintln(p.Out, text.FgYellow.Sprint("No items found"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.SetStyle(table.StyleRounded)

	headers := make(table.Row, len(columns))
	for i, col := range columns {
		headers[i] = text.FgHiCyan.Sprint(strings.ToUpper(col))
	}
	t.AppendHeader(headers)
	for _, row := range rows {
		t.AppendRow(table.Row(row))
	}
	t.Render()
}
