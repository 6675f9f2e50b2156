package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/easyfocus/easyfocus/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat converts a --format value. An empty value picks table on a
// terminal and yaml otherwise.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "":
		if IsTerminal(os.Stdout) {
			return FormatTable, nil
		}
		return FormatYAML, nil
	case FormatYAML, FormatJSON, FormatTable:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported output format: %q (expected yaml, json, or table)", s)
	}
}

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Out receives all command output.
var Out io.Writer = os.Stdout

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ListResult is the output of the `list` command.
type ListResult struct {
	Area    string         `yaml:"area"    json:"area"`
	TS      int64          `yaml:"ts"      json:"ts"`
	Windows []model.Window `yaml:"windows" json:"windows"`
}

// TreeResult is the output of the `tree` command.
type TreeResult struct {
	TS       int64           `yaml:"ts"       json:"ts"`
	Elements []model.Element `yaml:"elements" json:"elements"`
}

// TreeFlatResult is the output of `tree --flat`.
type TreeFlatResult struct {
	TS       int64               `yaml:"ts"       json:"ts"`
	Elements []model.FlatElement `yaml:"elements" json:"elements"`
}

// FocusResult is the output of the `focus` command.
type FocusResult struct {
	OK    bool   `yaml:"ok"              json:"ok"`
	ConID int64  `yaml:"con_id"          json:"con_id"`
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
}

// Print serializes v to Out in the current output format. Values without
// a table rendering are printed as YAML in table mode.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return PrintJSON(v, PrettyOutput)
	case FormatYAML:
		return PrintYAML(v)
	case FormatTable:
		if t, ok := v.(Tabler); ok {
			return PrintTable(t)
		}
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v as JSON.
// If pretty is true, uses indentation; otherwise single-line.
func PrintJSON(v interface{}, pretty bool) error {
	enc := json.NewEncoder(Out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintYAML serializes v as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(Out)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// Errorf prints a user-facing message to stderr.
func Errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(color.Error, "%s%s\n", color.RedString("error: "), fmt.Sprintf(format, args...))
}
