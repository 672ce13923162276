// Package helpers holds output formatting and flag helpers shared by the CLI
// commands.
package helpers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/zxc72608/bigquery/internal/warehouse"
)

// OutputFormat represents the desired output format.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatCSV   OutputFormat = "csv"
	FormatYAML  OutputFormat = "yaml"
)

// RowFormats lists the formats query results can be printed in.
var RowFormats = []OutputFormat{FormatTable, FormatCSV, FormatJSON}

// Formatter writes a result set.
type Formatter interface {
	Format(rows []warehouse.Row, writer io.Writer) error
}

// NewFormatter creates a new Formatter for the given format.
func NewFormatter(format OutputFormat) (Formatter, error) {
	switch format {
	case FormatTable:
		return &TableFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatCSV:
		return &CSVFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// JSONFormatter writes rows as an indented JSON array.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(rows []warehouse.Row, writer io.Writer) error {
	if rows == nil {
		rows = []warehouse.Row{}
	}
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// TableFormatter writes rows as aligned columns with a row count footer.
type TableFormatter struct{}

func (f *TableFormatter) Format(rows []warehouse.Row, writer io.Writer) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(writer, "(0 rows)")
		return err
	}

	headers := rows[0].Names()
	w := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(w, strings.Join(headers, "\t")); err != nil {
		return err
	}
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	if _, err := fmt.Fprintln(w, strings.Join(sep, "\t")); err != nil {
		return err
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(cellValues(row), "\t")); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "\n(%d rows)\n", len(rows))
	return err
}

// CSVFormatter writes a header line then one record per row.
type CSVFormatter struct{}

func (f *CSVFormatter) Format(rows []warehouse.Row, writer io.Writer) error {
	if len(rows) == 0 {
		return nil
	}

	w := csv.NewWriter(writer)
	if err := w.Write(rows[0].Names()); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(cellValues(row)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func cellValues(row warehouse.Row) []string {
	values := make([]string, len(row))
	for i, c := range row {
		if c.Value == nil {
			values[i] = "NULL"
			continue
		}
		values[i] = fmt.Sprintf("%v", c.Value)
	}
	return values
}
