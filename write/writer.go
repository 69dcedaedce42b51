package write

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultFloatFormat prints three decimal places, as in the printed traces
const DefaultFloatFormat = "%.3f"

type WriteSettings struct {
	DisplayWriters []Writer // Where should the table be written. This can be set to nil to avoid all display
	FloatFormat    string   // fmt verb used for float64 values
}

func DefaultWriteSettings() *WriteSettings {
	return &WriteSettings{
		DisplayWriters: []Writer{{os.Stdout, Displayer}},
		FloatFormat:    DefaultFloatFormat,
	}
}

type Type int

const (
	// Logger is a writer intended to save the rows of a table for future
	// postprocessing. The data is saved as csv with full precision.
	Logger Type = iota

	// Displayer is a writer intended for human reading. Columns are aligned
	// and the headings are repeated periodically.
	Displayer
)

type Writer struct {
	io.Writer
	T Type
}

type Value struct {
	Value   interface{}
	Heading string
}

// DataAdder is a single row of a table
type DataAdder interface {
	AppendWriteData([]*Value) []*Value
}

const headingInterval = 30

// Display writes tables of rows to a set of writers according to their Type.
// Assumption is that headings don't change between the rows of one table
type Display struct {
	settings *WriteSettings

	headings   []string
	rows       [][]*Value
	maxLengths []int
}

func NewDisplay(settings *WriteSettings) *Display {
	if settings == nil {
		settings = DefaultWriteSettings()
	}
	if settings.FloatFormat == "" {
		settings.FloatFormat = DefaultFloatFormat
	}
	return &Display{settings: settings}
}

// accumulateValues gets all of the values from the data adders and stores
// them in display
func (d *Display) accumulateValues(rows []DataAdder) {
	d.rows = d.rows[:0]
	for _, add := range rows {
		d.rows = append(d.rows, add.AppendWriteData(nil))
	}
	d.headings = d.headings[:0]
	if len(d.rows) == 0 {
		return
	}
	for _, v := range d.rows[0] {
		d.headings = append(d.headings, v.Heading)
	}
}

// WriteTable writes the rows to every writer. Displayers get aligned columns,
// Loggers get csv with a heading line.
func (d *Display) WriteTable(rows ...DataAdder) error {
	if len(d.settings.DisplayWriters) == 0 {
		return nil
	}
	d.accumulateValues(rows)

	for _, w := range d.settings.DisplayWriters {
		switch w.T {
		default:
			panic("display: unknown writer type")
		case Logger:
			if err := d.log(w); err != nil {
				return err
			}
		case Displayer:
			if err := d.display(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteLine writes a free-form line to the Displayers only
func (d *Display) WriteLine(format string, args ...interface{}) error {
	for _, w := range d.settings.DisplayWriters {
		if w.T != Displayer {
			continue
		}
		if _, err := fmt.Fprintf(w, format+"\n", args...); err != nil {
			return err
		}
	}
	return nil
}

func (d *Display) display(w io.Writer) error {
	strs := make([][]string, len(d.rows))
	for i, row := range d.rows {
		strs[i] = make([]string, len(row))
		for j, v := range row {
			strs[i][j] = valueToString(v.Value, d.settings.FloatFormat)
		}
	}

	// Find the max length of heading and value
	d.maxLengths = d.maxLengths[:0]
	for _, h := range d.headings {
		d.maxLengths = append(d.maxLengths, len(h))
	}
	for _, row := range strs {
		for j, s := range row {
			if j < len(d.maxLengths) && len(s) > d.maxLengths[j] {
				d.maxLengths[j] = len(s)
			}
		}
	}

	for i, row := range strs {
		if i%headingInterval == 0 {
			if err := writeAlignedStrings(w, d.headings, d.maxLengths); err != nil {
				return err
			}
		}
		if err := writeAlignedStrings(w, row, d.maxLengths); err != nil {
			return err
		}
	}
	return nil
}

func (d *Display) log(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.headings); err != nil {
		return err
	}
	record := make([]string, 0, len(d.headings))
	for _, row := range d.rows {
		record = record[:0]
		for _, v := range row {
			record = append(record, valueToString(v.Value, "%v"))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeAlignedStrings(w io.Writer, strs []string, maxLengths []int) error {
	for i, str := range strs {
		pad := 0
		if i < len(maxLengths) {
			pad = maxLengths[i] - len(str)
		}
		s := str + strings.Repeat(" ", pad) + "\t"
		_, err := w.Write([]byte(s))
		if err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("\n"))
	return err
}

func valueToString(v interface{}, floatFormat string) string {
	switch t := v.(type) {
	case int:
		return fmt.Sprintf("%d", t)
	case float64:
		return fmt.Sprintf(floatFormat, t)
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
