package domain

import (
	"math"
	"strconv"
	"strings"
)

type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
)

func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

type Column struct {
	Name string
	Kind Kind
}

// Record is one table row keyed by column name, in column order.
type Record = OrderedMap[any]

// Table is a parsed CSV file. Every row has len(Columns) cells; a cell is nil
// (missing), int64, float64 or string depending on the column kind.
// Raw, when set, holds the source text of every cell, "" for absent ones.
type Table struct {
	Columns []Column
	Rows    [][]any
	Raw     [][]string
}

// Text returns the source text of a cell, falling back to its typed value.
func (t *Table) Text(i, j int) string {
	if i < len(t.Raw) && j < len(t.Raw[i]) {
		return t.Raw[i][j]
	}
	return CellString(t.Rows[i][j])
}

func (t *Table) Len() int {
	return len(t.Rows)
}

func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func (t *Table) Has(name string) bool {
	return t.Index(name) >= 0
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func (t *Table) Records() []Record {
	records := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make(Record, len(t.Columns))
		for i, c := range t.Columns {
			record[i] = Entry[any]{Key: c.Name, Value: row[i]}
		}
		records = append(records, record)
	}
	return records
}

// FormatFloat renders f with at least one fractional digit (150 -> "150.0").
func FormatFloat(f float64) string {
	if math.IsNaN(f) {
		return "nan"
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// CellString renders a cell value as text. Missing cells render as "".
func CellString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return FormatFloat(v)
	default:
		return ""
	}
}
