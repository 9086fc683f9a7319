package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/kurochkinivan/equipment_reporter/internal/domain"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrNoColumns = errors.New("no columns to parse from file")

// missingValues are cell values read as missing, in addition to the empty string.
var missingValues = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {}, "-NaN": {}, "-nan": {},
	"1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {},
	"None": {}, "n/a": {}, "nan": {}, "null": {},
}

type Parser struct {
	log *slog.Logger
}

func NewParser(log *slog.Logger) *Parser {
	return &Parser{log: log}
}

// Parse reads CSV text into a table with normalized column names.
func (p *Parser) Parse(r io.Reader) (*domain.Table, error) {
	return p.parse(r, NormalizeHeader)
}

// ParseRaw reads CSV text into a table keeping the column names as they appear in the file.
func (p *Parser) ParseRaw(r io.Reader) (*domain.Table, error) {
	return p.parse(r, func(h string) string { return h })
}

// NormalizeHeader trims, lowercases and replaces spaces with underscores: " Equipment Type " -> "equipment_type".
func NormalizeHeader(h string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
}

func (p *Parser) parse(r io.Reader, header func(string) string) (*domain.Table, error) {
	reader := csv.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	names, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoColumns
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	names = columnNames(names, header)

	p.log.Debug("parsing records", slog.Int("columns_count", len(names)))

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read record #%d: %w", len(records)+1, err)
		}

		if len(record) > len(names) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("expected %d fields in line %d, saw %d", len(names), line, len(record))
		}

		records = append(records, record)
	}

	table := buildTable(names, records)

	p.log.Debug("successfully parsed records", slog.Int("rows_count", table.Len()))

	return table, nil
}

func columnNames(raw []string, header func(string) string) []string {
	names := make([]string, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for i, h := range raw {
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}

		name := header(h)
		for n := 1; ; n++ {
			if _, ok := seen[name]; !ok {
				break
			}
			name = fmt.Sprintf("%s.%d", header(h), n)
		}

		seen[name] = struct{}{}
		names[i] = name
	}

	return names
}

func buildTable(names []string, records [][]string) *domain.Table {
	table := &domain.Table{
		Columns: make([]domain.Column, len(names)),
		Rows:    make([][]any, len(records)),
		Raw:     make([][]string, len(records)),
	}

	for i := range records {
		table.Rows[i] = make([]any, len(names))
		table.Raw[i] = make([]string, len(names))
	}

	cells := make([]string, len(records))
	for j, name := range names {
		for i, record := range records {
			cells[i] = ""
			if j < len(record) {
				cells[i] = record[j]
			}
		}

		kind := inferKind(cells)
		table.Columns[j] = domain.Column{Name: name, Kind: kind}

		for i, cell := range cells {
			table.Rows[i][j] = convertCell(cell, kind)
			table.Raw[i][j] = cell
		}
	}

	return table
}

// inferKind picks the narrowest kind every present cell of a column fits into.
// Integer columns with missing cells become float columns.
func inferKind(cells []string) domain.Kind {
	present, missing := 0, false
	isInt, isFloat := true, true

	for _, cell := range cells {
		if isMissing(cell) {
			missing = true
			continue
		}
		present++

		if isInt {
			if _, ok := parseInt(cell); !ok {
				isInt = false
			}
		}

		if isFloat {
			if _, ok := parseFloat(cell); !ok {
				isFloat = false
			}
		}

		if !isInt && !isFloat {
			return domain.KindString
		}
	}

	switch {
	case present == 0:
		return domain.KindString
	case isInt && !missing:
		return domain.KindInt
	default:
		return domain.KindFloat
	}
}

func convertCell(cell string, kind domain.Kind) any {
	if isMissing(cell) {
		return nil
	}

	switch kind {
	case domain.KindInt:
		v, _ := parseInt(cell)
		return v
	case domain.KindFloat:
		v, _ := parseFloat(cell)
		return v
	default:
		return cell
	}
}

func isMissing(cell string) bool {
	if cell == "" {
		return true
	}
	_, ok := missingValues[cell]
	return ok
}

func parseInt(cell string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
	return v, err == nil
}

func parseFloat(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
