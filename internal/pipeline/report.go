package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/kurochkinivan/equipment_reporter/internal/domain"
)

const (
	reportTitle       = "Equipment Analytics Report"
	rawDataRowsLimit  = 50
	rawDataColsLimit  = 4
	reportFilePattern = "Equipment_Report_%s.pdf"
)

const (
	statisticsHeaderColor = "#f8f9fa"
	typesHeaderColor      = "#e3f2fd"
	statusesHeaderColor   = "#e8f5e9"
	rawDataHeaderColor    = "#d3d3d3"
	gridColor             = "#e0e0e0"
	rawDataGridColor      = "#000000"
)

var preferredRawDataColumns = []string{"equipment_id", "equipment_type", "status", "maintenance_cost"}

// BuildReport lays out the report content for a normalized table and its summary.
func BuildReport(table *domain.Table, summary *domain.Summary, generatedAt time.Time) *domain.Report {
	report := &domain.Report{
		Title:       reportTitle,
		GeneratedAt: generatedAt,
		Statistics: domain.ReportTable{
			Title:  "Summary Statistics",
			Header: []string{"Metric", "Value"},
			Rows: [][]string{
				{"Total Equipment", strconv.Itoa(summary.TotalCount)},
				{"Average Cost", formatCurrency(summary.AverageCost(), 2)},
			},
			HeaderColor: statisticsHeaderColor,
			GridColor:   gridColor,
		},
		RawData: rawDataTable(table),
	}

	if table.Has(ColumnEquipmentType) {
		report.Distributions = append(report.Distributions, distributionTable(
			"Equipment Type Distribution", "Type", typesHeaderColor, summary.EquipmentTypeDistribution, summary.TotalCount,
		))
	}

	if table.Has(ColumnStatus) {
		report.Distributions = append(report.Distributions, distributionTable(
			"Status Distribution", "Status", statusesHeaderColor, summary.StatusDistribution, summary.TotalCount,
		))
	}

	return report
}

func ReportFilename(generatedAt time.Time) string {
	return fmt.Sprintf(reportFilePattern, generatedAt.Format(time.DateOnly))
}

func distributionTable(title, label, headerColor string, dist domain.Distribution, total int) domain.ReportTable {
	t := domain.ReportTable{
		Title:       title,
		Header:      []string{label, "Count", "Percentage"},
		Rows:        make([][]string, 0, len(dist)),
		HeaderColor: headerColor,
		GridColor:   gridColor,
	}

	for _, e := range dist {
		var pct float64
		if total > 0 {
			pct = float64(e.Value) / float64(total) * 100
		}
		t.Rows = append(t.Rows, []string{e.Key, strconv.Itoa(e.Value), strconv.FormatFloat(pct, 'f', 1, 64) + "%"})
	}

	return t
}

func rawDataTable(table *domain.Table) domain.ReportTable {
	t := domain.ReportTable{
		Title:       fmt.Sprintf("Equipment Data (First %d Records)", rawDataRowsLimit),
		HeaderColor: rawDataHeaderColor,
		GridColor:   rawDataGridColor,
	}

	columns := rawDataColumns(table)
	if len(columns) == 0 {
		return t
	}

	for _, j := range columns {
		t.Header = append(t.Header, titleCase(strings.ReplaceAll(table.Columns[j].Name, "_", " ")))
	}

	rows := table.Rows[:min(len(table.Rows), rawDataRowsLimit)]
	for _, row := range rows {
		cells := make([]string, 0, len(columns))
		for _, j := range columns {
			cells = append(cells, rawDataCell(table.Columns[j].Name, row[j]))
		}
		t.Rows = append(t.Rows, cells)
	}

	return t
}

// rawDataColumns picks the preferred columns present in the table, or the
// first columns of the file when none of them is.
func rawDataColumns(table *domain.Table) []int {
	var columns []int
	for _, name := range preferredRawDataColumns {
		if j := table.Index(name); j >= 0 {
			columns = append(columns, j)
		}
	}

	if len(columns) == 0 {
		for j := range min(len(table.Columns), rawDataColsLimit) {
			columns = append(columns, j)
		}
	}

	return columns[:min(len(columns), rawDataColsLimit)]
}

func rawDataCell(column string, value any) string {
	switch v := value.(type) {
	case nil:
		if strings.Contains(column, costSubstring) {
			return "$nan"
		}
		return "nan"
	case int64:
		if strings.Contains(column, costSubstring) {
			return formatCurrency(float64(v), 0)
		}
	case float64:
		if strings.Contains(column, costSubstring) {
			return formatCurrency(v, 0)
		}
	}

	return domain.CellString(value)
}

// formatCurrency renders v as dollars with thousands separators: 1234.5 -> "$1,234.50".
func formatCurrency(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString("$")
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}

	return b.String()
}

// titleCase upper-cases the first letter of every word and lower-cases the rest.
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) && !prevLetter:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
