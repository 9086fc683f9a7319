// Package dashboard turns API responses into the views of the equipment client.
package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kurochkinivan/equipment_reporter/internal/client"
	"github.com/kurochkinivan/equipment_reporter/internal/domain"
)

const (
	TotalRecordsTitle = "TOTAL RECORDS"
	TotalRecordsColor = "#2196F3"

	ChartTitle       = "Equipment Type Distribution"
	EmptyChartNotice = "No distribution data available"

	UnknownFilename   = "Unknown"
	historyDateLayout = "2006-01-02 15:04"
)

var (
	cardPalette    = []string{"#FF5722", "#FFC107", "#9C27B0", "#009688", "#E91E63"}
	ignoredMetrics = []string{"efficiency_rating", "runtime_hours"}
)

type Card struct {
	Title string
	Value string
	Color string
}

type Bar struct {
	Label string
	Count int
}

// Chart is empty when the summary has no equipment type distribution.
type Chart struct {
	Title string
	Bars  []Bar
}

func (c Chart) Empty() bool {
	return len(c.Bars) == 0
}

type View struct {
	Cards []Card
	Chart Chart
}

// Render builds the stat cards and the distribution chart of a summary.
// A nil summary renders a zero count and an empty chart.
func Render(summary *domain.Summary) View {
	if summary == nil {
		summary = &domain.Summary{}
	}

	cards := []Card{{
		Title: TotalRecordsTitle,
		Value: strconv.Itoa(summary.TotalCount),
		Color: TotalRecordsColor,
	}}

	seen := make(map[string]struct{})
	for _, avg := range summary.Averages {
		clean := strings.ToLower(strings.TrimSpace(avg.Key))
		if ignoredMetric(clean) {
			continue
		}

		simple := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(clean, "avg", ""), "_", ""))
		if _, ok := seen[simple]; ok {
			continue
		}
		seen[simple] = struct{}{}

		cards = append(cards, Card{
			Title: strings.ToUpper(strings.ReplaceAll(avg.Key, "_", " ")),
			Value: fmt.Sprintf("%.2f", avg.Value),
			Color: cardPalette[(len(cards)-1)%len(cardPalette)],
		})
	}

	chart := Chart{Title: ChartTitle}
	for _, e := range summary.EquipmentTypeDistribution {
		chart.Bars = append(chart.Bars, Bar{Label: e.Key, Count: e.Value})
	}

	return View{Cards: cards, Chart: chart}
}

func ignoredMetric(key string) bool {
	for _, ignored := range ignoredMetrics {
		if strings.Contains(key, ignored) {
			return true
		}
	}
	return false
}

type HistoryRow struct {
	ID         int64  `csv:"id"`
	UploadedAt string `csv:"uploaded_at"`
	Filename   string `csv:"filename"`
}

// HistoryRows keeps the order of datasets. Upload times are shown in the
// offset the server sent them in.
func HistoryRows(datasets []client.Dataset) []HistoryRow {
	rows := make([]HistoryRow, 0, len(datasets))
	for _, d := range datasets {
		rows = append(rows, HistoryRow{
			ID:         d.ID,
			UploadedAt: formatUploadedAt(d.UploadedAt),
			Filename:   historyFilename(d.File),
		})
	}
	return rows
}

func formatUploadedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(historyDateLayout)
}

func historyFilename(file *string) string {
	if file == nil || *file == "" {
		return UnknownFilename
	}
	return (*file)[strings.LastIndex(*file, "/")+1:]
}
