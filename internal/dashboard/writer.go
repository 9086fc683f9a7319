package dashboard

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jszwec/csvutil"
)

const maxBarWidth = 40

// WriteView prints the cards as a two-column table followed by a horizontal bar chart.
func WriteView(w io.Writer, view View) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, card := range view.Cards {
		fmt.Fprintf(tw, "%s\t%s\n", card.Title, card.Value)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write cards: %w", err)
	}

	fmt.Fprintln(w)

	if view.Chart.Empty() {
		_, err := fmt.Fprintln(w, EmptyChartNotice)
		return err
	}

	fmt.Fprintln(w, view.Chart.Title)

	maxCount := 0
	for _, bar := range view.Chart.Bars {
		maxCount = max(maxCount, bar.Count)
	}

	for _, bar := range view.Chart.Bars {
		width := 0
		if maxCount > 0 {
			width = bar.Count * maxBarWidth / maxCount
		}
		fmt.Fprintf(tw, "%s\t%s %d\n", bar.Label, strings.Repeat("#", width), bar.Count)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	return nil
}

func WriteHistory(w io.Writer, rows []HistoryRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tUPLOADED AT\tFILENAME")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", row.ID, row.UploadedAt, row.Filename)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}

	return nil
}

func WriteHistoryCSV(w io.Writer, rows []HistoryRow) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if err := enc.EncodeHeader(HistoryRow{}); err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush history: %w", err)
	}

	return nil
}
