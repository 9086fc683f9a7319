package report_generator

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/equipment_reporter/internal/domain"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const (
	gridColumns = 12
	margin      = 20

	titleHeight   = 16
	subtitleRow   = 8
	headingHeight = 12
	cellHeight    = 8
	spacerHeight  = 8

	generatedLayout = "Monday, January 02, 2006"
)

var (
	titleColor   = &props.Color{Red: 0x2c, Green: 0x3e, Blue: 0x50}
	headingColor = &props.Color{Red: 0x34, Green: 0x49, Blue: 0x5e}
)

type Generator struct {
	optimize bool
}

type Option func(*Generator)

// WithoutOptimization skips the pdfcpu pass over the rendered document.
func WithoutOptimization() Option {
	return func(g *Generator) {
		g.optimize = false
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{optimize: true}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateReport renders the report on Letter pages: title, statistics and
// distributions on the first page, the raw data table from the second on.
func (g *Generator) GenerateReport(report *domain.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(margin).
		WithRightMargin(margin).
		WithTopMargin(margin).
		WithTitle(report.Title, true).
		WithCreationDate(report.GeneratedAt).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		text.NewRow(titleHeight, report.Title, props.Text{
			Size:  24,
			Style: fontstyle.Bold,
			Align: align.Center,
			Color: titleColor,
		}),
		text.NewRow(subtitleRow, "Generated: "+report.GeneratedAt.Format(generatedLayout), props.Text{Size: 10}),
		row.New(spacerHeight),
	)

	m.AddRows(tableRows(report.Statistics, true)...)
	for _, t := range report.Distributions {
		m.AddRows(row.New(spacerHeight))
		m.AddRows(tableRows(t, true)...)
	}

	m.AddPages(page.New().Add(tableRows(report.RawData, false)...))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	if !g.optimize {
		return doc.GetBytes(), nil
	}

	return optimize(doc.GetBytes())
}

func tableRows(t domain.ReportTable, boldHeader bool) []core.Row {
	rows := []core.Row{
		text.NewRow(headingHeight, t.Title, props.Text{
			Top:   2,
			Size:  16,
			Style: fontstyle.Bold,
			Color: headingColor,
		}),
	}

	if len(t.Header) == 0 {
		return rows
	}

	size := max(gridColumns/len(t.Header), 1)
	cell := &props.Cell{
		BorderType:      border.Full,
		BorderColor:     hexColor(t.GridColor),
		BorderThickness: 0.3,
	}

	headerStyle := fontstyle.Normal
	if boldHeader {
		headerStyle = fontstyle.Bold
	}

	header := row.New(cellHeight).WithStyle(&props.Cell{
		BackgroundColor: hexColor(t.HeaderColor),
		BorderType:      cell.BorderType,
		BorderColor:     cell.BorderColor,
		BorderThickness: cell.BorderThickness,
	})
	for _, h := range t.Header {
		header.Add(text.NewCol(size, h, props.Text{Top: 2, Left: 2, Size: 10, Style: headerStyle}))
	}
	rows = append(rows, header)

	for _, values := range t.Rows {
		r := row.New(cellHeight).WithStyle(cell)
		for _, v := range values {
			r.Add(text.NewCol(size, v, props.Text{Top: 2, Left: 2, Size: 9}))
		}
		rows = append(rows, r)
	}

	return rows
}

func optimize(content []byte) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	var out bytes.Buffer
	if err := api.Optimize(bytes.NewReader(content), &out, conf); err != nil {
		return nil, fmt.Errorf("failed to optimize pdf: %w", err)
	}

	return out.Bytes(), nil
}

// hexColor parses "#rrggbb"; anything else yields nil, which maroto renders with its default.
func hexColor(s string) *props.Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return nil
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil
	}

	return &props.Color{
		Red:   int(v >> 16 & 0xff),
		Green: int(v >> 8 & 0xff),
		Blue:  int(v & 0xff),
	}
}
