package domain

import "time"

type Report struct {
	Title         string
	GeneratedAt   time.Time
	Statistics    ReportTable
	Distributions []ReportTable
	RawData       ReportTable
}

// ReportTable is one titled table of a report. Colors are "#rrggbb" hex strings.
type ReportTable struct {
	Title       string
	Header      []string
	Rows        [][]string
	HeaderColor string
	GridColor   string
}

// ReportFile is a rendered report ready to be sent as an attachment.
type ReportFile struct {
	Name    string
	Content []byte
}
