package services

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// pdfColumnWidths maps TasklistHeaders onto maroto's 12-unit grid.
var pdfColumnWidths = []int{1, 1, 1, 1, 1, 1, 3, 1, 1, 1}

// GenerateTasklistPDF renders a printable copy of the tasklists. Sections
// follow the same order and emphasis rules as the xlsx export.
func GenerateTasklistPDF(title string, assessment, development Section) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	if len(assessment) > 0 {
		addPDFSection(m, "Assessment Tasklist", assessment)
	}
	if len(development) > 0 {
		addPDFSection(m, "Development Tasklist", development)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addPDFSection(m core.Maroto, heading string, tasks Section) {
	m.AddRows(row.New(4))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(heading, props.Text{Size: 10, Style: fontstyle.Bold}),
			),
		),
	)

	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	header := row.New(10)
	for i, h := range TasklistHeaders {
		header.Add(col.New(pdfColumnWidths[i]).Add(text.New(h, headerText)).WithStyle(headerCell))
	}
	m.AddRows(header)

	for _, t := range tasks {
		m.AddRows(pdfTaskRow(t))
	}
}

func pdfTaskRow(t Task) core.Row {
	base := props.Text{Size: 6, Align: align.Left}

	r := row.New(7)
	for i, v := range taskCells(t) {
		style := base
		var s string
		switch val := v.(type) {
		case int64:
			s = strconv.FormatInt(val, 10)
			style.Align = align.Right
		case string:
			s = val
		}
		if i == durationCol && t.IsTotal() {
			style.Style = fontstyle.Bold
		}
		r.Add(col.New(pdfColumnWidths[i]).Add(text.New(s, style)))
	}
	return r
}
