package export

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jsamuelsen11/workforce/internal/ports"
)

// Sheet names of the payroll workbook.
const (
	SheetPayroll = "Payroll"
	SheetSummary = "Summary"
)

var (
	payrollHeader = []string{"Department", "ID", "Name", "Kind", "Base salary", "Variable", "Total"}
	summaryHeader = []string{"Department", "Employees", "Total", "Average", "Min", "Max"}
)

var _ ports.ReportExporter = (*XLSXExporter)(nil)

// XLSXExporter saves a report as an XLSX workbook with one row per employee
// on the payroll sheet and one row per department on the summary sheet.
type XLSXExporter struct {
	path string
}

// NewXLSXExporter returns an XLSXExporter saving to path.
func NewXLSXExporter(path string) *XLSXExporter {
	return &XLSXExporter{path: path}
}

func (e *XLSXExporter) Format() string { return "xlsx" }

// Path returns the workbook destination.
func (e *XLSXExporter) Path() string { return e.path }

// Export builds the workbook and saves it, replacing any existing file.
func (e *XLSXExporter) Export(ctx context.Context, report *ports.PayrollReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := BuildWorkbook(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(e.path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", e.path, err)
	}
	return nil
}

// BuildWorkbook lays out the report in a new workbook.
func BuildWorkbook(report *ports.PayrollReport) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetPayroll); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return nil, fmt.Errorf("adding sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating style: %w", err)
	}

	w := &sheetWriter{f: f}

	w.row(SheetPayroll, 1, bold, toCells(payrollHeader)...)
	r := 2
	for _, dept := range report.Departments {
		for _, l := range dept.Lines {
			w.row(SheetPayroll, r, 0, dept.Name, l.EmployeeID, l.Name, l.Kind.String(), l.BaseSalary, l.Variable, l.Total)
			r++
		}
	}
	w.row(SheetPayroll, r, bold, "Total", report.Headcount, "", "", "", "", report.Total)

	w.row(SheetSummary, 1, bold, toCells(summaryHeader)...)
	r = 2
	for _, dept := range report.Departments {
		s := dept.Stats
		w.row(SheetSummary, r, 0, dept.Name, s.Count, s.Total, s.Average, s.Min, s.Max)
		r++
	}
	w.row(SheetSummary, r, bold, report.Company, report.Headcount, report.Total, report.Average, "", "")
	w.row(SheetSummary, r+2, 0, "Run", report.RunID)
	w.row(SheetSummary, r+3, 0, "Generated", report.GeneratedAt.Format(time.RFC3339))

	if w.err != nil {
		return nil, fmt.Errorf("writing workbook: %w", w.err)
	}
	return f, nil
}

// sheetWriter keeps the first cell error.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) row(sheet string, r, style int, values ...any) {
	if w.err != nil {
		return
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, r)
		if err != nil {
			w.err = err
			return
		}
		if err := w.f.SetCellValue(sheet, cell, v); err != nil {
			w.err = err
			return
		}
	}
	if style == 0 || len(values) == 0 {
		return
	}
	first, _ := excelize.CoordinatesToCellName(1, r)
	last, _ := excelize.CoordinatesToCellName(len(values), r)
	w.err = w.f.SetCellStyle(sheet, first, last, style)
}

func toCells(header []string) []any {
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	return cells
}
