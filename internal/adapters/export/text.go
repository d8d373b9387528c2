// Package export delivers payroll reports: a plain-text table for terminals
// and logs, and an XLSX workbook for spreadsheets.
package export

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/jsamuelsen11/workforce/internal/ports"
)

var _ ports.ReportExporter = (*TextExporter)(nil)

// TextExporter writes a report as aligned text columns.
type TextExporter struct {
	w io.Writer
}

// NewTextExporter returns a TextExporter writing to w.
func NewTextExporter(w io.Writer) *TextExporter {
	return &TextExporter{w: w}
}

func (e *TextExporter) Format() string { return "text" }

// Export writes one table per department followed by company totals.
func (e *TextExporter) Export(ctx context.Context, report *ports.PayrollReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	p := &printer{w: tw}

	p.printf("Payroll %s\t%s\t%s\t\n", report.RunID, report.Company, report.GeneratedAt.Format(time.RFC3339))
	for _, dept := range report.Departments {
		p.printf("\t\t\t\t\t\t\n")
		p.printf("%s\t\t\t\t\t\t\n", dept.Name)
		p.printf("ID\tName\tKind\tBase\tVariable\tTotal\t\n")
		for _, l := range dept.Lines {
			p.printf("%d\t%s\t%s\t%.2f\t%.2f\t%.2f\t\n", l.EmployeeID, l.Name, l.Kind, l.BaseSalary, l.Variable, l.Total)
		}
		p.printf("\t\t%d employees\tmin %.2f\tmax %.2f\t%.2f\t\n",
			dept.Stats.Count, dept.Stats.Min, dept.Stats.Max, dept.Stats.Total)
	}
	p.printf("\t\t\t\t\t\t\n")
	p.printf("Company\t\t%d employees\t\tavg %.2f\t%.2f\t\n", report.Headcount, report.Average, report.Total)

	if p.err != nil {
		return fmt.Errorf("writing text report: %w", p.err)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing text report: %w", err)
	}
	return nil
}

// printer keeps the first write error so the table can be written without
// checking every line.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
