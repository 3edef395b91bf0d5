package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/payroll"
)

// RenderPayslip produces a single-page A4 payslip document. Amounts are
// printed in Kina exactly as stored; nothing is recomputed here.
func RenderPayslip(p *payroll.Payslip) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, "Payslip")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 11)
	name := p.WorkerID
	if p.WorkerName != nil {
		name = *p.WorkerName
	}
	doc.Cell(0, 7, fmt.Sprintf("Worker: %s", name))
	doc.Ln(6)
	if p.WorkerCode != nil {
		doc.Cell(0, 7, fmt.Sprintf("Employee code: %s", *p.WorkerCode))
		doc.Ln(6)
	}
	doc.Cell(0, 7, fmt.Sprintf("Period: %s to %s",
		p.PeriodStart.Format("2006-01-02"), p.PeriodEnd.Format("2006-01-02")))
	doc.Ln(6)
	if p.WorkerBank != nil && p.WorkerBankNo != nil {
		doc.Cell(0, 7, fmt.Sprintf("Paid to: %s %s", *p.WorkerBank, *p.WorkerBankNo))
		doc.Ln(6)
	}
	doc.Ln(4)

	line := func(label, amount string) {
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(90, 7, label, "", 0, "L", false, 0, "")
		doc.CellFormat(40, 7, amount, "", 1, "R", false, 0, "")
	}

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, "Earnings")
	doc.Ln(8)
	line(fmt.Sprintf("Regular pay (%s hrs @ K%s)",
		p.ApprovedHours.Sub(p.OvertimeHours), p.HourlyRate.StringFixed(2)),
		"K"+p.RegularPay.StringFixed(2))
	if p.OvertimeHours.IsPositive() {
		line(fmt.Sprintf("Overtime (%s hrs)", p.OvertimeHours), "K"+p.OvertimePay.StringFixed(2))
	}
	if p.AllowanceTotal.IsPositive() {
		line("Allowances", "K"+p.AllowanceTotal.StringFixed(2))
	}
	line("Gross earnings", "K"+p.GrossEarnings.StringFixed(2))
	doc.Ln(3)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, "Deductions")
	doc.Ln(8)
	line("PAYE (fortnightly)", "K"+p.FortnightlyPaye.StringFixed(2))
	line("Nasfund (employee)", "K"+p.NasfundDeduction.StringFixed(2))
	if p.OtherDeductions.IsPositive() {
		line("Other deductions", "K"+p.OtherDeductions.StringFixed(2))
	}
	doc.Ln(3)

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(90, 8, "Net pay", "T", 0, "L", false, 0, "")
	doc.CellFormat(40, 8, "K"+p.NetPay.StringFixed(2), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}
