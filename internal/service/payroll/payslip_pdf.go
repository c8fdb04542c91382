package payroll

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Chaithanyaistharla/hrm/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
)

func renderPayslipPDF(p payroll.Payslip) ([]byte, error) {
	period := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")

	name := p.EmployeeID
	if p.EmployeeName != nil {
		name = *p.EmployeeName
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", p.Status))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Base salary: %s %s", p.BaseSalary.StringFixed(2), p.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances: %s %s", p.Allowances.StringFixed(2), p.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %s %s", p.Deductions.StringFixed(2), p.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Unpaid leave (%d days): -%s %s", p.UnpaidLeaveDays, p.UnpaidLeaveDeducted.StringFixed(2), p.Currency))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net pay: %s %s", p.NetPay.StringFixed(2), p.Currency))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
