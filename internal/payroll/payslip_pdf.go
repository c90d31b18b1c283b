package payroll

import (
	"bytes"
	"fmt"
	"strings"
)

func payslipLines(p PayrollResponse) []string {
	lines := []string{
		"PAYSLIP",
		"",
		fmt.Sprintf("Employee: %s (%s)", p.EmployeeName, p.EmployeeCode),
	}
	if p.Department != "" || p.Position != "" {
		lines = append(lines, fmt.Sprintf("Department: %s    Position: %s", p.Department, p.Position))
	}
	lines = append(lines,
		fmt.Sprintf("Pay period: %s", p.PayPeriod),
		fmt.Sprintf("Status: %s", p.Status),
		"",
		fmt.Sprintf("Gross pay:            %12.2f", p.GrossPay),
		fmt.Sprintf("Tax:                  %12.2f", p.TaxDeduction),
		fmt.Sprintf("Insurance:            %12.2f", p.InsuranceDeduction),
		fmt.Sprintf("Other deductions:     %12.2f", p.OtherDeductions),
		fmt.Sprintf("Total deductions:     %12.2f", p.Deductions),
		"",
		fmt.Sprintf("NET PAY:              %12.2f", p.NetPay),
	)
	if p.ProcessedAt != nil {
		lines = append(lines, "", "Paid at: "+*p.ProcessedAt)
	}
	return lines
}

// buildPayslipPDF menulis PDF 1.4 satu halaman dengan font Courier bawaan.
func buildPayslipPDF(lines []string) []byte {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 11 Tf\n14 TL\n50 790 Td\n")
	for i, line := range lines {
		if i > 0 {
			content.WriteString("T* ")
		}
		fmt.Fprintf(&content, "(%s) Tj\n", pdfEscape(line))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(objects)+1)
	out.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xref)

	return out.Bytes()
}

func pdfEscape(v string) string {
	// Type1 font standar hanya aman untuk ASCII
	v = strings.Map(func(r rune) rune {
		if r < 32 || r > 126 {
			return '?'
		}
		return r
	}, v)
	return strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`).Replace(v)
}
