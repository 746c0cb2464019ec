package payroll

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// Service renders payslip documents for the report layer.
type Service struct {
	dir string
}

func NewService(dir string) *Service {
	return &Service{dir: dir}
}

// RenderPDF writes the payslip to <dir>/<id>.pdf and returns the path.
func (s *Service) RenderPDF(slip Payslip) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(s.dir, slip.ID+".pdf")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", slip.Employee, slip.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Scheme: %s", slip.Scheme))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("As of: %s", slip.AsOf.Format("2006-01-02")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %.2f", slip.Gross))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Bonuses: %.2f", slip.Bonuses))
	pdf.Ln(7)
	if slip.Benefits > 0 {
		pdf.Cell(0, 8, fmt.Sprintf("Benefits: %.2f", slip.Benefits))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %.2f", slip.Deductions))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f", slip.Net))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}

// PayslipPath resolves a previously rendered payslip by id.
func (s *Service) PayslipPath(id string) (string, error) {
	path := filepath.Join(s.dir, id+".pdf")
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}
