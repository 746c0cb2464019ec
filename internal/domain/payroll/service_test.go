package payroll

import (
	"strings"
	"testing"
	"time"
)

func TestRenderPDFWritesPayslip(t *testing.T) {
	service := NewService(t.TempDir())

	emp := mustSalaried(t, 5_000_000)
	slip := BuildPayslip(emp, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC))

	path, err := service.RenderPDF(slip)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.HasSuffix(path, slip.ID+".pdf") {
		t.Fatalf("unexpected path: %s", path)
	}

	resolved, err := service.PayslipPath(slip.ID)
	if err != nil {
		t.Fatalf("expected payslip to resolve: %v", err)
	}
	if resolved != path {
		t.Fatalf("expected %s, got %s", path, resolved)
	}
}

func TestPayslipPathUnknownID(t *testing.T) {
	service := NewService(t.TempDir())
	if _, err := service.PayslipPath("missing"); err == nil {
		t.Fatal("expected error for unknown payslip id")
	}
}
