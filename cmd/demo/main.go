package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"nomina/internal/domain/payroll"
)

// Builds one employee per compensation scheme and prints the resulting
// payslips.
func main() {
	asOf := time.Now()

	salaried, err := payroll.NewSalaried(payroll.SalariedParams{
		ID:            "EMP-001",
		Name:          "Ana Torres",
		HireDate:      time.Date(2018, time.January, 15, 0, 0, 0, 0, time.UTC),
		MonthlySalary: 5_000_000,
	})
	check(err)

	hourly, err := payroll.NewHourly(payroll.HourlyParams{
		ID:                 "EMP-002",
		Name:               "Marta Ruiz",
		HireDate:           time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC),
		HourlyRate:         20_000,
		HoursWorked:        45,
		AcceptsSavingsFund: true,
	})
	check(err)

	commission, err := payroll.NewCommission(payroll.CommissionParams{
		ID:             "EMP-003",
		Name:           "Sara Vega",
		HireDate:       time.Date(2022, time.August, 1, 0, 0, 0, 0, time.UTC),
		BaseSalary:     1_000_000,
		SalesAmount:    25_000_000,
		CommissionRate: 0.05,
	})
	check(err)

	temporary, err := payroll.NewTemporary(payroll.TemporaryParams{
		ID:            "EMP-004",
		Name:          "Rita Salas",
		HireDate:      time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		MonthlySalary: 2_000_000,
		ContractEnd:   time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
	})
	check(err)

	for _, payee := range []payroll.Payee{salaried, hourly, commission, temporary} {
		printPayslip(payroll.BuildPayslip(payee, asOf))
	}

	if temporary.ContractActive(asOf) {
		fmt.Printf("Contract for %s ends in %d days\n", temporary.Name, temporary.ContractDaysRemaining(asOf))
	}
}

func printPayslip(slip payroll.Payslip) {
	fmt.Println(strings.Repeat("=", 56))
	fmt.Printf("%-12s %s (%s)\n", "Employee:", slip.Employee, slip.EmployeeID)
	fmt.Printf("%-12s %s\n", "Scheme:", slip.Scheme)
	fmt.Printf("%-12s %16.2f\n", "Gross:", slip.Gross)
	fmt.Printf("%-12s %16.2f\n", "Bonuses:", slip.Bonuses)
	if slip.Benefits > 0 {
		fmt.Printf("%-12s %16.2f\n", "Benefits:", slip.Benefits)
	}
	fmt.Printf("%-12s %16.2f\n", "Deductions:", slip.Deductions)
	fmt.Printf("%-12s %16.2f\n", "Net:", slip.Net)
}

func check(err error) {
	if err != nil {
		log.Fatalf("invalid employee: %v", err)
	}
}
