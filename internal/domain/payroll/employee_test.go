package payroll

import (
	"errors"
	"testing"
	"time"
)

func TestYearsOfServiceCountsFullYears(t *testing.T) {
	emp := Employee{HireDate: time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC)}

	before := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)
	if got := emp.YearsOfService(before); got != 5 {
		t.Fatalf("expected 5 years before the anniversary, got %d", got)
	}

	onAnniversary := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	if got := emp.YearsOfService(onAnniversary); got != 6 {
		t.Fatalf("expected 6 years on the anniversary, got %d", got)
	}
}

func TestFutureHireDateRejected(t *testing.T) {
	future := time.Now().AddDate(0, 0, 7)

	_, err := NewSalaried(SalariedParams{ID: "S", Name: "s", HireDate: future, MonthlySalary: 1})
	assertValidationField(t, err, "hireDate")

	_, err = NewHourly(HourlyParams{ID: "H", Name: "h", HireDate: future, HourlyRate: 1})
	assertValidationField(t, err, "hireDate")

	_, err = NewCommission(CommissionParams{ID: "C", Name: "c", HireDate: future, BaseSalary: 1})
	assertValidationField(t, err, "hireDate")

	_, err = NewTemporary(TemporaryParams{
		ID: "T", Name: "t", HireDate: future,
		MonthlySalary: 1, ContractEnd: future.AddDate(1, 0, 0),
	})
	assertValidationField(t, err, "hireDate")
}

func TestNegativeAmountsRejected(t *testing.T) {
	hired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewSalaried(SalariedParams{ID: "S", Name: "s", HireDate: hired, MonthlySalary: -1})
	assertValidationField(t, err, "monthlySalary")

	_, err = NewHourly(HourlyParams{ID: "H", Name: "h", HireDate: hired, HourlyRate: -1})
	assertValidationField(t, err, "hourlyRate")

	_, err = NewHourly(HourlyParams{ID: "H", Name: "h", HireDate: hired, HourlyRate: 1, HoursWorked: -5})
	assertValidationField(t, err, "hoursWorked")

	_, err = NewCommission(CommissionParams{ID: "C", Name: "c", HireDate: hired, BaseSalary: -1})
	assertValidationField(t, err, "baseSalary")

	_, err = NewCommission(CommissionParams{ID: "C", Name: "c", HireDate: hired, SalesAmount: -1})
	assertValidationField(t, err, "salesAmount")

	_, err = NewTemporary(TemporaryParams{
		ID: "T", Name: "t", HireDate: hired,
		MonthlySalary: -1, ContractEnd: hired.AddDate(1, 0, 0),
	})
	assertValidationField(t, err, "monthlySalary")
}

func TestCommissionRateMustBeFraction(t *testing.T) {
	hired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewCommission(CommissionParams{ID: "C", Name: "c", HireDate: hired, CommissionRate: 1.5})
	assertValidationField(t, err, "commissionRate")

	_, err = NewCommission(CommissionParams{ID: "C", Name: "c", HireDate: hired, CommissionRate: -0.1})
	assertValidationField(t, err, "commissionRate")
}

func TestTemporaryContractEndMustFollowHireDate(t *testing.T) {
	hired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewTemporary(TemporaryParams{
		ID: "T", Name: "t", HireDate: hired,
		MonthlySalary: 1, ContractEnd: hired,
	})
	assertValidationField(t, err, "contractEnd")
}

func TestIdentityRequired(t *testing.T) {
	hired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewSalaried(SalariedParams{Name: "s", HireDate: hired, MonthlySalary: 1})
	assertValidationField(t, err, "id")

	_, err = NewSalaried(SalariedParams{ID: "S", HireDate: hired, MonthlySalary: 1})
	assertValidationField(t, err, "name")
}

func TestRiskRateMustBeFraction(t *testing.T) {
	hired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewSalaried(SalariedParams{ID: "S", Name: "s", HireDate: hired, RiskRate: 1.2, MonthlySalary: 1})
	assertValidationField(t, err, "riskRate")
}

func TestTemporaryContractStatus(t *testing.T) {
	emp, err := NewTemporary(TemporaryParams{
		ID: "T", Name: "t",
		HireDate:      time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		MonthlySalary: 1,
		ContractEnd:   time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	asOf := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	if !emp.ContractActive(asOf) {
		t.Fatal("expected contract to be active")
	}
	if got := emp.ContractDaysRemaining(asOf); got != 10 {
		t.Fatalf("expected 10 days remaining, got %d", got)
	}

	after := time.Date(2024, time.July, 11, 0, 0, 0, 0, time.UTC)
	if emp.ContractActive(after) {
		t.Fatal("expected contract to be expired")
	}
	if got := emp.ContractDaysRemaining(after); got >= 0 {
		t.Fatalf("expected negative days remaining, got %d", got)
	}
}

func assertValidationField(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error on %s, got nil", field)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if verr.Field != field {
		t.Fatalf("expected error on field %s, got %s", field, verr.Field)
	}
}
