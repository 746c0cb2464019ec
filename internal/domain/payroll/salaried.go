package payroll

import "time"

// Salaried is a fixed monthly salary scheme. It pays a seniority bonus of
// 10% of salary after five full years of service and the meal allowance
// every month.
type Salaried struct {
	Employee
	MonthlySalary float64
}

type SalariedParams struct {
	ID            string
	Name          string
	HireDate      time.Time
	RiskRate      float64
	MonthlySalary float64
}

func NewSalaried(p SalariedParams) (*Salaried, error) {
	emp := Employee{ID: p.ID, Name: p.Name, HireDate: p.HireDate, RiskRate: p.RiskRate}
	if err := emp.validate(time.Now()); err != nil {
		return nil, err
	}
	if err := nonNegative("monthlySalary", p.MonthlySalary); err != nil {
		return nil, err
	}
	return &Salaried{Employee: emp, MonthlySalary: p.MonthlySalary}, nil
}

func (s *Salaried) Scheme() string { return SchemeSalaried }

func (s *Salaried) GrossPay() float64 { return s.MonthlySalary }

func (s *Salaried) Bonuses(asOf time.Time) float64 {
	bonus := MealAllowance
	if s.YearsOfService(asOf) > SeniorityBonusMinYears {
		bonus += s.MonthlySalary * SeniorityBonusRate
	}
	return bonus
}
