package payroll

import "time"

// Temporary is a fixed monthly salary scheme under a fixed-term contract.
// No bonuses or additional benefits apply, regardless of tenure.
type Temporary struct {
	Employee
	MonthlySalary float64
	ContractEnd   time.Time
}

type TemporaryParams struct {
	ID            string
	Name          string
	HireDate      time.Time
	RiskRate      float64
	MonthlySalary float64
	ContractEnd   time.Time
}

func NewTemporary(p TemporaryParams) (*Temporary, error) {
	emp := Employee{ID: p.ID, Name: p.Name, HireDate: p.HireDate, RiskRate: p.RiskRate}
	if err := emp.validate(time.Now()); err != nil {
		return nil, err
	}
	if err := nonNegative("monthlySalary", p.MonthlySalary); err != nil {
		return nil, err
	}
	if !p.ContractEnd.After(p.HireDate) {
		return nil, &ValidationError{Field: "contractEnd", Reason: "must be after the hire date"}
	}
	return &Temporary{Employee: emp, MonthlySalary: p.MonthlySalary, ContractEnd: p.ContractEnd}, nil
}

func (t *Temporary) Scheme() string { return SchemeTemporary }

func (t *Temporary) GrossPay() float64 { return t.MonthlySalary }

func (t *Temporary) Bonuses(time.Time) float64 { return 0 }

// ContractActive reports whether the contract is still in force as of the
// given date.
func (t *Temporary) ContractActive(asOf time.Time) bool {
	return !asOf.After(t.ContractEnd)
}

// ContractDaysRemaining returns whole days until the contract ends.
// Negative once the contract has expired.
func (t *Temporary) ContractDaysRemaining(asOf time.Time) int {
	return int(t.ContractEnd.Sub(asOf).Hours() / 24)
}
