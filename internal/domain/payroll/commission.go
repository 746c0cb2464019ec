package payroll

import "time"

// Commission is paid a base salary plus a commission fraction of the month's
// sales. Sales above the bonus threshold earn an extra 3% of sales, and the
// meal allowance is paid every month.
type Commission struct {
	Employee
	BaseSalary     float64
	SalesAmount    float64
	CommissionRate float64
}

type CommissionParams struct {
	ID             string
	Name           string
	HireDate       time.Time
	RiskRate       float64
	BaseSalary     float64
	SalesAmount    float64
	CommissionRate float64
}

func NewCommission(p CommissionParams) (*Commission, error) {
	emp := Employee{ID: p.ID, Name: p.Name, HireDate: p.HireDate, RiskRate: p.RiskRate}
	if err := emp.validate(time.Now()); err != nil {
		return nil, err
	}
	if err := nonNegative("baseSalary", p.BaseSalary); err != nil {
		return nil, err
	}
	if err := nonNegative("salesAmount", p.SalesAmount); err != nil {
		return nil, err
	}
	if p.CommissionRate < 0 || p.CommissionRate > 1 {
		return nil, &ValidationError{Field: "commissionRate", Reason: "must be a fraction between 0 and 1"}
	}
	return &Commission{
		Employee:       emp,
		BaseSalary:     p.BaseSalary,
		SalesAmount:    p.SalesAmount,
		CommissionRate: p.CommissionRate,
	}, nil
}

func (c *Commission) Scheme() string { return SchemeCommission }

// CommissionAmount returns the commission earned on the month's sales.
func (c *Commission) CommissionAmount() float64 {
	return c.SalesAmount * c.CommissionRate
}

func (c *Commission) GrossPay() float64 {
	return c.BaseSalary + c.CommissionAmount()
}

func (c *Commission) Bonuses(time.Time) float64 {
	bonus := MealAllowance
	if c.SalesAmount > SalesBonusThreshold {
		bonus += c.SalesAmount * SalesBonusRate
	}
	return bonus
}
