package payroll

import "time"

// Calculator is the contract every compensation scheme satisfies.
type Calculator interface {
	// GrossPay returns pay before bonuses and deductions.
	GrossPay() float64
	// Bonuses returns the total bonus amount as of the given date.
	Bonuses(asOf time.Time) float64
	// Deductions returns the mandatory deductions for a gross basis.
	Deductions(gross float64) float64
}

// BenefitProvider is satisfied by schemes that pay benefits on top of the
// floored net amount instead of inside the bonus basis.
type BenefitProvider interface {
	Benefits(asOf time.Time) float64
}

// Payee couples the calculation contract with employee identity so callers
// can build payslips without knowing the concrete scheme.
type Payee interface {
	Calculator
	Scheme() string
	Profile() Employee
}

// NetPay composes gross pay, bonuses and deductions, clamps the result at
// zero, then adds any floor-exempt benefits. Never negative.
func NetPay(c Calculator, asOf time.Time) float64 {
	gross := c.GrossPay()
	net := gross + c.Bonuses(asOf) - c.Deductions(gross)
	if net < 0 {
		net = 0
	}
	if provider, ok := c.(BenefitProvider); ok {
		net += provider.Benefits(asOf)
	}
	return net
}
