package payroll

import (
	"time"

	"github.com/google/uuid"
)

// Payslip is the computed pay breakdown handed to display and report
// collaborators.
type Payslip struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Employee    string    `json:"employee"`
	Scheme      string    `json:"scheme"`
	Gross       float64   `json:"gross"`
	Bonuses     float64   `json:"bonuses"`
	Benefits    float64   `json:"benefits"`
	Deductions  float64   `json:"deductions"`
	Net         float64   `json:"net"`
	AsOf        time.Time `json:"asOf"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// BuildPayslip evaluates the payee as of the given date and returns the
// full breakdown.
func BuildPayslip(p Payee, asOf time.Time) Payslip {
	gross := p.GrossPay()
	benefits := 0.0
	if provider, ok := p.(BenefitProvider); ok {
		benefits = provider.Benefits(asOf)
	}
	profile := p.Profile()
	return Payslip{
		ID:          uuid.NewString(),
		EmployeeID:  profile.ID,
		Employee:    profile.Name,
		Scheme:      p.Scheme(),
		Gross:       gross,
		Bonuses:     p.Bonuses(asOf),
		Benefits:    benefits,
		Deductions:  p.Deductions(gross),
		Net:         NetPay(p, asOf),
		AsOf:        asOf,
		GeneratedAt: time.Now().UTC(),
	}
}
