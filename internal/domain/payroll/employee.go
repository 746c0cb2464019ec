package payroll

import (
	"strings"
	"time"
)

// Employee carries the identity and the deduction rule shared by every
// compensation scheme. Concrete schemes embed it and supply their own
// gross-pay and bonus behavior.
type Employee struct {
	ID       string
	Name     string
	HireDate time.Time
	// RiskRate is the occupational-risk (ARL) deduction fraction resolved
	// from the employee's risk classification. Zero when unclassified.
	RiskRate float64
}

// Profile returns the shared identity fields. Promoted through embedding,
// so every concrete scheme satisfies Payee.
func (e Employee) Profile() Employee { return e }

// YearsOfService returns the full years elapsed between the hire date and
// asOf, not counting the current year until the anniversary has passed.
func (e Employee) YearsOfService(asOf time.Time) int {
	years := asOf.Year() - e.HireDate.Year()
	if e.HireDate.AddDate(years, 0, 0).After(asOf) {
		years--
	}
	return years
}

// Deductions applies the mandatory rules common to all schemes: social
// security and pension at 4% of gross, plus ARL at the employee's risk rate.
// Schemes inherit this through embedding; a future scheme with a different
// base rule can shadow it.
func (e Employee) Deductions(gross float64) float64 {
	return gross * (SocialSecurityRate + e.RiskRate)
}

func (e Employee) validate(now time.Time) error {
	if strings.TrimSpace(e.ID) == "" {
		return &ValidationError{Field: "id", Reason: "is required"}
	}
	if strings.TrimSpace(e.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if e.HireDate.IsZero() {
		return &ValidationError{Field: "hireDate", Reason: "is required"}
	}
	if e.HireDate.After(now) {
		return &ValidationError{Field: "hireDate", Reason: "must not be in the future"}
	}
	if e.RiskRate < 0 || e.RiskRate >= 1 {
		return &ValidationError{Field: "riskRate", Reason: "must be a fraction between 0 and 1"}
	}
	return nil
}

func nonNegative(field string, value float64) error {
	if value < 0 {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return nil
}
