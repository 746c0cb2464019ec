package payroll

const (
	SchemeSalaried   = "salaried"
	SchemeHourly     = "hourly"
	SchemeCommission = "commission"
	SchemeTemporary  = "temporary"

	// SocialSecurityRate is the social security and pension deduction
	// applied to gross pay under every scheme.
	SocialSecurityRate = 0.04

	// MealAllowance is the fixed monthly benefit paid to salaried and
	// commission employees.
	MealAllowance = 1_000_000.0

	SeniorityBonusRate     = 0.10
	SeniorityBonusMinYears = 5

	StandardWeekHours  = 40.0
	OvertimeMultiplier = 1.5

	SavingsFundRate     = 0.02
	SavingsFundMinYears = 1

	SalesBonusThreshold = 20_000_000.0
	SalesBonusRate      = 0.03
)
