package payroll

import (
	"math"
	"time"
)

// Hourly is paid per hour worked, with hours beyond the standard week at
// 1.5x the base rate. It receives no bonuses; employees with more than one
// year of service may opt into a savings fund worth 2% of gross, which is
// a benefit rather than salary and is not part of the deduction basis.
type Hourly struct {
	Employee
	HourlyRate         float64
	HoursWorked        float64
	AcceptsSavingsFund bool
}

type HourlyParams struct {
	ID                 string
	Name               string
	HireDate           time.Time
	RiskRate           float64
	HourlyRate         float64
	HoursWorked        float64
	AcceptsSavingsFund bool
}

func NewHourly(p HourlyParams) (*Hourly, error) {
	emp := Employee{ID: p.ID, Name: p.Name, HireDate: p.HireDate, RiskRate: p.RiskRate}
	if err := emp.validate(time.Now()); err != nil {
		return nil, err
	}
	if err := nonNegative("hourlyRate", p.HourlyRate); err != nil {
		return nil, err
	}
	if err := nonNegative("hoursWorked", p.HoursWorked); err != nil {
		return nil, err
	}
	return &Hourly{
		Employee:           emp,
		HourlyRate:         p.HourlyRate,
		HoursWorked:        p.HoursWorked,
		AcceptsSavingsFund: p.AcceptsSavingsFund,
	}, nil
}

func (h *Hourly) Scheme() string { return SchemeHourly }

// RegularHours returns hours paid at the base rate, capped at the standard week.
func (h *Hourly) RegularHours() float64 {
	return math.Min(h.HoursWorked, StandardWeekHours)
}

// OvertimeHours returns hours beyond the standard week.
func (h *Hourly) OvertimeHours() float64 {
	return math.Max(h.HoursWorked-StandardWeekHours, 0)
}

func (h *Hourly) GrossPay() float64 {
	regular := h.RegularHours() * h.HourlyRate
	overtime := h.OvertimeHours() * h.HourlyRate * OvertimeMultiplier
	return regular + overtime
}

func (h *Hourly) Bonuses(time.Time) float64 { return 0 }

// Benefits returns the savings fund contribution when the employee opted in
// and has more than one full year of service. Paid on top of the floored
// net amount.
func (h *Hourly) Benefits(asOf time.Time) float64 {
	if !h.AcceptsSavingsFund || h.YearsOfService(asOf) <= SavingsFundMinYears {
		return 0
	}
	return h.GrossPay() * SavingsFundRate
}
