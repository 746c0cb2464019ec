package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"nomina/internal/domain/payroll"
	"nomina/internal/platform/config"
	"nomina/internal/platform/metrics"
	"nomina/internal/transport/http/api"
	"nomina/internal/transport/http/middleware"
	"nomina/internal/transport/http/shared"
)

type Handler struct {
	Service  *payroll.Service
	Config   config.Config
	Metrics  *metrics.Collector
	validate *validator.Validate
}

func NewHandler(service *payroll.Service, cfg config.Config, collector *metrics.Collector) *Handler {
	return &Handler{
		Service:  service,
		Config:   cfg,
		Metrics:  collector,
		validate: validator.New(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Post("/calculate", h.handleCalculate)
		r.Post("/payslips", h.handleCreatePayslip)
		r.Get("/payslips/{payslipID}/download", h.handleDownloadPayslip)
	})
}

type calculatePayload struct {
	Scheme             string  `json:"scheme" validate:"required,oneof=salaried hourly commission temporary"`
	ID                 string  `json:"id" validate:"required"`
	Name               string  `json:"name" validate:"required"`
	HireDate           string  `json:"hireDate" validate:"required"`
	RiskClass          int     `json:"riskClass" validate:"gte=0,lte=5"`
	AsOf               string  `json:"asOf"`
	MonthlySalary      float64 `json:"monthlySalary"`
	HourlyRate         float64 `json:"hourlyRate"`
	HoursWorked        float64 `json:"hoursWorked"`
	AcceptsSavingsFund bool    `json:"acceptsSavingsFund"`
	BaseSalary         float64 `json:"baseSalary"`
	SalesAmount        float64 `json:"salesAmount"`
	CommissionRate     float64 `json:"commissionRate"`
	ContractEnd        string  `json:"contractEnd"`
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	slip, ok := h.buildPayslip(w, r)
	if !ok {
		return
	}
	h.Metrics.RecordCalculation()
	api.Success(w, slip, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreatePayslip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	slip, ok := h.buildPayslip(w, r)
	if !ok {
		return
	}
	h.Metrics.RecordCalculation()

	path, err := h.Service.RenderPDF(slip)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "render_failed", "payslip rendering failed", requestID)
		return
	}

	api.Created(w, map[string]any{
		"payslip": slip,
		"file":    path,
		"fileUrl": fmt.Sprintf("/api/v1/payroll/payslips/%s/download", slip.ID),
	}, requestID)
}

func (h *Handler) handleDownloadPayslip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	payslipID := chi.URLParam(r, "payslipID")
	if _, err := uuid.Parse(payslipID); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "payslip id must be a UUID", requestID)
		return
	}

	path, err := h.Service.PayslipPath(payslipID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "payslip not found", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", payslipID))
	http.ServeFile(w, r, path)
}

// buildPayslip decodes, validates and evaluates a calculation request.
// Writes the error response itself when the payload is rejected.
func (h *Handler) buildPayslip(w http.ResponseWriter, r *http.Request) (payroll.Payslip, bool) {
	requestID := middleware.GetRequestID(r.Context())

	var payload calculatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", requestID)
		return payroll.Payslip{}, false
	}

	if err := h.validate.Struct(payload); err != nil {
		shared.FailValidation(w, requestID, shared.IssuesFromValidator(err))
		return payroll.Payslip{}, false
	}

	hireDate, err := shared.ParseDate(payload.HireDate)
	if err != nil {
		shared.FailValidation(w, requestID, []shared.FieldIssue{{Field: "hireDate", Reason: "must be a valid date in YYYY-MM-DD format"}})
		return payroll.Payslip{}, false
	}

	asOf := time.Now()
	if payload.AsOf != "" {
		asOf, err = shared.ParseDate(payload.AsOf)
		if err != nil {
			shared.FailValidation(w, requestID, []shared.FieldIssue{{Field: "asOf", Reason: "must be a valid date in YYYY-MM-DD format"}})
			return payroll.Payslip{}, false
		}
	}

	payee, err := h.buildPayee(payload, hireDate)
	if err != nil {
		var verr *payroll.ValidationError
		if errors.As(err, &verr) {
			shared.FailValidation(w, requestID, []shared.FieldIssue{{Field: verr.Field, Reason: verr.Reason}})
			return payroll.Payslip{}, false
		}
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), requestID)
		return payroll.Payslip{}, false
	}

	return payroll.BuildPayslip(payee, asOf), true
}

func (h *Handler) buildPayee(payload calculatePayload, hireDate time.Time) (payroll.Payee, error) {
	riskRate := h.Config.RiskRate(payload.RiskClass)

	switch payload.Scheme {
	case payroll.SchemeSalaried:
		return payroll.NewSalaried(payroll.SalariedParams{
			ID:            payload.ID,
			Name:          payload.Name,
			HireDate:      hireDate,
			RiskRate:      riskRate,
			MonthlySalary: payload.MonthlySalary,
		})
	case payroll.SchemeHourly:
		return payroll.NewHourly(payroll.HourlyParams{
			ID:                 payload.ID,
			Name:               payload.Name,
			HireDate:           hireDate,
			RiskRate:           riskRate,
			HourlyRate:         payload.HourlyRate,
			HoursWorked:        payload.HoursWorked,
			AcceptsSavingsFund: payload.AcceptsSavingsFund,
		})
	case payroll.SchemeCommission:
		return payroll.NewCommission(payroll.CommissionParams{
			ID:             payload.ID,
			Name:           payload.Name,
			HireDate:       hireDate,
			RiskRate:       riskRate,
			BaseSalary:     payload.BaseSalary,
			SalesAmount:    payload.SalesAmount,
			CommissionRate: payload.CommissionRate,
		})
	case payroll.SchemeTemporary:
		contractEnd, err := shared.ParseDate(payload.ContractEnd)
		if err != nil || contractEnd.IsZero() {
			return nil, &payroll.ValidationError{Field: "contractEnd", Reason: "must be a valid date in YYYY-MM-DD format"}
		}
		return payroll.NewTemporary(payroll.TemporaryParams{
			ID:            payload.ID,
			Name:          payload.Name,
			HireDate:      hireDate,
			RiskRate:      riskRate,
			MonthlySalary: payload.MonthlySalary,
			ContractEnd:   contractEnd,
		})
	default:
		return nil, fmt.Errorf("unknown scheme %q", payload.Scheme)
	}
}
