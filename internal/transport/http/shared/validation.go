package shared

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"nomina/internal/transport/http/api"
)

type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// IssuesFromValidator flattens validator.ValidationErrors into field issues
// using lower-camel field names to match the JSON payload.
func IssuesFromValidator(err error) []FieldIssue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldIssue{{Field: "", Reason: err.Error()}}
	}
	issues := make([]FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, FieldIssue{
			Field:  lowerFirst(fe.Field()),
			Reason: "failed on the '" + fe.Tag() + "' rule",
		})
	}
	return issues
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func FailValidation(w http.ResponseWriter, requestID string, issues []FieldIssue) {
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payload validation failed",
		map[string]any{"fields": issues},
		requestID,
	)
}
