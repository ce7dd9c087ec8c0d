package errors

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code" example:"invalid_anchor"`
	Display string         `json:"message" example:"Anchor day must be between 1 and 31"`
	Details map[string]any `json:"details,omitempty"`
}

// NewErrorDetail builds the caller-facing view of err from its code, hints and safe details.
func NewErrorDetail(err error) ErrorDetail {
	return ErrorDetail{
		Code:    Code(err),
		Display: DisplayMessage(err),
		Details: SafeDetails(err),
	}
}

// DisplayMessage returns the first non-empty hint attached to err.
func DisplayMessage(err error) string {
	// GetAllHints is post-order traversal
	for _, hint := range errors.GetAllHints(err) {
		if hint = strings.TrimSpace(hint); hint != "" {
			return hint
		}
	}
	return "An unexpected error occurred"
}

// SafeDetails collects the details added with WithReportableDetails.
func SafeDetails(err error) map[string]any {
	details := make(map[string]any)

	for _, sdp := range errors.GetAllSafeDetails(err) {
		for _, payload := range sdp.SafeDetails {
			if len(payload) > 9 && strings.HasPrefix(payload, "__json__:") {
				var jsonDetails map[string]any
				if err := json.Unmarshal([]byte(payload[9:]), &jsonDetails); err == nil {
					for k, v := range jsonDetails {
						details[k] = v
					}
				}
			}
		}
	}

	if len(details) == 0 {
		return nil
	}
	return details
}
