package httperr

import (
	"errors"
	"net/http"
)

// Business error codes used by the booking engine and auth service. The
// HTTP layer maps every code to exactly one status; business failures are
// never flattened into a 200 with an error field.
const (
	CodeValidation         = "validation_error"
	CodeInvalidReference   = "invalid_reference"
	CodeTimeConflict       = "time_conflict"
	CodeOutsideSchedule    = "outside_schedule"
	CodeNotFound           = "not_found"
	CodeInvalidCredentials = "invalid_credentials"
)

var statusByCode = map[string]int{
	CodeValidation:         http.StatusBadRequest,
	CodeInvalidReference:   http.StatusUnprocessableEntity,
	CodeTimeConflict:       http.StatusConflict,
	CodeOutsideSchedule:    http.StatusUnprocessableEntity,
	CodeNotFound:           http.StatusNotFound,
	CodeInvalidCredentials: http.StatusUnauthorized,
}

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Status resolves the HTTP status for a business error code. Unknown codes
// fall back to 400.
func Status(code string) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return http.StatusBadRequest
}
