package dto

import (
	"net/http"

	"github.com/hjumpers/backend/internal/domain/shared"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes. Conflicts
// map to 400, not 409: the storefront clients have always keyed off 400 for
// anything the user can fix in the form.
var ErrorCodeHTTPStatus = map[string]int{
	shared.CodeValidation:  http.StatusBadRequest,
	shared.CodeConflict:    http.StatusBadRequest,
	shared.CodeNotFound:    http.StatusNotFound,
	shared.CodePersistence: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes are internal errors.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
