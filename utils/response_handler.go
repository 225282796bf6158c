package utils

import (
	"encoding/json"
	"net/http"

	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
)

// SendOK writes a success envelope. The payload struct is expected to carry
// its own `ok` field (see schemas/response.go).
func SendOK(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// SendError writes the failure envelope {ok:false, error:{message}}. When
// internalErrorCode is non-zero the generic internal message wins over
// whatever was passed in message.
func SendError(w http.ResponseWriter, statusCode int, message string, internalErrorCode int) {
	if internalErrorCode != 0 {
		message = SendInternalError(internalErrorCode)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(schemas.ErrorResponse{
		OK:    false,
		Error: schemas.ApiError{Message: message},
	})
}
