package common

import (
	"encoding/json"
	"net/http"
	"time"

	"infinite-experiment/routeplanner/internal/constants"
	"infinite-experiment/routeplanner/internal/logging"
	"infinite-experiment/routeplanner/internal/models/dtos"
)

// RespondSuccess sends a standardized JSON success response.
func RespondSuccess(w http.ResponseWriter, initTime time.Time, message string, data any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	writeJSON(w, code, dtos.APIResponse{
		Status:       string(constants.APIStatusOk),
		Message:      message,
		ResponseTime: GetResponseTime(initTime),
		Data:         data,
	})
}

// RespondError sends a standardized JSON error response. Server errors
// (5xx) are logged and only message reaches the client; for client errors
// the error text is returned when present.
func RespondError(w http.ResponseWriter, initTime time.Time, err error, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	msg := message
	if code >= http.StatusInternalServerError {
		logging.Error(message, "status", code, "error", err)
	} else if err != nil && err.Error() != "" {
		msg = err.Error()
	}

	writeJSON(w, code, dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      msg,
		ResponseTime: GetResponseTime(initTime),
	})
}

// RespondErrorCode sends an error response for a known error code. An
// optional detail is appended to the code's message.
func RespondErrorCode(w http.ResponseWriter, initTime time.Time, errorCode string, statusCode int, detail ...string) {
	msg := constants.GetErrorMessage(errorCode)
	if len(detail) > 0 && detail[0] != "" {
		msg += ": " + detail[0]
	}

	writeJSON(w, statusCode, dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      msg,
		ErrorCode:    errorCode,
		ResponseTime: GetResponseTime(initTime),
	})
}

// writeJSON marshals data and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body dtos.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err)
	}
}
