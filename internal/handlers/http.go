package handlers

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ekazakov/tiersort/internal/errors"
	"github.com/ekazakov/tiersort/internal/services"
)

// Error codes for standardized API error responses
const (
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeInternalServer  = "INTERNAL_SERVER_ERROR"
	ErrCodeGamesClosed     = "GAMES_CLOSED"
	ErrCodeGameNotFinished = "GAME_NOT_FINISHED"
)

// APIError represents an error with an HTTP status code and error code
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrBadRequest     = &APIError{Status: http.StatusBadRequest, Code: ErrCodeBadRequest, Message: "Bad request"}
	ErrUnauthorized   = &APIError{Status: http.StatusUnauthorized, Code: ErrCodeUnauthorized, Message: "Unauthorized"}
	ErrNotFound       = &APIError{Status: http.StatusNotFound, Code: ErrCodeNotFound, Message: "Not found"}
	ErrInternalServer = &APIError{Status: http.StatusInternalServerError, Code: ErrCodeInternalServer, Message: "Internal server error"}
)

// NewAPIError creates a new API error with custom message and code
func NewAPIError(status int, code, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

// BadRequest creates a 400 error with custom message
func BadRequest(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: ErrCodeBadRequest, Message: message}
}

// Unauthorized creates a 401 error with custom message
func Unauthorized(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Code: ErrCodeUnauthorized, Message: message}
}

// NotFound creates a 404 error with custom message
func NotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Code: ErrCodeNotFound, Message: message}
}

// Conflict creates a 409 error with custom message
func Conflict(message string) *APIError {
	return &APIError{Status: http.StatusConflict, Code: ErrCodeConflict, Message: message}
}

// InternalError creates a 500 error, logs the original error
func InternalError(err error) *APIError {
	log.Printf("Internal error: %v", err)
	return &APIError{Status: http.StatusInternalServerError, Code: ErrCodeInternalServer, Message: "Internal server error"}
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondOK writes a 200 OK JSON response
func respondOK(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, data)
}

// respondCreated writes a 201 Created JSON response
func respondCreated(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusCreated, data)
}

// respondSuccess writes a 200 OK with a message
func respondSuccess(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

// respondDeleted writes a 204 No Content response
func respondDeleted(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, err error) {
	if apiErr, ok := err.(*APIError); ok {
		respondJSON(w, apiErr.Status, apiErr)
		return
	}
	apiErr := ToAPIError(err)
	respondJSON(w, apiErr.Status, apiErr)
}

// decodeJSON decodes JSON from request body into the target
func decodeJSON(r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		if err == io.EOF {
			return BadRequest("Request body is empty")
		}
		return BadRequest("Invalid JSON: " + err.Error())
	}
	return nil
}

// parseIDParam extracts and parses an int64 URL parameter
func parseIDParam(r *http.Request, name string) (int64, error) {
	param := chi.URLParam(r, name)
	if param == "" {
		return 0, BadRequest("Missing " + name + " parameter")
	}
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, BadRequest("Invalid " + name + " parameter")
	}
	return id, nil
}

// ToAPIError converts service errors to appropriate API errors
func ToAPIError(err error) *APIError {
	// Check for application errors first
	var appErr *errors.Error
	if stderrors.As(err, &appErr) {
		switch appErr.Kind {
		case errors.ErrNotFound:
			return NotFound(appErr.Message)
		case errors.ErrValidation, errors.ErrInvalidInput:
			return &APIError{Status: http.StatusBadRequest, Code: ErrCodeValidation, Message: appErr.Message}
		case errors.ErrConflict:
			return Conflict(appErr.Message)
		default:
			return InternalError(err)
		}
	}

	if svcErr, ok := err.(*services.ServiceError); ok {
		switch svcErr {
		case services.ErrGamesClosed:
			return &APIError{Status: http.StatusForbidden, Code: ErrCodeGamesClosed, Message: svcErr.Message}
		case services.ErrGameNotFinished:
			return &APIError{Status: http.StatusConflict, Code: ErrCodeGameNotFinished, Message: svcErr.Message}
		}
		return BadRequest(svcErr.Message)
	}

	return InternalError(err)
}
