package httpapi

import (
	"net/http"

	"github.com/gibs11/robdronego/internal/domain"
)

// Result is the JSON envelope every endpoint returns.
// - code: 2000 on success, -1 on error
// - type: "success" | "error"
// - message: human-readable outcome
// - result: payload
type Result[T any] struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Result  T      `json:"result"`
}

const (
	ResultSuccess = 2000
	ResultError   = -1
)

func Ok[T any](result T) Result[T] {
	return Result[T]{Code: ResultSuccess, Type: "success", Message: "ok", Result: result}
}

func Fail(message string) Result[any] {
	return Result[any]{Code: ResultError, Type: "error", Message: message, Result: nil}
}

// statusFor maps the failure taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch domain.FailureOf(err) {
	case domain.FailureInvalidInput:
		return http.StatusBadRequest
	case domain.FailureEntityDoesNotExist:
		return http.StatusNotFound
	case domain.FailureEntityAlreadyExists:
		return http.StatusConflict
	case domain.FailureUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusServiceUnavailable
	}
}

func failErr(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), Fail(err.Error()))
}
