package response

import (
	"encoding/json"
	"net/http"

	"wehouse/shared/constant"
	"wehouse/shared/failure"
	"wehouse/shared/logger"
)

// Envelope is the body of every response the API writes.
type Envelope struct {
	Status     string              `json:"status"`
	StatusCode int                 `json:"statusCode"`
	Message    string              `json:"message"`
	Data       any                 `json:"data,omitempty"`
	Errors     []failure.Violation `json:"errors,omitempty"`
}

// WithSuccess sends a success envelope carrying data. A nil data omits the field.
func WithSuccess(writer http.ResponseWriter, code int, message string, data any) {
	response(writer, code, Envelope{
		Status:     constant.ResponseStatusSuccess,
		StatusCode: code,
		Message:    message,
		Data:       data,
	})
}

// WithMessage sends a success envelope with a message only.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	WithSuccess(writer, code, message, nil)
}

// WithNoContent sends a 204 without a body.
func WithNoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// WithErrorMessage sends an error envelope with the given code and message.
func WithErrorMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{
		Status:     constant.ResponseStatusError,
		StatusCode: code,
		Message:    message,
	})
}

// WithError sends an error envelope for err. A *failure.Failure keeps its own
// code, message and violations; anything else is logged and answered with the
// fallback code and message so no internal detail reaches the client.
func WithError(writer http.ResponseWriter, err error, fallbackCode int, fallbackMessage string) {
	fail, ok := failure.As(err)
	if !ok {
		logger.ErrorWithStack(err)
		WithErrorMessage(writer, fallbackCode, fallbackMessage)

		return
	}

	response(writer, fail.Code, Envelope{
		Status:     constant.ResponseStatusError,
		StatusCode: fail.Code,
		Message:    fail.Message,
		Errors:     fail.Violations,
	})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func WithRouteNotFound(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusNotFound, constant.ResponseErrorRouteNotFound)
}

func WithMethodNotAllowed(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusMethodNotAllowed, constant.ResponseErrorMethodNotAllowed)
}

func response(writer http.ResponseWriter, code int, payload Envelope) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
