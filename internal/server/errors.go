package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/interview-screener/internal/agent"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var unavailable *agent.UnavailableError
	var notFound *agent.NotFoundError
	var configErr *agent.ConfigurationError
	var recErr *agent.RecognitionError

	switch {
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &configErr):
		return http.StatusInternalServerError
	case errors.As(err, &recErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
