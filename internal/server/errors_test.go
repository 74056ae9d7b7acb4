package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-screener/internal/agent"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&agent.UnavailableError{State: agent.StateUnavailable}, http.StatusServiceUnavailable},
		{&agent.NotFoundError{Kind: "candidate", ID: "abc"}, http.StatusNotFound},
		{&agent.ConfigurationError{Resource: "sox", Detail: "missing"}, http.StatusInternalServerError},
		{&agent.RecognitionError{Stage: "capture", Err: errors.New("device busy")}, http.StatusBadGateway},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestHTTPStatusWrappedError(t *testing.T) {
	err := fmt.Errorf("interview aborted: %w", &agent.UnavailableError{State: agent.StateInitializing})
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(err))
}
