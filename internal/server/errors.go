// Package server provides the HTTP REST API for career insights.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/career-pulse/internal/insights"
)

// ErrUnknownTopic indicates the requested topic is not served
type ErrUnknownTopic struct {
	Name string
}

func (e *ErrUnknownTopic) Error() string {
	return fmt.Sprintf("unknown topic: %s", e.Name)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		unknownTopic *ErrUnknownTopic
		validation   *ErrValidation
		upstream     *insights.UpstreamUnavailableError
		parseErr     *insights.ParseError
		shapeErr     *insights.ShapeError
	)
	switch {
	case errors.As(err, &unknownTopic):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &upstream):
		return http.StatusServiceUnavailable
	case errors.As(err, &parseErr), errors.As(err, &shapeErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
