package insights

import (
	"errors"
	"fmt"

	"github.com/jonathan/career-pulse/internal/types"
)

// UpstreamUnavailableError is returned when the completion service has no
// credential configured or the call itself failed
type UpstreamUnavailableError struct {
	Message string
	Cause   error
}

func (e *UpstreamUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("completion service unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("completion service unavailable: %s", e.Message)
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Cause
}

// ParseError is returned when a completion is not well-formed JSON
type ParseError struct {
	Message string
	Snippet string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ShapeError is returned when well-formed JSON lacks the structure a topic requires
type ShapeError struct {
	Topic   types.Topic
	Message string
	Cause   error
}

func (e *ShapeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("shape error in %s: %s: %v", e.Topic, e.Message, e.Cause)
	}
	return fmt.Sprintf("shape error in %s: %s", e.Topic, e.Message)
}

func (e *ShapeError) Unwrap() error {
	return e.Cause
}

// Fallback reasons reported in logs and metrics
const (
	ReasonNone         = "none"
	ReasonNoClient     = "no_client"
	ReasonUpstream     = "upstream"
	ReasonTimeout      = "timeout"
	ReasonParse        = "parse"
	ReasonShape        = "shape"
	ReasonUnknownTopic = "unknown_topic"
)

// Reason classifies a pipeline error into a fallback reason
func Reason(err error) string {
	var (
		upstreamErr *UpstreamUnavailableError
		parseErr    *ParseError
		shapeErr    *ShapeError
	)
	switch {
	case err == nil:
		return ReasonNone
	case errors.Is(err, errNoClient):
		return ReasonNoClient
	case errors.Is(err, errUnknownTopic):
		return ReasonUnknownTopic
	case errors.As(err, &upstreamErr):
		if isTimeout(upstreamErr.Cause) {
			return ReasonTimeout
		}
		return ReasonUpstream
	case errors.As(err, &parseErr):
		return ReasonParse
	case errors.As(err, &shapeErr):
		return ReasonShape
	default:
		return ReasonUpstream
	}
}

var (
	errNoClient     = errors.New("completion client not configured")
	errUnknownTopic = errors.New("no shape registered for topic")
)
