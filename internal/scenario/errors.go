package scenario

import "errors"

var (
	// ErrUnknownAction is returned for a step whose action isn't recognized.
	ErrUnknownAction = errors.New("scenario: unknown step action")
	// ErrUnknownValidator is returned for a validation whose type isn't recognized.
	ErrUnknownValidator = errors.New("scenario: unknown validator type")
	// ErrMissingParam is returned when a step or validator is missing a required param.
	ErrMissingParam = errors.New("scenario: missing required parameter")
)
