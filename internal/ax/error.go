package ax

import (
	"errors"
	"fmt"
)

// Error is a status code returned by the native accessibility API (AXError).
// Every value other than Success is an error.
type Error int32

const (
	Success                              Error = 0
	ErrFailure                           Error = -25200
	ErrIllegalArgument                   Error = -25201
	ErrInvalidUIElement                  Error = -25202
	ErrInvalidUIElementObserver          Error = -25203
	ErrCannotComplete                    Error = -25204
	ErrAttributeUnsupported              Error = -25205
	ErrActionUnsupported                 Error = -25206
	ErrNotificationUnsupported           Error = -25207
	ErrNotImplemented                    Error = -25208
	ErrNotificationAlreadyRegistered     Error = -25209
	ErrNotificationNotRegistered         Error = -25210
	ErrAPIDisabled                       Error = -25211
	ErrNoValue                           Error = -25212
	ErrParameterizedAttributeUnsupported Error = -25213
	ErrNotEnoughPrecision                Error = -25214
)

var errorNames = map[Error]string{
	Success:                              "success",
	ErrFailure:                           "failure",
	ErrIllegalArgument:                   "illegal argument",
	ErrInvalidUIElement:                  "invalid UI element",
	ErrInvalidUIElementObserver:          "invalid UI element observer",
	ErrCannotComplete:                    "cannot complete",
	ErrAttributeUnsupported:              "attribute unsupported",
	ErrActionUnsupported:                 "action unsupported",
	ErrNotificationUnsupported:           "notification unsupported",
	ErrNotImplemented:                    "not implemented",
	ErrNotificationAlreadyRegistered:     "notification already registered",
	ErrNotificationNotRegistered:         "notification not registered",
	ErrAPIDisabled:                       "API disabled",
	ErrNoValue:                           "no value",
	ErrParameterizedAttributeUnsupported: "parameterized attribute unsupported",
	ErrNotEnoughPrecision:                "not enough precision",
}

func (e Error) Error() string {
	if name, ok := errorNames[e]; ok {
		return "ax: " + name
	}
	return fmt.Sprintf("ax: status %d", int32(e))
}

// Result converts a status into a Go error: nil for Success, the status
// itself otherwise.
func (e Error) Result() error {
	if e == Success {
		return nil
	}
	return e
}

// ErrTypeMismatch is wrapped by every TypeMismatchError.
var ErrTypeMismatch = errors.New("ax: value type mismatch")

// TypeMismatchError reports a downcast of an attribute value to a variant it
// does not hold.
type TypeMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("ax: value is %s, not %s", e.Got, e.Want)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }
