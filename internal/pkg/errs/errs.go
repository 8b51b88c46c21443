package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrVersionIsInvalid    = errors.New("version is invalid")
	ErrActionIsForbidden   = errors.New("action is forbidden")
	ErrTransitionIsInvalid = errors.New("transition is invalid")
)

const (
	errCauseFormat          = "%s (cause: %s)"
	errParamFormat          = "%s: %s"
	errOutOfRangeFormat     = "%s: %s is %s, min value is %s, max value is %s"
	errObjectNotFoundFormat = "%s: param is: %s, ID is: %s"
)

// ObjectNotFoundError is returned when a lookup by identifier finds nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		msg := fmt.Sprintf(errObjectNotFoundFormat, ErrObjectNotFound, e.ParamName, e.ID)
		return fmt.Sprintf(errCauseFormat, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

func (e *ObjectNotFoundError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// ValueIsInvalidError is returned when a value fails a business rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	msg := fmt.Sprintf(errParamFormat, ErrValueIsInvalid, e.ParamName)
	if e.Cause != nil {
		return fmt.Sprintf(errCauseFormat, msg, e.Cause)
	}
	return msg
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

func (e *ValueIsInvalidError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// ValueIsOutOfRangeError is returned when a value lies outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf(errOutOfRangeFormat,
		ErrValueIsInvalid,
		sanitize(e.Value),
		e.ParamName,
		sanitize(e.Min),
		sanitize(e.Max),
	)
	if e.Cause != nil {
		return fmt.Sprintf(errCauseFormat, msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

func (e *ValueIsOutOfRangeError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// ValueIsRequiredError is returned when a mandatory value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	msg := fmt.Sprintf(errParamFormat, ErrValueIsRequired, e.ParamName)
	if e.Cause != nil {
		return fmt.Sprintf(errCauseFormat, msg, e.Cause)
	}
	return msg
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

func (e *ValueIsRequiredError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// VersionIsInvalidError is returned when an optimistic concurrency check fails:
// the stored row was changed by someone else since it was read.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	msg := fmt.Sprintf(errParamFormat, ErrVersionIsInvalid, e.ParamName)
	if e.Cause != nil {
		return fmt.Sprintf(errCauseFormat, msg, e.Cause)
	}
	return msg
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

func (e *VersionIsInvalidError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// ActionIsForbiddenError is returned when the caller's role or identity does not
// grant the requested action.
type ActionIsForbiddenError struct {
	Actor  string
	Action string
	Cause  error
}

func NewActionIsForbiddenError(actor, action string) *ActionIsForbiddenError {
	return &ActionIsForbiddenError{Actor: actor, Action: action}
}

func NewActionIsForbiddenErrorWithCause(actor, action string, cause error) *ActionIsForbiddenError {
	return &ActionIsForbiddenError{Actor: actor, Action: action, Cause: cause}
}

func (e *ActionIsForbiddenError) Error() string {
	msg := fmt.Sprintf("%s: %s cannot %s", ErrActionIsForbidden, e.Actor, e.Action)
	if e.Cause != nil {
		return fmt.Sprintf(errCauseFormat, msg, e.Cause)
	}
	return msg
}

func (e *ActionIsForbiddenError) Unwrap() error {
	return ErrActionIsForbidden
}

func (e *ActionIsForbiddenError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// TransitionIsInvalidError is returned when a state machine has no edge
// between From and To.
type TransitionIsInvalidError struct {
	From  string
	To    string
	Cause error
}

func NewTransitionIsInvalidError(from, to string) *TransitionIsInvalidError {
	return &TransitionIsInvalidError{From: from, To: to}
}

func NewTransitionIsInvalidErrorWithCause(from, to string, cause error) *TransitionIsInvalidError {
	return &TransitionIsInvalidError{From: from, To: to, Cause: cause}
}

func (e *TransitionIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: %s -> %s", ErrTransitionIsInvalid, e.From, e.To)
	if e.Cause != nil {
		return fmt.Sprintf(errCauseFormat, msg, e.Cause)
	}
	return msg
}

func (e *TransitionIsInvalidError) Unwrap() error {
	return ErrTransitionIsInvalid
}

func (e *TransitionIsInvalidError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// causeIs lets errors.Is see through to the cause, while Unwrap keeps
// reporting the sentinel.
func causeIs(cause, target error) bool {
	return cause != nil && errors.Is(cause, target)
}

func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
