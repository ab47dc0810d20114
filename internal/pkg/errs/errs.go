package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is. Each typed error below
// unwraps to exactly one of these, so callers can branch on the error kind
// without knowing the concrete type.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrItemUnavailable   = errors.New("item unavailable")
	ErrBelowMinimumOrder = errors.New("below minimum order")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ObjectNotFoundError indicates a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a persistence-layer error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause that explains why the value was rejected.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a value fell outside its permitted range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(fmt.Sprintf("%v", e.Value)), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause))
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ForbiddenError indicates the acting identity lacks the role or ownership
// relation required for the requested operation.
type ForbiddenError struct {
	ActorID int64
	Action  string
	Cause   error
}

// NewForbiddenError creates a ForbiddenError for the given actor and action.
func NewForbiddenError(actorID int64, action string) *ForbiddenError {
	return &ForbiddenError{ActorID: actorID, Action: action}
}

// NewForbiddenErrorWithCause creates a ForbiddenError wrapping an underlying
// cause.
func NewForbiddenErrorWithCause(actorID int64, action string, cause error) *ForbiddenError {
	return &ForbiddenError{ActorID: actorID, Action: action, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: actor %d is not allowed to %s (cause: %s)",
			ErrForbidden, e.ActorID, e.Action, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: actor %d is not allowed to %s", ErrForbidden, e.ActorID, e.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ConflictError indicates a state transition that the current state does not
// permit, such as moving an order out of a terminal status.
type ConflictError struct {
	ParamName string
	From      string
	To        string
}

// NewConflictError creates a ConflictError for a rejected transition.
func NewConflictError(paramName, from, to string) *ConflictError {
	return &ConflictError{ParamName: paramName, From: from, To: to}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrConflict, e.ParamName, e.From, e.To)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// ItemUnavailableError indicates a menu item exists but is not orderable.
type ItemUnavailableError struct {
	ItemName string
}

// NewItemUnavailableError creates an ItemUnavailableError for the named item.
func NewItemUnavailableError(itemName string) *ItemUnavailableError {
	return &ItemUnavailableError{ItemName: itemName}
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrItemUnavailable, sanitize(e.ItemName))
}

func (e *ItemUnavailableError) Unwrap() error {
	return ErrItemUnavailable
}

// BelowMinimumOrderError indicates a cart subtotal under the restaurant's
// minimum-order threshold.
type BelowMinimumOrderError struct {
	Subtotal string
	Minimum  string
}

// NewBelowMinimumOrderError creates a BelowMinimumOrderError carrying the
// offending subtotal and the required minimum.
func NewBelowMinimumOrderError(subtotal, minimum string) *BelowMinimumOrderError {
	return &BelowMinimumOrderError{Subtotal: subtotal, Minimum: minimum}
}

func (e *BelowMinimumOrderError) Error() string {
	return fmt.Sprintf("%s: subtotal %s is under the minimum of %s",
		ErrBelowMinimumOrder, e.Subtotal, e.Minimum)
}

func (e *BelowMinimumOrderError) Unwrap() error {
	return ErrBelowMinimumOrder
}
