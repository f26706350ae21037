// Package errors provides structured error handling for selago.
//
// Error types mirror the failure modes of model evaluation and subset
// search: configuration problems detected before a search starts,
// scoring failures surfaced from the oracle mid-search, and the usual
// estimator-side errors (unfitted model, dimension mismatch, bad value).
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("selago-warning: %v\n", w)
	}
	// zerolog warn hook, set lazily by pkg/log to avoid an import cycle
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the library-wide warning handler.
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning through the zerolog sink when one is installed,
// falling back to the plain handler otherwise.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ConfigurationError reports an invalid search or evaluation setup:
// an empty feature universe, duplicate features, an unknown column,
// or malformed run configuration. It is always raised before any
// oracle call is made.
type ConfigurationError struct {
	Op     string
	Reason string
	Value  interface{}
}

func (e *ConfigurationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("selago: %s: invalid configuration: %s (got: %v)", e.Op, e.Reason, e.Value)
	}
	return fmt.Sprintf("selago: %s: invalid configuration: %s", e.Op, e.Reason)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *ConfigurationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ConfigurationError")
}

// NewConfigurationError creates a ConfigurationError with a stack trace.
func NewConfigurationError(op, reason string, value interface{}) error {
	err := &ConfigurationError{Op: op, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ScoringError reports a failed or unusable oracle evaluation for one
// feature subset. The search that received it aborts; scores are never
// substituted with sentinels because that would corrupt the tie-break
// between candidates.
type ScoringError struct {
	Subset []string
	Reason string
	Err    error
}

func (e *ScoringError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("selago: scoring subset %v failed: %s: %v", e.Subset, e.Reason, e.Err)
	}
	return fmt.Sprintf("selago: scoring subset %v failed: %s", e.Subset, e.Reason)
}

func (e *ScoringError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *ScoringError) MarshalZerologObject(event *zerolog.Event) {
	event.Strs("subset", e.Subset).
		Str("reason", e.Reason).
		Str("type", "ScoringError")
	if e.Err != nil {
		event.AnErr("cause", e.Err)
	}
}

// NewScoringError creates a ScoringError with a stack trace.
func NewScoringError(subset []string, reason string, err error) error {
	scoringErr := &ScoringError{Subset: subset, Reason: reason, Err: err}
	return errors.WithStack(scoringErr)
}

// NotFittedError is returned when Predict or Transform is called on an
// estimator before Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("selago: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError reports a shape mismatch between inputs.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("selago: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is out of range or
// otherwise unusable.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("selago: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError is a general model failure with an operation and kind.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("selago: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("selago: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a ModelError with a stack trace.
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be assigned to target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to err.
func WithStack(err error) error {
	return errors.WithStack(err)
}

var (
	// ErrEmptyData is returned when an empty matrix or vector is passed in.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix is returned when a matrix cannot be inverted.
	ErrSingularMatrix = New("singular matrix")
)
