package domain

import "fmt"

// ConfigurationError is fatal: bad date range, no trading days, missing
// secrets. Never retried.
type ConfigurationError struct {
	Msg string
}

func (e ConfigurationError) Error() string {
	return e.Msg
}

func NewConfigurationError(format string, args ...interface{}) ConfigurationError {
	return ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

// DataUnavailableError means a computation could not proceed for a
// date/ticker - missing prior-day price for a rebalance, or coverage
// below the floor. It only aborts the run in strict mode.
type DataUnavailableError struct {
	Msg string
}

func (e DataUnavailableError) Error() string {
	return e.Msg
}

func NewDataUnavailableError(format string, args ...interface{}) DataUnavailableError {
	return DataUnavailableError{Msg: fmt.Sprintf(format, args...)}
}

type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindTransient
)

// StorageError wraps a storage failure with a typed kind so the
// orchestrator's retry policy can dispatch on the enum instead of
// matching vendor error text.
type StorageError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("storage error in %s: %v", e.Op, e.Err)
}

func (e StorageError) Unwrap() error {
	return e.Err
}
