package core

// errors.go defines the error taxonomy of a run.
//
// Every error except DispatchError is fatal: the CLI prints it and exits
// non-zero before any later row is processed. DispatchError is reported for
// one request and never changes the outcome of the run.
//
// The Error() strings are the exact messages users see (the CLI adds the
// "Error: " prefix for everything except UsageError).

import (
	"errors"
	"fmt"
)

// ErrHelp is returned by the argument resolver when help was requested.
var ErrHelp = errors.New("help requested")

// UsageError reports unknown or missing command-line flags.
type UsageError struct {
	Option string // Unknown option, empty when a required flag is missing
	Usage  string // Usage line printed for missing flags
}

func (e *UsageError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("Unknown option: %s", e.Option)
	}
	return e.Usage
}

// FileAccessError reports an input file that is missing, not a regular file or unreadable.
type FileAccessError struct {
	Label string // "CSV file" or "JSON config file"
	Path  string
	Err   error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s '%s' does not exist or is not readable.", e.Label, e.Path)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ConfigParseError reports a mapping file that could not be decoded.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("Failed to parse JSON config file '%s': %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// TypeCoercionError reports a value that does not fit its rule's data type.
//
// The message names the data type rather than the offending value
// ("Not a number: number"); existing users match on that text. Value, Key
// and Line are carried for structured logs.
type TypeCoercionError struct {
	DataType DataType
	Key      string
	Value    string
	Line     int // 1-based CSV line, 0 when unknown
}

func (e *TypeCoercionError) Error() string {
	switch e.DataType {
	case TypeBool:
		return fmt.Sprintf("Not a boolean: %s", e.DataType)
	default:
		return fmt.Sprintf("Not a number: %s", e.DataType)
	}
}

// UnknownTypeError reports a rule whose data type is not recognised.
type UnknownTypeError struct {
	DataType DataType
	Key      string
	Line     int
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("Unknown data type: %s", e.DataType)
}

// DispatchError reports a failed POST: transport failure or non-2xx status.
type DispatchError struct {
	Line       int
	StatusCode int    // 0 for transport failures
	Status     string // e.g. "500 Internal Server Error"
	Body       string // Response body, truncated
	Err        error
}

func (e *DispatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request for line %d failed: %v", e.Line, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("request for line %d failed with status %s: %s", e.Line, e.Status, e.Body)
	}
	return fmt.Sprintf("request for line %d failed with status %s", e.Line, e.Status)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err must abort the run.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var de *DispatchError
	return !errors.As(err, &de)
}
