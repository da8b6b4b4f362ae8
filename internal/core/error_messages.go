package core

// error_messages.go maps errors to support codes.
//
// Codes are attached to structured log entries so a failed run can be
// diagnosed from logs alone. Grouped by category:
//
//	USE001  - Bad or missing command-line flags
//	FILE001 - Input file missing or unreadable
//	CFG001  - Mapping file could not be parsed
//	MAP001  - Value is not a (non-zero) integer
//	MAP002  - Value is not exactly "true" or "false"
//	MAP003  - Mapping rule names an unknown data type
//	HTTP001 - Endpoint answered with a non-2xx status
//	NET001  - Endpoint refused the connection
//	NET002  - Request timed out
//	NET003  - Request was cancelled
//	ERR000  - Anything else
//
// Typed errors are matched first; transport errors, which arrive as
// wrapped net/url errors, are matched by message pattern (case-insensitive,
// first match wins).

import (
	"errors"
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var (
	msgUsage = UserMessage{
		Message: "Invalid command-line arguments",
		Action:  "Pass --csv, --json and --url, each followed by a value",
		Code:    "USE001",
	}
	msgFileAccess = UserMessage{
		Message: "Input file is missing or unreadable",
		Action:  "Check the path and file permissions",
		Code:    "FILE001",
	}
	msgConfigParse = UserMessage{
		Message: "Mapping file could not be parsed",
		Action:  "Provide a list of {csvColumn, keyName, dataType} objects",
		Code:    "CFG001",
	}
	msgNotNumber = UserMessage{
		Message: "A number column holds a zero or non-numeric value",
		Action:  "Fix the value or map the column as string",
		Code:    "MAP001",
	}
	msgNotBool = UserMessage{
		Message: "A bool column holds something other than true or false",
		Action:  "Use lowercase true or false",
		Code:    "MAP002",
	}
	msgUnknownType = UserMessage{
		Message: "Mapping rule uses an unknown data type",
		Action:  "Use string, number or bool",
		Code:    "MAP003",
	}
	msgHTTPStatus = UserMessage{
		Message: "Endpoint rejected the record",
		Action:  "Check the response body for the endpoint's reason",
		Code:    "HTTP001",
	}
)

// transportPatterns match errors returned by the HTTP client.
var transportPatterns = []errorPattern{
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to endpoint",
			Action:  "Verify the URL and that the endpoint is running",
			Code:    "NET001",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Raise DISPATCH_TIMEOUT or check the endpoint",
			Code:    "NET002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Raise DISPATCH_TIMEOUT or check the endpoint",
			Code:    "NET002",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Run again to resend the record",
			Code:    "NET003",
		},
	},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the logs for the underlying error",
	Code:    "ERR000",
}

// MapError converts an error to a coded user message.
// A nil error yields the zero UserMessage.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var (
		usage   *UsageError
		access  *FileAccessError
		parse   *ConfigParseError
		coerce  *TypeCoercionError
		unknown *UnknownTypeError
		disp    *DispatchError
	)

	switch {
	case errors.As(err, &usage):
		return msgUsage
	case errors.As(err, &access):
		return msgFileAccess
	case errors.As(err, &parse):
		return msgConfigParse
	case errors.As(err, &coerce):
		if coerce.DataType == TypeBool {
			return msgNotBool
		}
		return msgNotNumber
	case errors.As(err, &unknown):
		return msgUnknownType
	case errors.As(err, &disp) && disp.Err == nil:
		return msgHTTPStatus
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range transportPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
