package core

// convert.go provides the per-field coercions applied while mapping a row.
//
// The rules are deliberately narrow and match what existing mapping files
// were written against:
//   - string: trim, then drop every ' and " character
//   - number: leading decimal integer, zero is rejected
//   - bool: the exact words "true" and "false", nothing else
//
// A missing column (index out of range) behaves like an empty field.

import (
	"strconv"
	"strings"
	"unicode"
)

// quoteStripper removes both quote characters wherever they appear.
var quoteStripper = strings.NewReplacer(`'`, "", `"`, "")

// Sanitize trims surrounding whitespace and removes all single and double quotes.
// Trimming runs first, so whitespace enclosed by quotes survives one pass.
func Sanitize(s string) string {
	s = strings.TrimFunc(s, isBlank)
	return quoteStripper.Replace(s)
}

// ParseIntPrefix parses the leading decimal integer of s.
//
// Leading whitespace is skipped, an optional sign is accepted, and parsing
// stops at the first non-digit: "42abc" is 42, "3.9" is 3. ok is false when
// no digit follows the sign or the value does not fit in an int64.
func ParseIntPrefix(s string) (n int64, ok bool) {
	s = strings.TrimLeftFunc(s, isBlank)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// isBlank matches the whitespace trimmed from files, fields and numbers, BOM included.
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// ToNumber coerces a raw field to a non-zero integer.
// Zero is rejected along with unparseable input.
func ToNumber(raw string) (int64, bool) {
	n, ok := ParseIntPrefix(raw)
	if !ok || n == 0 {
		return 0, false
	}
	return n, true
}

// ToBool coerces the exact strings "true" and "false".
// No trimming or case folding is applied.
func ToBool(raw string) (value bool, ok bool) {
	switch raw {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// Coerce converts the field addressed by rule into its typed value.
// line is the 1-based CSV line used for error reporting.
func Coerce(rule MappingRule, row Row, line int) (any, error) {
	raw, _ := row.Field(rule.CSVColumn)

	switch rule.DataType {
	case TypeString:
		return Sanitize(raw), nil

	case TypeNumber:
		n, ok := ToNumber(raw)
		if !ok {
			return nil, &TypeCoercionError{DataType: rule.DataType, Key: rule.KeyName, Value: raw, Line: line}
		}
		return n, nil

	case TypeBool:
		b, ok := ToBool(raw)
		if !ok {
			return nil, &TypeCoercionError{DataType: rule.DataType, Key: rule.KeyName, Value: raw, Line: line}
		}
		return b, nil

	default:
		return nil, &UnknownTypeError{DataType: rule.DataType, Key: rule.KeyName, Line: line}
	}
}
