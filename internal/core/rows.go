package core

import (
	"bytes"
	"os"
	"strings"
)

// utf8BOM is the byte order mark commonly written by Windows programs.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadRows reads the whole CSV file and splits it into rows.
//
// A leading UTF-8 BOM is dropped and invalid UTF-8 sequences are replaced
// with U+FFFD before splitting.
func ReadRows(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Label: "CSV file", Path: path, Err: err}
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	return SplitRows(strings.ToValidUTF8(string(data), "\uFFFD")), nil
}

// SplitRows trims the content and splits it into one Row per line.
//
// Fields are split on every comma; quoting is not understood, so a quoted
// value containing a comma spans several columns. Empty content still
// yields one row with a single empty field.
func SplitRows(content string) []Row {
	lines := strings.Split(strings.TrimFunc(content, isBlank), "\n")
	rows := make([]Row, len(lines))
	for i, line := range lines {
		rows[i] = SplitFields(line)
	}
	return rows
}

// SplitFields splits one line on literal commas.
func SplitFields(line string) Row {
	return Row(strings.Split(line, ","))
}

// MapRow builds the record for one row by applying every rule in order.
// A later rule with the same key overwrites an earlier one. line is the
// 1-based CSV line used in errors.
func MapRow(row Row, cfg MappingConfig, line int) (Record, error) {
	rec := make(Record, len(cfg))
	for _, rule := range cfg {
		v, err := Coerce(rule, row, line)
		if err != nil {
			return nil, err
		}
		rec[rule.KeyName] = v
	}
	return rec, nil
}
