// Package cli turns command-line arguments into a run and a process exit code.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/JonMunkholm/csvpost/internal/core"
)

// Usage returns the one-line usage text for program.
func Usage(program string) string {
	return fmt.Sprintf("Usage: %s --csv <csv_file> --json <json_config_file> --url <url>", program)
}

// Resolve parses args as "--key value" pairs and checks both input files.
//
// Order of the pairs does not matter and a repeated key keeps its last
// value. An unknown key fails before any file is touched. A trailing key
// without a value counts as missing. "--help" or "-h" anywhere returns
// core.ErrHelp.
func Resolve(program string, args []string) (core.Inputs, error) {
	var in core.Inputs

	for i := 0; i < len(args); i += 2 {
		key := args[i]
		value := ""
		if i+1 < len(args) {
			value = args[i+1]
		}

		switch key {
		case "--csv":
			in.CSVFile = value
		case "--json":
			in.ConfigFile = value
		case "--url":
			in.URL = value
		case "--help", "-h":
			return core.Inputs{}, core.ErrHelp
		default:
			return core.Inputs{}, &core.UsageError{Option: key}
		}
	}

	if in.CSVFile == "" || in.ConfigFile == "" || in.URL == "" {
		return core.Inputs{}, &core.UsageError{Usage: Usage(program)}
	}

	if err := checkReadable("CSV file", in.CSVFile); err != nil {
		return core.Inputs{}, err
	}
	if err := checkReadable("JSON config file", in.ConfigFile); err != nil {
		return core.Inputs{}, err
	}

	return in, nil
}

var errNotRegular = errors.New("not a regular file")

// checkReadable verifies path is a regular file that can be opened for reading.
func checkReadable(label, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &core.FileAccessError{Label: label, Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return &core.FileAccessError{Label: label, Path: path, Err: errNotRegular}
	}

	f, err := os.Open(path)
	if err != nil {
		return &core.FileAccessError{Label: label, Path: path, Err: err}
	}
	return f.Close()
}
