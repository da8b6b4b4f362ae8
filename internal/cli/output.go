package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/JonMunkholm/csvpost/internal/core"
)

var errorColor = color.New(color.FgRed, color.Bold)

// PrintFatal writes a run-ending error to w.
//
// Usage errors are printed as-is; everything else is prefixed with
// "Error: ". Colour is applied only when the terminal supports it.
func PrintFatal(w io.Writer, err error) {
	if err == nil {
		return
	}

	var usage *core.UsageError
	if errors.As(err, &usage) {
		fmt.Fprintln(w, usage.Error())
		return
	}

	errorColor.Fprint(w, "Error:")
	fmt.Fprintf(w, " %s\n", err.Error())
}
