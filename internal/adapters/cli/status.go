package cli

import (
	"io"

	"github.com/fatih/color"
)

// Status line colours. color disables itself when output is not a terminal.
var (
	successColor  = color.New(color.FgGreen)
	progressColor = color.New(color.FgYellow)
	errorColor    = color.New(color.FgRed)
)

func progress(out io.Writer, format string, a ...interface{}) {
	progressColor.Fprintf(out, "[+] "+format+"\n", a...)
}

func notice(out io.Writer, format string, a ...interface{}) {
	progressColor.Fprintf(out, "[!] "+format+"\n", a...)
}

func success(out io.Writer, format string, a ...interface{}) {
	successColor.Fprintf(out, "[!] "+format+"\n", a...)
}

// Failure writes a red error line. Used by the command entry point.
func Failure(out io.Writer, err error) {
	errorColor.Fprintf(out, "[!] %v\n", err)
}
