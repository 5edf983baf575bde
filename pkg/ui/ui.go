package ui

import (
	"github.com/fatih/color"
)

var (
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
)

// Info prints an informational progress line.
func Info(format string, a ...interface{}) {
	InfoColor.Printf(format+"\n", a...)
}

// Success prints a line for a completed action.
func Success(format string, a ...interface{}) {
	SuccessColor.Printf(format+"\n", a...)
}

// Warning prints a line for a skipped path or recoverable condition.
func Warning(format string, a ...interface{}) {
	WarningColor.Printf(format+"\n", a...)
}

// Error prints a line for a failed file; the run continues regardless.
func Error(format string, a ...interface{}) {
	ErrorColor.Printf(format+"\n", a...)
}
