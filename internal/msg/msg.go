package msg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Output receives every diagnostic. Tests may swap it.
var Output io.Writer = color.Output

// exit is swapped in tests so Fatal can be observed
var exit = os.Exit

func emit(label, format string, a ...any) {
	fmt.Fprint(Output, label)
	fmt.Fprint(Output, ": ")
	fmt.Fprintf(Output, format, a...)
	fmt.Fprint(Output, "\n")
}

func Error(format string, a ...any) {
	emit(color.HiRedString("error"), format, a...)
}

func Warn(format string, a ...any) {
	emit(color.YellowString("warn"), format, a...)
}

func Fatal(format string, a ...any) {
	emit(color.RedString("fatal"), format, a...)
	exit(1)
}

func Info(format string, a ...any) {
	emit(color.HiGreenString("info"), format, a...)
}

// Created reports a file or directory written by the scaffolder
func Created(kind, path string) {
	fmt.Fprintf(Output, "%s %s: %s\n", color.HiGreenString("Created"), kind, filepath.ToSlash(path))
}

// Skipped reports a file left untouched because it already exists
func Skipped(kind, path string) {
	fmt.Fprintf(Output, "%s %s: %s (already exists)\n", color.YellowString("Skipped"), kind, filepath.ToSlash(path))
}
