package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// DebugMode controls whether PrintDebug output is visible.
var DebugMode = false

// QuietMode suppresses informational lines; errors and warnings are still shown.
var QuietMode = false

// Stdout and Stderr are the console streams. Tests swap them for buffers.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// consolePrefix starts every console line.
const consolePrefix = "[CDK]"

var (
	red      = color.New(color.FgRed).SprintFunc()
	green    = color.New(color.FgGreen).SprintFunc()
	yellow   = color.New(color.FgYellow).SprintFunc()
	blueBold = color.New(color.FgBlue, color.Bold).SprintFunc()
	magenta  = color.New(color.FgMagenta).SprintFunc()
	cyan     = color.New(color.FgCyan).SprintFunc()
	gray     = color.New(color.FgWhite).SprintFunc() // FgWhite = Gray in ANSI
	bold     = color.New(color.Bold).SprintFunc()
)

// StyleError formats failures (red).
func StyleError(msg string) string { return red(msg) }

// StyleWarning formats warnings (yellow).
func StyleWarning(msg string) string { return yellow(msg) }

// StyleDebug formats low-level detail (gray).
func StyleDebug(msg string) string { return gray(msg) }

// StyleCommand formats command lines (gray).
func StyleCommand(cmd string) string { return gray(cmd) }

func StyleTitle(title string) string { return bold(cyan(title)) }

// StyleNumber formats counts and versions (magenta).
func StyleNumber(num interface{}) string { return magenta(fmt.Sprint(num)) }

// StylePath formats file and directory paths (bold blue).
func StylePath(path string) string { return blueBold(path) }

// StyleName formats executables, keys and other identifiers (yellow).
func StyleName(name string) string { return yellow(name) }

// consoleLevel describes one kind of console line.
type consoleLevel struct {
	tag       string // rendered after the prefix, empty for plain messages
	stderr    bool
	quietable bool
}

var (
	levelMessage = consoleLevel{quietable: true}
	levelSuccess = consoleLevel{tag: green("[PASS]"), quietable: true}
	levelHint    = consoleLevel{tag: cyan("[HINT]"), quietable: true}
	levelNote    = consoleLevel{tag: magenta("[NOTE]"), quietable: true}
	levelWarning = consoleLevel{tag: yellow("[WARN]"), stderr: true}
	levelError   = consoleLevel{tag: red("[ERR] "), stderr: true}
	levelDebug   = consoleLevel{tag: gray("[DBG] "), stderr: true}
)

func emit(l consoleLevel, format string, a ...interface{}) {
	if l.quietable && QuietMode {
		return
	}
	w := Stdout
	if l.stderr {
		w = Stderr
	}
	msg := fmt.Sprintf(format, a...)
	if l.tag == "" {
		fmt.Fprintf(w, "%s %s\n", consolePrefix, msg)
		return
	}
	fmt.Fprintf(w, "%s%s %s\n", consolePrefix, l.tag, msg)
}

// PrintMessage prints a plain line: [CDK] message
func PrintMessage(format string, a ...interface{}) { emit(levelMessage, format, a...) }

// PrintSuccess prints [CDK][PASS] message.
func PrintSuccess(format string, a ...interface{}) { emit(levelSuccess, format, a...) }

// PrintHint prints [CDK][HINT] message.
func PrintHint(format string, a ...interface{}) { emit(levelHint, format, a...) }

// PrintNote prints [CDK][NOTE] message, e.g. when a missing directory is created.
func PrintNote(format string, a ...interface{}) { emit(levelNote, format, a...) }

// PrintWarning prints [CDK][WARN] message to Stderr, even in quiet mode.
func PrintWarning(format string, a ...interface{}) { emit(levelWarning, format, a...) }

// PrintError prints [CDK][ERR] message to Stderr, even in quiet mode.
func PrintError(format string, a ...interface{}) { emit(levelError, format, a...) }

// PrintDebug prints [CDK][DBG] message to Stderr when DebugMode is set.
func PrintDebug(format string, a ...interface{}) {
	if DebugMode {
		emit(levelDebug, format, a...)
	}
}
