package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Logger writes leveled, colored messages. Never pass it passwords, keys or
// decrypted wallet secrets.
type Logger struct {
	Verbose bool
	Debug   bool

	// Out and Err default to os.Stdout and os.Stderr.
	Out io.Writer
	Err io.Writer
}

func (l Logger) stdout() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

func (l Logger) stderr() io.Writer {
	if l.Err != nil {
		return l.Err
	}
	return os.Stderr
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(l.stdout(), color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(l.stdout(), color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(l.stderr(), color.YellowString("[warn] ")+msg+"\n", args...)
	}
}

// WarnfAlways prints regardless of verbosity. Use for security warnings.
func (l Logger) WarnfAlways(msg string, args ...any) {
	fmt.Fprintf(l.stderr(), color.YellowString("[warn] ")+msg+"\n", args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(l.stderr(), color.RedString("[error] ")+msg+"\n", args...)
	}
}

// ErrorfAndReturn logs like Errorf and returns the formatted message as an error.
// A %w verb wraps its argument in the returned error.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	l.Errorf(strings.ReplaceAll(msg, "%w", "%v"), args...)
	return fmt.Errorf(msg, args...)
}
