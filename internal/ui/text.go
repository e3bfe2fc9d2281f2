package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// noColor reports whether NO_COLOR is set or fatih/color disabled colors.
func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Code formats runnable commands. `backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file or directory paths.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Flag formats CLI flags like --dry-run.
	Flag = Formatter{color.New(color.FgYellow), "", ""}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats wallet names and other user values. 'quotes' without color.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats secondary text. (parentheses) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Done returns a success line: "✓ msg".
func Done(msg string) string {
	return Success.Sprint("✓") + " " + msg
}

// Failed returns a failure line: "✗ msg".
func Failed(msg string) string {
	return Error.Sprint("✗") + " " + msg
}

// Hint returns a follow-up suggestion line: "→ msg".
func Hint(msg string) string {
	return Info.Sprint("→") + " " + msg
}

// Lines joins non-empty lines with newlines.
func Lines(lines ...string) string {
	var kept []string
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}
