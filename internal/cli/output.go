package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

// Output formatting helpers. Color is applied only when writing to a
// terminal and --no-color is not set.

var (
	stdout io.Writer = colorable.NewColorableStdout()
	stderr io.Writer = colorable.NewColorableStderr()
)

func colorEnabled() bool {
	return !globalNoColor && isatty.IsTerminal(os.Stdout.Fd())
}

func paint(color, msg string) string {
	if !colorEnabled() {
		return msg
	}
	return ansi.Color(msg, color)
}

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", paint("green", "✓"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", paint("yellow", "⚠"), msg)
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	fmt.Fprintf(stderr, "%s %s\n", paint("red", "✗"), msg)
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", paint("blue", "→"), msg)
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "\n%s\n", paint("magenta", "=== "+title+" ==="))
}
