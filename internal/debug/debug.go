// Package debug provides the opt-in diagnostic logger used across quill.
// Output goes to stderr with timestamps and is silenced unless debug mode
// is enabled via the --debug flag.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

// SetDebug enables or disables debug mode.
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor disables colored debug output.
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
}

func useColor() bool {
	mu.RLock()
	defer mu.RUnlock()
	return !noColor
}

func emit(body string) {
	timestamp := time.Now().Format("15:04:05.000")
	if useColor() {
		fmt.Fprintf(os.Stderr, "%s[DEBUG]%s %s%s%s %s\n",
			colorCyan, colorReset, colorGray, timestamp, colorReset, body)
	} else {
		fmt.Fprintf(os.Stderr, "[DEBUG] %s %s\n", timestamp, body)
	}
}

// Debug prints a formatted debug message with timestamp.
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	emit(fmt.Sprintf(format, args...))
}

// DebugSection prints a section header for debug output.
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	if useColor() {
		emit(fmt.Sprintf("%s=== %s ===%s", colorCyan, section, colorReset))
	} else {
		emit(fmt.Sprintf("=== %s ===", section))
	}
}

// DebugValue prints key=value style debug info.
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	if useColor() {
		emit(fmt.Sprintf("%s%s%s = %v", colorCyan, key, colorReset, value))
	} else {
		emit(fmt.Sprintf("%s = %v", key, value))
	}
}

// DebugJSON prints structured data as indented JSON.
func DebugJSON(key string, v interface{}) {
	if !IsEnabled() {
		return
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		emit(fmt.Sprintf("%s = <unmarshalable: %v>", key, err))
		return
	}
	emit(fmt.Sprintf("%s:\n%s", key, data))
}
