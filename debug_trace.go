package rijndael

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// debugEnabled controls whether debug tracing is enabled via RIJNDAEL_DEBUG env var
var debugEnabled = os.Getenv("RIJNDAEL_DEBUG") == "1"

// traceLog outputs a debug message if tracing is enabled
func traceLog(format string, args ...interface{}) {
	if debugEnabled {
		fmt.Printf("[TRACE] "+format+"\n", args...)
	}
}

// traceBytes outputs bytes in hex format with a descriptive name
func traceBytes(name string, data []byte) {
	if debugEnabled {
		fmt.Printf("[TRACE] %s (%d bytes): %s\n", name, len(data), hex.EncodeToString(data))
	}
}

// traceState outputs the state as a 4x4 matrix
func traceState(name string, s *State) {
	if debugEnabled {
		fmt.Printf("[TRACE] %s:\n", name)
		for _, line := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
			fmt.Printf("[TRACE]   %s\n", line)
		}
	}
}

// compareTrace compares expected vs actual hex strings
// Returns true if they match, false otherwise
func compareTrace(stage, expected, actual string) bool {
	match := expected == actual
	if debugEnabled {
		if !match {
			fmt.Printf("[TRACE] ✗ MISMATCH %s:\n", stage)
			fmt.Printf("[TRACE]   Expected: %s\n", expected)
			fmt.Printf("[TRACE]   Actual:   %s\n", actual)
		} else {
			fmt.Printf("[TRACE] ✓ %s matches\n", stage)
		}
	}
	return match
}

// traceSeparator prints a visual separator in debug output
func traceSeparator(title string) {
	if debugEnabled {
		fmt.Printf("[TRACE] ========== %s ==========\n", title)
	}
}

// traceRound outputs the state at the end of a round
func traceRound(round int, s *State) {
	if debugEnabled {
		traceState(fmt.Sprintf("round %d", round), s)
	}
}
