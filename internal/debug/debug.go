package debug

import (
	"fmt"
	"io"
	"log"
)

// Debug levels
const (
	LevelOff     = 0 // No output
	LevelInfo    = 1 // Important info (plan summary, leg count)
	LevelLive    = 2 // Live info (per-leg and per-segment lines)
	LevelVerbose = 3 // Verbose (footprint, spacing, timing details)
	LevelTrace   = 4 // Trace (per-waypoint output)
)

var (
	level  int
	logger *log.Logger
)

// Init initializes the debug system with a level (0-4) writing to w.
func Init(debugLevel int, w io.Writer) {
	level = debugLevel
	if level > LevelOff {
		logger = log.New(w, "[surveyplan] ", log.LstdFlags)
	}
}

// Level returns the current debug level.
func Level() int {
	return level
}

// IsEnabled returns true if debug level is >= the requested level.
func IsEnabled(minLevel int) bool {
	return level >= minLevel
}

// --- Level 1 (Info): important info ---

// Info prints a level 1 message.
func Info(format string, args ...interface{}) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[INFO] "+format, args...)
	}
}

// Summary prints an important section banner (always shown when enabled).
func Summary(title string) {
	if level > LevelOff && logger != nil {
		logger.Printf("═══════════════════════════════════════")
		logger.Printf("  %s", title)
		logger.Printf("═══════════════════════════════════════")
	}
}

// Coverage prints the headline coverage numbers (level 1).
func Coverage(numLegs int, sweep string, totalPathM, flightMin float64) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[INFO] Coverage: %d legs %s, %.1f m path, %.1f min flight",
			numLegs, sweep, totalPathM, flightMin)
	}
}

// --- Level 2 (Live): per-element info ---

// Live prints a level 2 message.
func Live(format string, args ...interface{}) {
	if level >= LevelLive && logger != nil {
		logger.Printf("[LIVE] "+format, args...)
	}
}

// Leg prints one leg of the plan (level 2).
func Leg(index int, startX, startY, endX, endY, headingDeg float64) {
	if level >= LevelLive && logger != nil {
		logger.Printf("[LIVE] Leg %d: (%.1f, %.1f) -> (%.1f, %.1f) heading %.0f°",
			index, startX, startY, endX, endY, headingDeg)
	}
}

// Segment prints one battery segment (level 2).
func Segment(index, legStart, legEnd int, flightS float64) {
	if level >= LevelLive && logger != nil {
		logger.Printf("[LIVE] Battery segment %d: legs %d-%d, %.1f s", index, legStart, legEnd, flightS)
	}
}

// --- Level 3 (Verbose): calculation details ---

// Verbose prints a level 3 message.
func Verbose(format string, args ...interface{}) {
	if level >= LevelVerbose && logger != nil {
		logger.Printf("[VERBOSE] "+format, args...)
	}
}

// Section prints a section header (level 3).
func Section(title string) {
	if level >= LevelVerbose && logger != nil {
		logger.Printf("[VERBOSE] --- %s ---", title)
	}
}

// Value prints a labeled value (level 3).
func Value(label string, value interface{}) {
	if level >= LevelVerbose && logger != nil {
		logger.Printf("[VERBOSE] %s: %s", label, formatValue(value))
	}
}

// --- Level 4 (Trace): very low level ---

// Trace prints a level 4 message.
func Trace(format string, args ...interface{}) {
	if level >= LevelTrace && logger != nil {
		logger.Printf("[TRACE] "+format, args...)
	}
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case float64:
		return fmt.Sprintf("%.3f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
