package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	timeColor    = color.New(color.FgHiBlack)
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	debugColor   = color.New(color.FgHiBlack)
)

var debugEnabled bool

// EnableDebug turns on Debug output. Called once at startup outside
// production.
func EnableDebug() {
	debugEnabled = true
}

func stamp() string {
	return timeColor.Sprintf("[%s]", time.Now().Format("15:04:05"))
}

// Info logs general information (blue)
func Info(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), infoColor.Sprint(fmt.Sprintf(message, args...)))
}

// Success logs a success (green)
func Success(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), successColor.Sprint("✓ ", fmt.Sprintf(message, args...)))
}

// Warning logs a warning (yellow)
func Warning(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), warnColor.Sprint("⚠ ", fmt.Sprintf(message, args...)))
}

// Error logs an error (red)
func Error(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), errorColor.Sprint("✗ ", fmt.Sprintf(message, args...)))
}

// Debug logs a debug message, only when enabled
func Debug(message string, args ...interface{}) {
	if !debugEnabled {
		return
	}
	fmt.Printf("%s %s\n", stamp(), debugColor.Sprint("DEBUG: ", fmt.Sprintf(message, args...)))
}
