package polint

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorBlue   = "\033[34m"
)

// Verbose enables LogVerbose output. The CLI sets it from -v.
var Verbose bool

var (
	logMu   sync.Mutex
	logFile *os.File
)

func InitLogFile(path string) error {
	logMu.Lock()
	defer logMu.Unlock()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	logFile = f
	return nil
}

func CloseLogFile() {
	logMu.Lock()
	defer logMu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// logLine writes to stderr (unless POLINT_QUIET is set) and mirrors the
// line, uncolored, into the log file if one is open. Stdout stays
// reserved for findings and entry listings so output can be piped.
func logLine(prefix, color, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	ts := time.Now().Format("15:04:05")
	line := fmt.Sprintf("[%s] %s %s", ts, prefix, msg)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		line = fmt.Sprintf("[%s] %s%s%s %s", ts, color, prefix, ColorReset, msg)
	}
	if os.Getenv("POLINT_QUIET") == "" {
		fmt.Fprintln(os.Stderr, line)
	}

	logMu.Lock()
	defer logMu.Unlock()
	if logFile != nil {
		fmt.Fprintf(logFile, "[%s] %s %s\n", ts, prefix, msg)
	}
}

func LogInfo(format string, args ...any) {
	logLine("INFO", ColorCyan, format, args...)
}

func LogOK(format string, args ...any) {
	logLine(" OK ", ColorGreen, format, args...)
}

func LogWarn(format string, args ...any) {
	logLine("WARN", ColorYellow, format, args...)
}

func LogError(format string, args ...any) {
	logLine(" ERR", ColorRed, format, args...)
}

// LogVerbose logs per-file progress lines that are noise unless asked for.
func LogVerbose(format string, args ...any) {
	if !Verbose {
		return
	}
	logLine(" DBG", ColorBlue, format, args...)
}
