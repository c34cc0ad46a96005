// Package logger writes to a session log file under the user's config
// directory. The TUI owns the terminal while it runs, so diagnostics go
// to a file instead of stderr.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// maxSize caps the log file; past it the file is rotated once to .old.
const maxSize = 5 << 20

var (
	mu      sync.Mutex
	sink    *os.File
	enabled = true
)

// Init opens ~/.config/spark/spark.log for appending, rotating the
// previous file out of the way when it has grown past maxSize.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to resolve home directory: %w", err)
	}

	dir := filepath.Join(home, ".config", "spark")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, "spark.log")
	if info, err := os.Stat(path); err == nil && info.Size() > maxSize {
		os.Remove(path + ".old")
		os.Rename(path, path+".old")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	mu.Lock()
	sink = f
	mu.Unlock()
	return nil
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if sink != nil {
		sink.Close()
		sink = nil
	}
}

// Disable silences the logger; tests use this so runs never touch the
// real log file.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

func Info(format string, args ...any) {
	write("INFO", format, args...)
}

func Warn(format string, args ...any) {
	write("WARN", format, args...)
}

func Error(format string, args ...any) {
	write("ERROR", format, args...)
}

func write(level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled || sink == nil {
		return
	}
	fmt.Fprintf(sink, "[%s] %s: %s\n",
		time.Now().Format("2006-01-02 15:04:05"), level, fmt.Sprintf(format, args...))
}
