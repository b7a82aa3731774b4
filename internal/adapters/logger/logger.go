package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// FileLogger writes debug and error lines to a file so the terminal stays
// free for the TUI.
type FileLogger struct {
	file  *os.File
	log   *log.Logger
	debug bool
}

// NewFileLogger opens (or creates) path for appending. Debug lines are only
// written when debug is true.
func NewFileLogger(path string, debug bool) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	// LogToFile also points the standard logger at the same file, which
	// catches anything Bubble Tea itself logs.
	f, err := tea.LogToFile(path, "genex")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &FileLogger{
		file:  f,
		log:   log.New(f, "genex ", log.LstdFlags|log.Lmicroseconds),
		debug: debug,
	}, nil
}

func (l *FileLogger) Debug(msg string) {
	if !l.debug {
		return
	}
	l.log.Println("DEBUG " + msg)
}

func (l *FileLogger) Error(msg string) {
	l.log.Println("ERROR " + msg)
}

// Close closes the underlying file.
func (l *FileLogger) Close() error {
	return l.file.Close()
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string) {}
func (NopLogger) Error(string) {}

// StderrLogger prints errors to stderr and drops debug output, for
// non-interactive commands.
type StderrLogger struct{}

func (StderrLogger) Debug(string) {}

func (StderrLogger) Error(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}
