package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger for debug messages
var (
	isVerbose = false
	logDir    = "/tmp"
	logOut    io.Closer
	logger    = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Log prints debug messages to the log file if verbose mode is enabled
func Log(text string, args ...interface{}) {
	if isVerbose {
		logger.Debug(fmt.Sprintf(text, args...))
	}
}

// Warn records a structured warning. Warnings reach the log file whether
// or not verbose mode is on.
func Warn(msg string, kv ...any) {
	logger.Warn(msg, kv...)
}

// LogPath is the log file for the given day.
func LogPath(day time.Time) string {
	return filepath.Join(logDir, fmt.Sprintf("suite_%s.log", day.Format("2006-01-02")))
}

// InitLogger initializes the logging system. Verbose runs create the log
// file up front; quiet runs only open it for the first warning.
func InitLogger(verbose bool) {
	path := LogPath(time.Now())

	if !verbose {
		lazy := &lazyFile{path: path}
		logOut = lazy
		SetOutput(lazy, false)
		return
	}

	logFile, err := os.Create(path)
	if err != nil {
		fmt.Printf("Error creating log file: %v\n", err)
		return
	}

	logOut = logFile
	SetOutput(logFile, true)
	Log("Verbose logging enabled")
}

// SetOutput redirects log records to w. Debug records are only emitted
// when verbose is set.
func SetOutput(w io.Writer, verbose bool) {
	isVerbose = verbose
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// CloseLogger closes the log file if it's open
func CloseLogger() {
	if logOut != nil {
		logOut.Close()
		logOut = nil
	}
	SetOutput(io.Discard, false)
}

// lazyFile appends to path, creating it on the first write.
type lazyFile struct {
	mu   sync.Mutex
	path string
	f    *os.File
	err  error
}

func (l *lazyFile) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil && l.err == nil {
		l.f, l.err = os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}
	if l.err != nil {
		return 0, l.err
	}
	return l.f.Write(p)
}

func (l *lazyFile) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}
