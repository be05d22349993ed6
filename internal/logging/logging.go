package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// LogPath returns where Init writes logs for dataDir
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "weekboard.log")
}

// Init initializes the logging system, writing logs to <dataDir>/logs/weekboard.log.
// Uses text format for human readability. The returned file should be closed on exit.
func Init(dataDir string, level slog.Level) (io.Closer, error) {
	logPath := LogPath(dataDir)
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	SetOutput(file, level)
	return file, nil
}

// SetOutput installs a text handler writing to w as the default logger
func SetOutput(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same sink
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)
}

// Discard silences all logging; used by quiet CLI runs and tests
func Discard() {
	SetOutput(io.Discard, slog.LevelError)
}
