package logging

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/invoicer/internal/user"
)

// FileName is the log file created under <data_dir>/logs
const FileName = "invoicer.log"

// Logger is the global slog instance for the application
var Logger *slog.Logger

// ErrUnknownLevel is returned for levels other than debug, info, warn and error
var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel maps debug/info/warn/error to a slog level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w %q", ErrUnknownLevel, s)
	}
	return level, nil
}

// Init initializes the logging system, writing logs to <dataDir>/logs/invoicer.log
// Uses text format for human readability. Closing the returned value releases
// the file and puts back the loggers that were active before Init.
func Init(dataDir, level string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if dataDir == "" {
		return nil, errors.New("no data directory configured")
	}

	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, FileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	sink := &fileSink{
		file:       file,
		prevLogger: slog.Default(),
		prevOutput: log.Writer(),
		prevFlags:  log.Flags(),
	}

	Logger = New(file, lvl)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return sink, nil
}

type fileSink struct {
	file       *os.File
	prevLogger *slog.Logger
	prevOutput io.Writer
	prevFlags  int
}

func (s *fileSink) Close() error {
	slog.SetDefault(s.prevLogger)
	Logger = s.prevLogger
	log.SetOutput(s.prevOutput)
	log.SetFlags(s.prevFlags)
	return s.file.Close()
}

// New builds a text logger on w tagged with the current OS user
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler).With("user", user.CurrentUsername())
}
