package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo // Default to INFO for unknown
	}
}

// ParseLevel maps a level name (case-insensitive) to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// LogEntry is the structured log entry passed to the TUI.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

// String renders the entry as a single activity-log line.
func (e LogEntry) String() string {
	line := fmt.Sprintf("%s [%s] %s: %s", e.Timestamp.Format("15:04:05.000"), e.Level, e.Subsystem, e.Message)
	if e.Err != nil {
		line += ": " + e.Err.Error()
	}
	return line
}

// Mode selects where log output goes.
type Mode int

const (
	// ModeCLI writes slog text records to an io.Writer.
	ModeCLI Mode = iota
	// ModeTUI queues entries on a channel drained by the TUI.
	ModeTUI
)

const tuiChannelBufferSize = 2048

// mu guards the active destination so that goroutines running
// wake lock calls can keep logging while the TUI shuts the channel.
var (
	mu           sync.RWMutex
	logger       *slog.Logger
	tuiChannel   chan LogEntry
	tuiMinLevel  LogLevel
	droppedCount atomic.Int64
)

func initMode(mode Mode, level LogLevel, output io.Writer, bufferSize int) <-chan LogEntry {
	mu.Lock()
	defer mu.Unlock()

	if tuiChannel != nil {
		close(tuiChannel)
		tuiChannel = nil
	}

	opts := &slog.HandlerOptions{Level: level.SlogLevel()}
	switch mode {
	case ModeTUI:
		if bufferSize <= 0 {
			bufferSize = tuiChannelBufferSize
		}
		tuiChannel = make(chan LogEntry, bufferSize)
		tuiMinLevel = level
		// The terminal is painted by the TUI; stray slog calls go nowhere.
		logger = slog.New(slog.NewTextHandler(io.Discard, opts))
	default:
		if output == nil {
			output = os.Stderr
		}
		logger = slog.New(slog.NewTextHandler(output, opts))
	}
	slog.SetDefault(logger)
	return tuiChannel
}

// InitForTUI routes log entries at or above filterLevel to the returned
// channel until CloseTUIChannel is called.
func InitForTUI(filterLevel LogLevel) <-chan LogEntry {
	return initMode(ModeTUI, filterLevel, nil, tuiChannelBufferSize)
}

// InitForCLI writes log records at or above filterLevel to output as text.
func InitForCLI(filterLevel LogLevel, output io.Writer) {
	initMode(ModeCLI, filterLevel, output, 0)
}

// Dropped returns how many TUI entries were discarded because the channel
// was full.
func Dropped() int64 {
	return droppedCount.Load()
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	mu.RLock()
	defer mu.RUnlock()

	if tuiChannel != nil {
		if level < tuiMinLevel {
			return
		}
		entry := LogEntry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		// The update loop both logs and drains this channel; never block it.
		select {
		case tuiChannel <- entry:
		default:
			droppedCount.Add(1)
		}
		return
	}

	l := logger
	if l == nil {
		l = slog.Default()
	}
	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}

// CloseTUIChannel closes the TUI log channel. Later entries fall back to
// the slog default handler.
func CloseTUIChannel() {
	mu.Lock()
	defer mu.Unlock()
	if tuiChannel != nil {
		close(tuiChannel)
		tuiChannel = nil
	}
}
