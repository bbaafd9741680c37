package logging

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCLIMode_WritesText(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)
	defer CloseTUIChannel()

	Debug("Test", "hidden %d", 1)
	Info("Test", "shown %d", 2)
	Error("Test", errors.New("boom"), "failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "subsystem=Test")
	assert.Contains(t, out, "error=boom")
}

func TestTUIMode_SendsEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()
	require.NotNil(t, ch)

	Debug("Session", "filtered")
	Warn("Session", "wake lock %s", "lost")

	select {
	case e := <-ch:
		assert.Equal(t, LevelWarn, e.Level)
		assert.Equal(t, "Session", e.Subsystem)
		assert.Equal(t, "wake lock lost", e.Message)
	case <-time.After(time.Second):
		t.Fatal("no log entry received")
	}

	select {
	case e := <-ch:
		t.Fatalf("unexpected entry %v", e)
	default:
	}
}

func TestTUIMode_DropsWhenFull(t *testing.T) {
	initMode(ModeTUI, LevelDebug, nil, 1)
	defer CloseTUIChannel()

	before := Dropped()
	Info("Test", "one")
	Info("Test", "two")
	assert.Equal(t, before+1, Dropped())
}

func TestLogEntry_String(t *testing.T) {
	e := LogEntry{
		Timestamp: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		Level:     LevelError,
		Subsystem: "WakeLock",
		Message:   "acquire failed",
		Err:       errors.New("denied"),
	}
	assert.Equal(t, "09:30:00.000 [ERROR] WakeLock: acquire failed: denied", e.String())
}

func TestCloseTUIChannel_WhileLogging(t *testing.T) {
	ch := InitForTUI(LevelDebug)
	go func() {
		for range ch {
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				Debug("WakeLock", "tick %d", j)
			}
		}()
	}
	CloseTUIChannel()
	wg.Wait()

	assert.NotPanics(t, func() { Info("Test", "after close") })
}

func TestInitForTUI_ReplacesChannel(t *testing.T) {
	first := InitForTUI(LevelInfo)
	second := InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	_, open := <-first
	assert.False(t, open, "re-initializing closes the previous channel")

	Info("Test", "routed")
	select {
	case e := <-second:
		assert.Equal(t, "routed", e.Message)
	case <-time.After(time.Second):
		t.Fatal("no log entry received")
	}
}
