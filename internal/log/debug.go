// Package log writes optional debug traces to a file. Messages logged
// before a file is configured are buffered and flushed once one is set.
package log

import (
	"log"
	"os"
	"sync"
)

// sink is the io.Writer behind the package logger. With no file it
// buffers, with an empty path it discards.
type sink struct {
	mu      sync.Mutex
	file    *os.File
	pending []byte
	discard bool
}

var (
	debugSink = &sink{}
	stdLogger = log.New(debugSink, "", log.LstdFlags|log.Lmicroseconds)
)

func (s *sink) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discard {
		return len(p), nil
	}

	if s.file != nil {
		n, err = s.file.Write(p)
		// Sync so a crash does not eat the trace that explains it.
		_ = s.file.Sync()
		return n, err
	}

	// p may be reused by the caller after Write returns.
	b := make([]byte, len(p))
	copy(b, p)
	s.pending = append(s.pending, b...)
	return len(p), nil
}

// SetFile routes debug output to the given path, creating the file when
// needed and flushing anything buffered so far. An empty path turns
// logging off and drops the buffer.
func SetFile(path string) error {
	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()

	if debugSink.file != nil {
		_ = debugSink.file.Close()
		debugSink.file = nil
	}

	if path == "" {
		debugSink.discard = true
		debugSink.pending = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		debugSink.discard = true
		debugSink.pending = nil
		return err
	}

	debugSink.file = f
	debugSink.discard = false

	if len(debugSink.pending) > 0 {
		_, _ = f.Write(debugSink.pending)
		_ = f.Sync()
		debugSink.pending = nil
	}

	return nil
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	stdLogger.Printf(format, args...)
}

// Println writes a debug message.
func Println(v ...any) {
	stdLogger.Println(v...)
}

// Close closes the debug log file if open.
func Close() error {
	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()

	if debugSink.file == nil {
		return nil
	}

	err := debugSink.file.Close()
	debugSink.file = nil
	return err
}
