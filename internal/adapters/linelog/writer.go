// Package linelog turns a byte stream into one log call per line.
package linelog

import (
	"bytes"
	"strings"
	"sync"
)

// Writer forwards complete lines to log. A trailing partial line is held until
// the next newline or Close.
type Writer struct {
	log func(string)
	mu  sync.Mutex
	buf []byte
}

// New returns a Writer that calls log once per line.
func New(log func(string)) *Writer {
	return &Writer{log: log}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Close flushes any unterminated line.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *Writer) logLine(line []byte) {
	w.log(strings.TrimSuffix(string(line), "\r"))
}
