package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// BaseLogger writes prefixed lines to a single writer. A nil writer falls
// back to stderr.
type BaseLogger struct {
	mu     sync.Mutex
	prefix string
	writer io.Writer
}

func NewLogger(writer io.Writer, prefix string) *BaseLogger {
	if writer == nil {
		writer = os.Stderr
	}
	return &BaseLogger{writer: writer, prefix: prefix}
}

func (l *BaseLogger) Log(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.writer, l.prefix+" "+fmt.Sprintf(format, v...))
}

// WithPrefix derives a logger sharing the writer, for subsystem tags like
// "[StorefrontApp] [catalog]".
func (l *BaseLogger) WithPrefix(extra string) *BaseLogger {
	return &BaseLogger{writer: l.writer, prefix: l.prefix + " " + extra}
}
