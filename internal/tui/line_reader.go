package tui

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// LineReader reads operator input line by line while honouring context
// cancellation. A background goroutine owns the underlying reader; it is
// started by the first ReadLine, so an io.Reader may be handed to another
// consumer (e.g. the login form) before that.
type LineReader struct {
	r     io.Reader
	once  sync.Once
	lines chan string
	err   error
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: r, lines: make(chan string)}
}

func (l *LineReader) start() {
	go func() {
		defer close(l.lines)

		scanner := bufio.NewScanner(l.r)
		for scanner.Scan() {
			l.lines <- strings.TrimRight(scanner.Text(), "\r")
		}
		l.err = scanner.Err()
	}()
}

// ReadLine returns the next line without its terminator. It returns io.EOF
// when the input is exhausted and ctx.Err() when ctx is done first.
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	l.once.Do(l.start)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-l.lines:
		if !ok {
			if l.err != nil {
				return "", l.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}
