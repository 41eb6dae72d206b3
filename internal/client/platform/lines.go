package platform

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// Lines is the only reader of a console input stream. The REPL and the
// confirmation prompt both take their input from it, one caller at a time.
// A read abandoned because its context ended stays in flight, and the line
// it eventually yields goes to the next caller.
type Lines struct {
	r    *bufio.Reader
	turn chan struct{}

	// inflight is owned by whoever holds turn.
	inflight chan lineResult
}

type lineResult struct {
	line string
	err  error
}

func NewLines(r io.Reader) *Lines {
	return &Lines{
		r:    bufio.NewReader(r),
		turn: make(chan struct{}, 1),
	}
}

// ReadLine returns the next line with surrounding whitespace trimmed. A
// final line without a newline is returned with a nil error; io.EOF follows.
func (l *Lines) ReadLine(ctx context.Context) (string, error) {
	select {
	case l.turn <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	defer func() { <-l.turn }()

	if l.inflight == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := l.r.ReadString('\n')
			if errors.Is(err, io.EOF) && len(line) > 0 {
				err = nil
			}
			ch <- lineResult{line: strings.TrimSpace(line), err: err}
		}()
		l.inflight = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-l.inflight:
		l.inflight = nil
		return r.line, r.err
	}
}
