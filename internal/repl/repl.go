// Package repl runs the line-oriented console front-end.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
)

const maxLineSize = 1 << 20

// Session is the request/response core the REPL drives.
type Session interface {
	Welcome() string
	Respond(line string) string
	IsExit() bool
}

// Run prints the greeting, then answers one line at a time until bye, end
// of input, or ctx is done. A cancelled ctx is a normal shutdown.
func Run(ctx context.Context, sess Session, in io.Reader, out io.Writer, logger *slog.Logger) error {
	if _, err := io.WriteString(out, sess.Welcome()); err != nil {
		return fmt.Errorf("repl: write: %w", err)
	}

	scanCtx, stop := context.WithCancel(ctx)
	defer stop()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go scan(scanCtx, in, lines, scanErr)

	for !sess.IsExit() {
		select {
		case <-ctx.Done():
			logger.Info("repl stopped", slog.String("reason", ctx.Err().Error()))
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("repl: read: %w", err)
				}
				logger.Info("repl input closed")
				return nil
			}
			if _, err := io.WriteString(out, sess.Respond(line)); err != nil {
				return fmt.Errorf("repl: write: %w", err)
			}
		}
	}
	return nil
}

// scan feeds lines until EOF, then reports the scanner error and closes
// lines. It gives up early when ctx is done.
func scan(ctx context.Context, in io.Reader, lines chan<- string, errc chan<- error) {
	defer close(lines)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			errc <- nil
			return
		}
	}
	errc <- scanner.Err()
}
