package session

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const menuPrompt = "What Would You Like To Do? "

type inputLine struct {
	text string
	err  error
}

// readLines feeds lines from in to the returned channel until end of input,
// which is delivered as io.EOF. Reading happens in its own goroutine so a
// cancelled context is noticed while waiting on a terminal. Cancellation
// cannot interrupt a blocked read: after Run returns the goroutine stays in
// Scan until in yields a line or closes, then exits without sending. For
// stdin that lasts until the process exits.
func readLines(ctx context.Context, in io.Reader) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- inputLine{text: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		select {
		case lines <- inputLine{err: err}:
		case <-ctx.Done():
		}
	}()
	return lines
}

func nextLine(ctx context.Context, lines <-chan inputLine) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lines:
		if !ok {
			return "", io.EOF
		}
		return line.text, line.err
	}
}

// Run shows the menu and executes input lines until the exit option is
// chosen, input ends or ctx is cancelled. End of input is treated like the
// exit option.
func (s *Session) Run(ctx context.Context, in io.Reader, output io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, in)
	s.ask = func(ctx context.Context, question string) (string, error) {
		fmt.Fprint(output, question)
		return nextLine(ctx, lines)
	}
	defer func() { s.ask = nil }()

	s.logger.Info().Str("source", s.source).Msg("Session started.")
	for s.state != StateTerminated {
		s.WriteMenu(output)
		fmt.Fprint(output, menuPrompt)

		line, err := nextLine(ctx, lines)
		if err == nil {
			_, err = s.Execute(ctx, line, output)
		}
		if errors.Is(err, io.EOF) {
			s.logger.Info().Msg("End of input.")
			fmt.Fprintln(output)
			fmt.Fprintln(output, "Goodbye.")
			s.terminate()
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}
