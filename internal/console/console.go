package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Console is a line-based prompt over a reader and a writer.
// Lines are read by a background goroutine so a pending prompt can be abandoned on cancellation.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer

	start sync.Once
	lines chan line
}

type line struct {
	text string
	err  error
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		lines:   make(chan line),
	}
}

func (that *Console) read() {
	defer close(that.lines)

	for that.scanner.Scan() {
		that.lines <- line{text: that.scanner.Text()}
	}

	if err := that.scanner.Err(); err != nil {
		that.lines <- line{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

func (that *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(that.out, a...)
}

// Notify - implements player.Notifier.
func (that *Console) Notify(message string) {
	that.Println(message)
}

// AskLine - prints the prompt and returns the next line without surrounding whitespace.
// io.EOF is returned once the input is exhausted.
func (that *Console) AskLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	_, _ = fmt.Fprint(that.out, prompt)

	that.start.Do(func() {
		go that.read()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case next, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		if next.err != nil {
			return "", next.err
		}

		return strings.TrimSpace(next.text), nil
	}
}

// AskInt - implements player.InputSource.
func (that *Console) AskInt(ctx context.Context, prompt string) (int, error) {
	line, err := that.AskLine(ctx, prompt)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidInput, line)
	}

	return value, nil
}

// Choose - repeats the prompt until the answer is one of options. The answer is lower-cased first.
func (that *Console) Choose(ctx context.Context, prompt string, options ...string) (string, error) {
	return that.ChooseWithHint(ctx, prompt, "", options...)
}

// ChooseWithHint - same as Choose but prints hint before every repeated prompt. An empty hint is not printed.
func (that *Console) ChooseWithHint(ctx context.Context, prompt, hint string, options ...string) (string, error) {
	for {
		answer, err := that.AskLine(ctx, prompt)
		if err != nil {
			return "", err
		}

		answer = strings.ToLower(answer)
		if slices.Contains(options, answer) {
			return answer, nil
		}

		if hint != "" {
			that.Println(hint)
		}
	}
}
