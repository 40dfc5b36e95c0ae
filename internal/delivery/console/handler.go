// Package console is the terminal delivery of the quiz: it renders prompts to a
// writer and reads one line of input per question.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/aliskhannn/intelligent-quiz/internal/domain/entities"
)

// line is one read from the input; err is set only on the last read.
type line struct {
	text string
	err  error
}

// Handler implements service.QuizIO over a line-oriented reader and a writer.
// Lines are read by a background goroutine so that a blocked read never
// outlives a cancelled context.
type Handler struct {
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger

	startOnce sync.Once
	lines     chan line
}

// NewHandler creates a new console Handler.
func NewHandler(in io.Reader, out io.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
		lines:  make(chan line),
	}
}

func (h *Handler) ShowIntro(total int) error {
	return h.write(renderIntro(total))
}

func (h *Handler) ShowQuestion(num, total int, q entities.Question) error {
	return h.write(renderQuestion(num, total, q))
}

// ReadAnswer blocks until a full line is read or ctx is done.
// It returns io.EOF when the input is exhausted.
func (h *Handler) ReadAnswer(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	h.startOnce.Do(func() { go h.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-h.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err == nil {
			return l.text, nil
		}
		// Keep the next prompt off the unanswered line.
		_ = h.write("\n")
		if errors.Is(l.err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("read answer: %w", l.err)
	}
}

// readLines feeds h.lines until the input fails, then closes the channel.
// Lines have no length limit.
func (h *Handler) readLines() {
	defer close(h.lines)

	for {
		text, err := h.in.ReadString('\n')
		if err != nil && text != "" && errors.Is(err, io.EOF) {
			// Last line without a trailing newline.
			h.lines <- line{text: strings.TrimRight(text, "\r\n")}
			h.lines <- line{err: io.EOF}
			return
		}
		if err != nil {
			h.lines <- line{err: err}
			return
		}
		h.lines <- line{text: strings.TrimRight(text, "\r\n")}
	}
}

func (h *Handler) ShowResult(q entities.Question, result entities.AnswerResult) error {
	return h.write(renderResult(q, result))
}

func (h *Handler) ShowScore(score entities.Score) error {
	return h.write(renderScore(score))
}

func (h *Handler) write(s string) error {
	if _, err := io.WriteString(h.out, s); err != nil {
		h.logger.Error("failed to write to console", zap.Error(err))
		return err
	}
	return nil
}
