package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sumanthreddy2024/artgen/pkg/domain"
)

// Prompt texts, in the order they are asked.
const (
	CountPrompt      = "Enter the number of shapes: "
	CategoriesPrompt = "Enter the shape types (line, circle, rectangle) separated by commas: "
	SizePrompt       = "Enter the art size (e.g., 8,8): "
)

// Prompter reads answers line by line.
type Prompter struct {
	Reader      *bufio.Reader
	Writer      io.Writer
	Interactive bool

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithInteractive controls whether prompt texts are written before reading.
func WithInteractive(interactive bool) Option {
	return func(p *Prompter) {
		p.Interactive = interactive
	}
}

// New creates a Prompter. Nil arguments fall back to stdin and stdout.
func New(r io.Reader, w io.Writer, opts ...Option) *Prompter {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	p := &Prompter{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ask writes question (when interactive) and returns the next sanitized,
// trimmed line. A final line without a newline is accepted. Cancelling ctx
// abandons a pending read.
func (p *Prompter) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.initPump()

	if p.Interactive {
		fmt.Fprint(p.Writer, question)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.inputChan:
		if !ok {
			return "", fmt.Errorf("input error: %w", io.EOF)
		}
		if res.err != nil {
			return "", fmt.Errorf("input error: %w", res.err)
		}
		clean, err := SanitizeInput(strings.TrimSpace(res.text))
		if err != nil {
			return "", fmt.Errorf("input error: %w", err)
		}
		return clean, nil
	}
}

func (p *Prompter) initPump() {
	p.startOnce.Do(func() {
		p.inputChan = make(chan inputResult)
		go p.pump()
	})
}

// pump reads lines until EOF or a read error. Blocking reads on a terminal
// cannot be interrupted, so they run off the caller's goroutine.
func (p *Prompter) pump() {
	defer close(p.inputChan)
	for {
		text, err := p.Reader.ReadString('\n')
		if text != "" {
			p.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.inputChan <- inputResult{err: err}
			}
			return
		}
	}
}

// ReadRequest asks for the shape count, the categories and the canvas size.
func (p *Prompter) ReadRequest(ctx context.Context) (domain.Request, error) {
	var req domain.Request

	answer, err := p.Ask(ctx, CountPrompt)
	if err != nil {
		return req, err
	}
	if req.Count, err = ParseCount(answer); err != nil {
		return req, err
	}

	answer, err = p.Ask(ctx, CategoriesPrompt)
	if err != nil {
		return req, err
	}
	if req.Categories, err = ParseCategories(answer); err != nil {
		return req, err
	}

	answer, err = p.Ask(ctx, SizePrompt)
	if err != nil {
		return req, err
	}
	if req.Size, err = ParseSize(answer); err != nil {
		return req, err
	}

	return req, nil
}
