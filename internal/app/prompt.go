package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when input ends before a question is answered.
var ErrNoInput = errors.New("no input")

// prompter asks questions on out and reads one line answers from in.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask writes question and returns the answer without its line ending.
// Surrounding spaces are kept.
func (p *prompter) ask(question string) (string, error) {
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %s", ErrNoInput, strings.TrimSpace(question))
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
