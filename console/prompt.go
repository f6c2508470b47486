package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter is the line-oriented input port of a session: it writes a prompt
// and reads one line of answer.
type Prompter struct {
	r   *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(in), out: out}
}

// RawLine prints prompt and returns the next input line exactly as typed,
// without the line terminator. It returns io.EOF when the input is exhausted.
func (p *Prompter) RawLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Line is RawLine with surrounding spaces removed.
func (p *Prompter) Line(prompt string) (string, error) {
	s, err := p.RawLine(prompt)
	return strings.TrimSpace(s), err
}

// Int prompts until the answer parses as an integer.
func (p *Prompter) Int(prompt string) (int, error) {
	for {
		s, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n, nil
		}
		p.Println("Invalid input")
	}
}

func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}
