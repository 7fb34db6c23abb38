package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errNotANumber = errors.New("not a number")

// Prompter reads line-oriented input and writes console output. All reads
// block until a full line arrives; a read error (stream ended) is returned to
// the caller so menus can unwind instead of spinning.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Prompter) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// Line prints the label and reads one trimmed line.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	s, err := p.in.ReadString('\n')
	if err != nil && s == "" {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// Int reads one line and parses it as an integer. The parse failure comes
// back as an error; the caller owns the retry policy.
func (p *Prompter) Int(label string) (int, error) {
	s, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotANumber, s)
	}
	return n, nil
}

// Float reads one line and parses it as a decimal number.
func (p *Prompter) Float(label string) (float64, error) {
	s, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotANumber, s)
	}
	return f, nil
}

// Choice re-prompts until a line parses as an integer. Read errors still
// return immediately.
func (p *Prompter) Choice(label string) (int, error) {
	for {
		n, err := p.Int(label)
		if errors.Is(err, errNotANumber) {
			p.Println("Your input is invalid!")
			continue
		}
		if err != nil {
			return 0, err
		}
		return n, nil
	}
}

// FloatChoice re-prompts until a line parses as a decimal number.
func (p *Prompter) FloatChoice(label string) (float64, error) {
	for {
		f, err := p.Float(label)
		if errors.Is(err, errNotANumber) {
			p.Println("Your input is invalid!")
			continue
		}
		if err != nil {
			return 0, err
		}
		return f, nil
	}
}
