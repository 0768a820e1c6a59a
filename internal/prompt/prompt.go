// Package prompt asks the scaffolding questions on a terminal, re-asking until
// each answer is valid.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/qobs-build/bob/internal/makefile"
)

// ErrClosed is returned when input ends before a question is answered
var ErrClosed = errors.New("input closed")

// DoneSentinel ends the library list, compared case-insensitively
const DoneSentinel = "done"

// Validator reports whether an answer is acceptable
type Validator func(input string) bool

// ProjectName accepts names usable as a make target and a file name
func ProjectName(s string) bool { return makefile.ValidName(s) }

func LanguageToken(s string) bool { return makefile.ValidLanguageToken(s) }
func StandardToken(s string) bool { return makefile.ValidStandardToken(s) }

// YesNo accepts y or n in either case
func YesNo(s string) bool {
	s = strings.ToLower(s)
	return s == "y" || s == "n"
}

var (
	questionStyle = color.New(color.FgHiCyan, color.Bold)
	warnStyle     = color.New(color.FgYellow)
)

// Prompter asks questions on Out and reads the answers from In
type Prompter struct {
	In  *bufio.Reader
	Out io.Writer
}

// New returns a Prompter reading r and writing questions to w
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{In: bufio.NewReader(r), Out: w}
}

func (p *Prompter) warn(format string, a ...any) {
	fmt.Fprintln(p.Out, warnStyle.Sprintf(format, a...))
}

// ReadLine reads one line with its \n or \r\n ending stripped. A final line
// without a newline is returned as is; EOF with nothing read is ErrClosed.
func (p *Prompter) ReadLine() (string, error) {
	line, err := p.In.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrClosed
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Ask prints question and reads answers until validate accepts one.
// A nil validator accepts anything.
func (p *Prompter) Ask(question string, validate Validator) (string, error) {
	for {
		fmt.Fprintln(p.Out, questionStyle.Sprint(question))
		line, err := p.ReadLine()
		if err != nil {
			return "", err
		}
		if validate == nil || validate(line) {
			return line, nil
		}
		p.warn("invalid option, retrying")
	}
}

// AskYesNo asks question until it is answered with y or n
func (p *Prompter) AskYesNo(question string) (bool, error) {
	answer, err := p.Ask(question+" [y/n]", YesNo)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// AskList reads entries one per line until the done sentinel. Empty lines are
// skipped; with confirm, each entry has to be accepted with a y/n answer.
func (p *Prompter) AskList(question string, confirm bool) ([]string, error) {
	fmt.Fprintln(p.Out, questionStyle.Sprint(question))

	var entries []string
	for {
		line, err := p.ReadLine()
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			p.warn("not adding empty option")
			continue
		}
		if strings.EqualFold(line, DoneSentinel) {
			break
		}
		if confirm {
			ok, err := p.AskYesNo(fmt.Sprintf("Add %q?", line))
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		entries = append(entries, line)
	}
	return entries, nil
}
