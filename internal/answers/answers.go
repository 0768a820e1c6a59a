// Package answers reads prepared answers to the scaffolding questions from TOML,
// so projects can be scaffolded without a terminal.
package answers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/qobs-build/bob/internal/makefile"
)

// Answers holds the answers present in a file. Nil means the question was not answered.
type Answers struct {
	Name      *string   `toml:"name"`
	Language  *string   `toml:"language"`
	Standard  *string   `toml:"standard"`
	Source    *bool     `toml:"src"`
	Include   *bool     `toml:"include"`
	Libraries *[]string `toml:"libraries"`
}

// Complete reports whether every question is answered
func (a Answers) Complete() bool {
	return a.Name != nil && a.Language != nil && a.Standard != nil &&
		a.Source != nil && a.Include != nil && a.Libraries != nil
}

// Options validates a complete set of answers and builds makefile.Options from it
func (a Answers) Options() (makefile.Options, error) {
	var missing []string
	if a.Name == nil {
		missing = append(missing, "name")
	}
	if a.Language == nil {
		missing = append(missing, "language")
	}
	if a.Standard == nil {
		missing = append(missing, "standard")
	}
	if a.Source == nil {
		missing = append(missing, "src")
	}
	if a.Include == nil {
		missing = append(missing, "include")
	}
	if len(missing) > 0 {
		return makefile.Options{}, fmt.Errorf("missing answers: %s", strings.Join(missing, ", "))
	}

	if err := a.Validate(); err != nil {
		return makefile.Options{}, err
	}

	lang, _ := makefile.ParseLanguage(*a.Language)
	var libs []string
	if a.Libraries != nil {
		libs = *a.Libraries
	}
	return makefile.NewOptions(*a.Name, lang, *a.Standard, *a.Source, *a.Include, libs), nil
}

// Validate checks the answers that are present
func (a Answers) Validate() error {
	if a.Name != nil && !makefile.ValidName(*a.Name) {
		return fmt.Errorf("invalid name %q, must be non-empty without spaces or make metacharacters and not a built-in rule", *a.Name)
	}
	if a.Language != nil && !makefile.ValidLanguageToken(*a.Language) {
		return fmt.Errorf("invalid language %q, must be one of c, cpp, c++", *a.Language)
	}
	if a.Standard != nil && !makefile.ValidStandardToken(*a.Standard) {
		return fmt.Errorf("invalid standard %q, must be \"latest\" or start with -std=", *a.Standard)
	}
	if a.Libraries != nil {
		for i, lib := range *a.Libraries {
			if strings.TrimSpace(lib) == "" {
				return fmt.Errorf("library #%d is empty", i+1)
			}
		}
	}
	return nil
}

func mustMarshal(v any) string {
	b, err := toml.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func decodeRaw(rdr io.Reader) (map[string]any, error) {
	var raw map[string]any
	dec := toml.NewDecoder(rdr)
	if err := dec.Decode(&raw); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			return nil, errors.New(derr.String())
		}
		return nil, err
	}
	if raw == nil {
		raw = make(map[string]any)
	}
	return raw, nil
}

func fromRaw(raw map[string]any, env Env) (Answers, error) {
	if err := expandAnswers(raw, env); err != nil {
		return Answers{}, fmt.Errorf("error processing expressions in answers: %w", err)
	}

	var a Answers
	if err := toml.Unmarshal([]byte(mustMarshal(raw)), &a); err != nil {
		return Answers{}, err
	}
	if err := a.Validate(); err != nil {
		return Answers{}, err
	}
	return a, nil
}

// Parse reads answers from rdr, evaluating {{ }} expressions in env
func Parse(rdr io.Reader, env Env) (Answers, error) {
	raw, err := decodeRaw(rdr)
	if err != nil {
		return Answers{}, err
	}
	return fromRaw(raw, env)
}

// ParseFile parses an answers file from a filepath
func ParseFile(path string, env Env) (Answers, error) {
	f, err := os.Open(path)
	if err != nil {
		return Answers{}, err
	}
	defer f.Close()

	a, err := Parse(bufio.NewReader(f), env)
	if err != nil {
		return Answers{}, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}
