package answers

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/expr-lang/expr"
)

// Env is the environment {{ ... }} expressions in answers files are evaluated in
type Env struct {
	TargetOS   string            `expr:"target_os"`
	TargetArch string            `expr:"target_arch"`
	Environ    map[string]string `expr:"environ"`
	// Dir is the base name of the directory being scaffolded
	Dir string `expr:"dir"`
}

func NewEnv(dir string) Env {
	environ := make(map[string]string)
	for _, e := range os.Environ() {
		if i := strings.Index(e, "="); i >= 0 {
			environ[e[:i]] = e[i+1:]
		}
	}

	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	return Env{
		TargetOS:   runtime.GOOS,
		TargetArch: runtime.GOARCH,
		Environ:    environ,
		Dir:        filepath.Base(dir),
	}
}

var exprRegex = regexp.MustCompile(`\{\{(.+?)\}\}`)

// expand replaces every {{ expression }} in s with its value in env
func expand(s string, env Env) (string, error) {
	var firstErr error
	out := exprRegex.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return ""
		}
		expression := strings.TrimSpace(exprRegex.FindStringSubmatch(match)[1])
		result, err := expr.Eval(expression, env)
		if err != nil {
			firstErr = fmt.Errorf("failed to evaluate expression %q: %w", expression, err)
			return ""
		}
		return fmt.Sprint(result)
	})
	return out, firstErr
}

// expandAnswers expands the strings of a decoded answers table in place.
// Answers hold only strings, booleans and string lists, so nothing nests deeper.
func expandAnswers(raw map[string]any, env Env) error {
	for key, val := range raw {
		switch v := val.(type) {
		case string:
			expanded, err := expand(v, env)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			raw[key] = expanded
		case []any:
			for i, item := range v {
				str, ok := item.(string)
				if !ok {
					continue
				}
				expanded, err := expand(str, env)
				if err != nil {
					return fmt.Errorf("%s[%d]: %w", key, i, err)
				}
				v[i] = expanded
			}
		}
	}
	return nil
}
