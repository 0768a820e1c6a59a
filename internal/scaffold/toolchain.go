package scaffold

import (
	"os/exec"

	"github.com/qobs-build/bob/internal/makefile"
)

var (
	commonCCompilers   = []string{"clang", "gcc", "icx", "icc", "tcc"}
	commonCxxCompilers = []string{"clang++", "g++", "icpx", "icpc"}
)

// lookPath is swapped in tests
var lookPath = exec.LookPath

// Toolchain reports whether the compiler named in the Makefile is installed, and
// which other compilers for the language are
type Toolchain struct {
	Compiler     string
	Found        bool
	Alternatives []string
}

func FindToolchain(lang makefile.Language) Toolchain {
	tc := Toolchain{Compiler: lang.Compiler()}
	if _, err := lookPath(tc.Compiler); err == nil {
		tc.Found = true
		return tc
	}

	candidates := commonCCompilers
	if lang == makefile.Cpp {
		candidates = commonCxxCompilers
	}
	for _, compiler := range candidates {
		if compiler == tc.Compiler {
			continue
		}
		if _, err := lookPath(compiler); err == nil {
			tc.Alternatives = append(tc.Alternatives, compiler)
		}
	}
	return tc
}
