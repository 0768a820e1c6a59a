package makefile

import (
	"slices"
	"strings"
)

// Language is the language a project is written in
type Language int

const (
	C Language = iota
	Cpp
)

// ParseLanguage maps a validated language token to a Language.
// Only "c", "cpp" and "c++" are recognized.
func ParseLanguage(token string) (Language, bool) {
	switch token {
	case "c":
		return C, true
	case "cpp", "c++":
		return Cpp, true
	default:
		return 0, false
	}
}

func (l Language) String() string {
	switch l {
	case C:
		return "c"
	case Cpp:
		return "c++"
	default:
		panic("Language.String: unreachable")
	}
}

// Compiler returns the compiler executable used for this language
func (l Language) Compiler() string {
	switch l {
	case C:
		return "clang"
	case Cpp:
		return "clang++"
	default:
		panic("Language.Compiler: unreachable")
	}
}

// SourceExtension returns the source file extension, without the dot
func (l Language) SourceExtension() string {
	switch l {
	case C:
		return "c"
	case Cpp:
		return "cpp"
	default:
		panic("Language.SourceExtension: unreachable")
	}
}

// LatestStandard returns the flag selecting the newest supported standard
func (l Language) LatestStandard() string {
	switch l {
	case C:
		return "-std=c2x"
	case Cpp:
		return "-std=c++2b"
	default:
		panic("Language.LatestStandard: unreachable")
	}
}

// StandardLatest selects the language's newest standard
const StandardLatest = "latest"

// ResolveStandard turns a standard token into a compiler flag.
// Anything other than "latest" is trusted to already be a flag.
func ResolveStandard(lang Language, standard string) string {
	if standard == StandardLatest {
		return lang.LatestStandard()
	}
	return standard
}

// Layout describes which of the optional src/ and include/ directories are used
type Layout int

const (
	NeitherUsed Layout = iota
	SourceOnly
	IncludeOnly
	Both
)

// LayoutOf maps the two directory answers to a Layout
func LayoutOf(useSource, useInclude bool) Layout {
	switch {
	case useSource && useInclude:
		return Both
	case useSource:
		return SourceOnly
	case useInclude:
		return IncludeOnly
	default:
		return NeitherUsed
	}
}

// Paths returns the include flag and the source directory prefix for the layout.
// Either may be empty.
func (l Layout) Paths() (include, srcPrefix string) {
	switch l {
	case NeitherUsed:
		return "", ""
	case SourceOnly:
		return "", "src/"
	case IncludeOnly:
		return "-Iinclude", ""
	case Both:
		return "-Iinclude", "src/"
	default:
		panic("Layout.Paths: unreachable")
	}
}

func (l Layout) UsesSource() bool  { return l == SourceOnly || l == Both }
func (l Layout) UsesInclude() bool { return l == IncludeOnly || l == Both }

func (l Layout) String() string {
	switch l {
	case NeitherUsed:
		return "neither"
	case SourceOnly:
		return "src"
	case IncludeOnly:
		return "include"
	case Both:
		return "src+include"
	default:
		panic("Layout.String: unreachable")
	}
}

// Options is a validated description of the project to generate a Makefile for.
// It is never mutated after construction.
type Options struct {
	name      string
	lang      Language
	standard  string
	layout    Layout
	libraries []string
}

// NewOptions builds Options from already validated answers. The standard is
// resolved immediately, and libraries are copied.
func NewOptions(name string, lang Language, standard string, useSource, useInclude bool, libraries []string) Options {
	return Options{
		name:      name,
		lang:      lang,
		standard:  ResolveStandard(lang, standard),
		layout:    LayoutOf(useSource, useInclude),
		libraries: slices.Clone(libraries),
	}
}

func (o Options) Name() string            { return o.name }
func (o Options) Language() Language      { return o.lang }
func (o Options) Layout() Layout          { return o.layout }
func (o Options) Compiler() string        { return o.lang.Compiler() }
func (o Options) SourceExtension() string { return o.lang.SourceExtension() }

// StandardFlag returns the resolved -std= flag
func (o Options) StandardFlag() string { return o.standard }

// DirectoryPaths returns the include flag and source prefix of the layout
func (o Options) DirectoryPaths() (include, srcPrefix string) { return o.layout.Paths() }

// Libraries returns a copy of the library names
func (o Options) Libraries() []string { return slices.Clone(o.libraries) }

// LinkerFlags renders the libraries as space separated -l flags, in order
func (o Options) LinkerFlags() string {
	flags := make([]string, 0, len(o.libraries))
	for _, lib := range o.libraries {
		flags = append(flags, "-l"+lib)
	}
	return strings.Join(flags, " ")
}

// CompilerFlags joins the standard and include flags, skipping empty ones
func (o Options) CompilerFlags() string {
	include, _ := o.DirectoryPaths()
	return joinNonEmpty(o.standard, include)
}

// MainFile is the path of the starter source file, relative to the project root
func (o Options) MainFile() string {
	_, srcPrefix := o.DirectoryPaths()
	return srcPrefix + "main." + o.SourceExtension()
}

func joinNonEmpty(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}
