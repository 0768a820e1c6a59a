package makefile

import (
	"slices"
	"strings"
	"unicode"
)

// standardPrefix is the prefix every explicit standard flag must carry
const standardPrefix = "-std="

// nameMetachars break a name used as a make target or inside a recipe
const nameMetachars = ":$#=%;\\*?[]()'\"`|&<>"

// reservedNames are the fixed rules of the generated Makefile
var reservedNames = []string{"all", "directories", "release", "clean", "run", "run-release"}

// These checks belong to the collaborators that build Options from raw input.
// Nothing in this package calls them; NewOptions trusts its arguments.

// ValidName accepts non-empty names without whitespace or make metacharacters
// that do not collide with a generated rule
func ValidName(s string) bool {
	if s == "" || strings.ContainsAny(s, nameMetachars) {
		return false
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	return !slices.Contains(reservedNames, s)
}

func ValidLanguageToken(s string) bool {
	_, ok := ParseLanguage(s)
	return ok
}

func ValidStandardToken(s string) bool {
	return s == StandardLatest || strings.HasPrefix(s, standardPrefix)
}
