package scaffold

import (
	"os"
	"path"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/qobs-build/bob/internal/makefile"
)

// Sources splits the existing source files of a project by whether the
// generated $(wildcard) picks them up. Paths use forward slashes.
type Sources struct {
	Matched   []string
	Unmatched []string
}

// ScanSources globs dir for files with the project's source extension
func ScanSources(dir string, opts makefile.Options) (*Sources, error) {
	_, srcPrefix := opts.DirectoryPaths()
	ext := "." + opts.SourceExtension()

	matches, err := doublestar.Glob(os.DirFS(dir), "**/*"+ext, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	slices.Sort(matches)

	// $(wildcard) only sees files directly inside the source prefix
	want := path.Clean(srcPrefix)
	if srcPrefix == "" {
		want = "."
	}

	res := &Sources{}
	for _, match := range matches {
		if path.Dir(match) == want {
			res.Matched = append(res.Matched, match)
		} else {
			res.Unmatched = append(res.Unmatched, match)
		}
	}
	return res, nil
}
