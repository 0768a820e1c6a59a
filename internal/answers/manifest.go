package answers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Project is a single [[project]] entry of a batch manifest
type Project struct {
	// Dir is relative to the manifest unless absolute
	Dir     string
	Answers Answers
}

// Manifest lists projects to scaffold in one run:
//
//	[[project]]
//	dir = "tools/hello"
//	name = "hello"
//	language = "c"
//	...
type Manifest struct {
	Projects []Project
}

// ParseManifest reads a batch manifest. Expressions in a project are evaluated with
// {{ dir }} naming that project's directory, resolved against baseDir.
func ParseManifest(rdr io.Reader, baseDir string) (*Manifest, error) {
	raw, err := decodeRaw(rdr)
	if err != nil {
		return nil, err
	}

	entries, ok := raw["project"].([]any)
	if !ok || len(entries) == 0 {
		return nil, errors.New("manifest has no [[project]] entries")
	}

	m := &Manifest{Projects: make([]Project, 0, len(entries))}
	seen := make(map[string]int)
	for i, entry := range entries {
		table, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("project #%d: expected a table", i+1)
		}

		dir, _ := table["dir"].(string)
		if dir == "" {
			return nil, fmt.Errorf("project #%d: missing dir", i+1)
		}
		dir, err = expand(dir, NewEnv(baseDir))
		if err != nil {
			return nil, fmt.Errorf("project #%d: %w", i+1, err)
		}
		dir = filepath.Clean(dir)
		if prev, dup := seen[dir]; dup {
			return nil, fmt.Errorf("project #%d: dir %q already used by project #%d", i+1, dir, prev)
		}
		seen[dir] = i + 1
		delete(table, "dir")

		projectDir := dir
		if !filepath.IsAbs(projectDir) {
			projectDir = filepath.Join(baseDir, dir)
		}
		a, err := fromRaw(table, NewEnv(projectDir))
		if err != nil {
			return nil, fmt.Errorf("project #%d (%s): %w", i+1, dir, err)
		}
		if _, err := a.Options(); err != nil {
			return nil, fmt.Errorf("project #%d (%s): %w", i+1, dir, err)
		}
		m.Projects = append(m.Projects, Project{Dir: dir, Answers: a})
	}

	return m, nil
}

// ParseManifestFromFile parses a manifest from a filepath, resolving against its directory
func ParseManifestFromFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ParseManifest(bufio.NewReader(f), filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
