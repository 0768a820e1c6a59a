// Package scaffold writes a generated Makefile and the starter source tree to disk.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v6"
	"github.com/qobs-build/bob/internal/makefile"
)

// ErrMakefileExists is returned by Write instead of overwriting a Makefile
var ErrMakefileExists = errors.New("Makefile already exists")

const (
	IncludeDir = "include"
	SourceDir  = "src"
	gitignore  = ".gitignore"
)

// Scaffolder writes projects into Dir. It never changes the process working directory.
type Scaffolder struct {
	Dir string
	// Git initializes a repository and a .gitignore for the build outputs
	Git bool
}

// Result lists what a Write did, relative to the scaffolder's Dir
type Result struct {
	CreatedFiles []string
	CreatedDirs  []string
	Skipped      []string
	GitInit      bool
}

// MakefilePath is where the Makefile is written
func (s *Scaffolder) MakefilePath() string {
	return filepath.Join(s.Dir, makefile.Filename)
}

// Write generates the Makefile for opts and writes it along with the starter tree.
// It refuses to touch anything if a Makefile already exists.
func (s *Scaffolder) Write(opts makefile.Options) (*Result, error) {
	mfPath := s.MakefilePath()
	if _, err := os.Stat(mfPath); err == nil {
		return nil, fmt.Errorf("%s: %w", mfPath, ErrMakefileExists)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	res := &Result{}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", s.Dir, err)
	}
	if err := os.WriteFile(mfPath, []byte(makefile.Generate(opts)), 0o644); err != nil {
		return nil, fmt.Errorf("create file %s: %w", mfPath, err)
	}
	res.CreatedFiles = append(res.CreatedFiles, makefile.Filename)

	layout := opts.Layout()
	if layout.UsesInclude() {
		if err := s.mkdir(res, IncludeDir); err != nil {
			return nil, err
		}
	}
	if layout.UsesSource() {
		if err := s.mkdir(res, SourceDir); err != nil {
			return nil, err
		}
	}

	if err := s.writefile(res, StarterSource(opts.Language()), opts.MainFile()); err != nil {
		return nil, err
	}

	if s.Git {
		if err := s.initGit(res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (s *Scaffolder) mkdir(res *Result, rel string) error {
	path := filepath.Join(s.Dir, rel)
	if stat, err := os.Stat(path); err == nil && stat.IsDir() {
		return nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	res.CreatedDirs = append(res.CreatedDirs, rel)
	return nil
}

// writefile writes content unless the file already exists
func (s *Scaffolder) writefile(res *Result, content, rel string) error {
	path := filepath.Join(s.Dir, rel)
	if _, err := os.Stat(path); err == nil {
		res.Skipped = append(res.Skipped, rel)
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("create file %s: %w", path, err)
	}
	res.CreatedFiles = append(res.CreatedFiles, rel)
	return nil
}

func (s *Scaffolder) initGit(res *Result) error {
	if _, err := os.Stat(filepath.Join(s.Dir, ".git")); errors.Is(err, os.ErrNotExist) {
		if _, err := git.PlainInit(s.Dir, false); err != nil {
			return fmt.Errorf("git init %s: %w", s.Dir, err)
		}
		res.GitInit = true
	}
	return s.writefile(res, makefile.ObjDir+"/\n"+makefile.BinDir+"/\n", gitignore)
}

// ChangeDir makes path the working directory, failing if it does not exist
func ChangeDir(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("the provided directory does not exist: %s", path)
		}
		return err
	}
	if !stat.IsDir() {
		return fmt.Errorf("not a directory: %s", path)
	}
	if err := os.Chdir(path); err != nil {
		return fmt.Errorf("unable to switch to %s: %w", path, err)
	}
	return nil
}
