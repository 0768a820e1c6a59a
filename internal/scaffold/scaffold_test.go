package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/qobs-build/bob/internal/makefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func readFile(t *testing.T, elem ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(elem...))
	require.NoError(t, err)
	return string(data)
}

func TestWriteWithSourceDir(t *testing.T) {
	dir := t.TempDir()
	opts := makefile.NewOptions("demo", makefile.C, "latest", true, false, []string{"m"})

	s := &Scaffolder{Dir: dir}
	res, err := s.Write(opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"Makefile", "src/main.c"}, res.CreatedFiles)
	assert.Equal(t, []string{"src"}, res.CreatedDirs)
	assert.Empty(t, res.Skipped)
	assert.False(t, res.GitInit)

	assert.Equal(t, makefile.Generate(opts), readFile(t, dir, "Makefile"))
	assert.Equal(t, StarterSource(makefile.C), readFile(t, dir, "src", "main.c"))
	assert.NoDirExists(t, filepath.Join(dir, "include"))
}

func TestWriteAtRoot(t *testing.T) {
	dir := t.TempDir()
	opts := makefile.NewOptions("game", makefile.Cpp, "latest", false, true, nil)

	res, err := (&Scaffolder{Dir: dir}).Write(opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"Makefile", "main.cpp"}, res.CreatedFiles)
	assert.Equal(t, []string{"include"}, res.CreatedDirs)
	assert.DirExists(t, filepath.Join(dir, "include"))
	assert.NoDirExists(t, filepath.Join(dir, "src"))
	assert.Contains(t, readFile(t, dir, "main.cpp"), "#include <iostream>")
}

func TestWriteRefusesExistingMakefile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Makefile"), []byte("all:\n"), 0o644))

	opts := makefile.NewOptions("demo", makefile.C, "latest", true, true, nil)
	_, err := (&Scaffolder{Dir: dir}).Write(opts)
	require.ErrorIs(t, err, ErrMakefileExists)

	assert.Equal(t, "all:\n", readFile(t, dir, "Makefile"))
	assert.NoDirExists(t, filepath.Join(dir, "src"))
	assert.NoDirExists(t, filepath.Join(dir, "include"))
}

func TestWriteKeepsExistingSources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.c"), []byte("int main(void) { return 1; }\n"), 0o644))

	opts := makefile.NewOptions("demo", makefile.C, "latest", true, false, nil)
	res, err := (&Scaffolder{Dir: dir}).Write(opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"Makefile"}, res.CreatedFiles)
	assert.Empty(t, res.CreatedDirs)
	assert.Equal(t, []string{"src/main.c"}, res.Skipped)
	assert.Equal(t, "int main(void) { return 1; }\n", readFile(t, dir, "src", "main.c"))
}

func TestWriteCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tools", "hello")
	opts := makefile.NewOptions("hello", makefile.C, "latest", false, false, nil)

	_, err := (&Scaffolder{Dir: dir}).Write(opts)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "Makefile"))
	assert.FileExists(t, filepath.Join(dir, "main.c"))
}

func TestWriteGit(t *testing.T) {
	dir := t.TempDir()
	opts := makefile.NewOptions("demo", makefile.C, "latest", true, false, nil)

	res, err := (&Scaffolder{Dir: dir, Git: true}).Write(opts)
	require.NoError(t, err)

	assert.True(t, res.GitInit)
	assert.DirExists(t, filepath.Join(dir, ".git"))
	assert.Equal(t, "objs/\nbin/\n", readFile(t, dir, ".gitignore"))
	assert.Contains(t, res.CreatedFiles, ".gitignore")
}

func TestWriteGitExistingRepo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*.o\n"), 0o644))

	opts := makefile.NewOptions("demo", makefile.C, "latest", false, false, nil)
	res, err := (&Scaffolder{Dir: dir, Git: true}).Write(opts)
	require.NoError(t, err)

	assert.False(t, res.GitInit)
	assert.Contains(t, res.Skipped, ".gitignore")
	assert.Equal(t, "*.o\n", readFile(t, dir, ".gitignore"))
}

func TestChangeDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })

	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	err = ChangeDir(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	err = ChangeDir(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")

	require.NoError(t, ChangeDir(dir))
	got, err := os.Getwd()
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, resolved, gotResolved)
}
