package prompt

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/fatih/color"
	"github.com/qobs-build/bob/internal/answers"
	"github.com/qobs-build/bob/internal/makefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestReadLine(t *testing.T) {
	p, _ := newPrompter("unix\nwindows\r\nlast")

	for _, want := range []string{"unix", "windows", "last"} {
		got, err := p.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := p.ReadLine()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestReadLineError(t *testing.T) {
	boom := errors.New("boom")
	p := New(iotest.ErrReader(boom), &bytes.Buffer{})

	_, err := p.ReadLine()
	assert.ErrorIs(t, err, boom)
}

func TestAskRetries(t *testing.T) {
	p, out := newPrompter("c11\n-std=\nlatest\n")

	got, err := p.Ask("Standard?", StandardToken)
	require.NoError(t, err)
	assert.Equal(t, "-std=", got)
	assert.Equal(t, "Standard?\ninvalid option, retrying\nStandard?\n", out.String())
}

func TestAskClosed(t *testing.T) {
	p, _ := newPrompter("rust\n")

	_, err := p.Ask("Language?", LanguageToken)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestAskYesNo(t *testing.T) {
	p, _ := newPrompter("maybe\nY\nn\n")

	yes, err := p.AskYesNo("Use src?")
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := p.AskYesNo("Use include?")
	require.NoError(t, err)
	assert.False(t, no)
}

func TestAskList(t *testing.T) {
	p, out := newPrompter("m\n\nraylib\r\nm\nDONE\nleftover\n")

	got, err := p.AskList("Libraries?", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"m", "raylib", "m"}, got)
	assert.Contains(t, out.String(), "not adding empty option")

	rest, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "leftover", rest)
}

func TestAskListSkipsBlankLines(t *testing.T) {
	p, out := newPrompter("   \nm\n\t\r\ndone\n")

	got, err := p.AskList("Libraries?", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"m"}, got)
	assert.Equal(t, 2, strings.Count(out.String(), "not adding empty option"))
}

func TestAskListConfirm(t *testing.T) {
	p, _ := newPrompter("m\ny\nGL\nn\nraylib\ny\ndone\n")

	got, err := p.AskList("Libraries?", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"m", "raylib"}, got)
}

func TestAskListClosed(t *testing.T) {
	p, _ := newPrompter("m\n")

	_, err := p.AskList("Libraries?", false)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestValidators(t *testing.T) {
	assert.True(t, YesNo("y"))
	assert.True(t, YesNo("N"))
	assert.False(t, YesNo("yes"))
	assert.True(t, LanguageToken("cpp"))
	assert.False(t, LanguageToken("C"))
	assert.False(t, ProjectName(""))
	assert.False(t, ProjectName("my app"))
	assert.True(t, ProjectName("demo"))
}

func TestCollect(t *testing.T) {
	p, _ := newPrompter(strings.Join([]string{
		"",     // empty name, retried
		"demo", // name
		"java", // bad language, retried
		"c",
		"latest",
		"y",
		"n",
		"m",
		"done",
	}, "\n") + "\n")

	opts, err := p.Collect(answers.Answers{}, false)
	require.NoError(t, err)

	want := makefile.NewOptions("demo", makefile.C, "latest", true, false, []string{"m"})
	assert.Equal(t, makefile.Generate(want), makefile.Generate(opts))
}

func TestCollectBlankLibraryLine(t *testing.T) {
	p, _ := newPrompter("demo\nc\nlatest\ny\nn\n   \nm\ndone\n")

	opts, err := p.Collect(answers.Answers{}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"m"}, opts.Libraries())
}

func TestCollectRetriesBadName(t *testing.T) {
	p, out := newPrompter("my app\nclean\nmy-app\nc\nlatest\nn\nn\ndone\n")

	opts, err := p.Collect(answers.Answers{}, false)
	require.NoError(t, err)
	assert.Equal(t, "my-app", opts.Name())
	assert.Equal(t, 2, strings.Count(out.String(), "invalid option, retrying"))
}

func TestCollectPreset(t *testing.T) {
	name, lang, src := "game", "c++", false
	preset := answers.Answers{Name: &name, Language: &lang, Source: &src}

	p, out := newPrompter("-std=c++20\ny\ndone\n")
	opts, err := p.Collect(preset, false)
	require.NoError(t, err)

	assert.Equal(t, "game", opts.Name())
	assert.Equal(t, makefile.Cpp, opts.Language())
	assert.Equal(t, makefile.IncludeOnly, opts.Layout())
	assert.Equal(t, "-std=c++20 -Iinclude", opts.CompilerFlags())
	assert.NotContains(t, out.String(), questionName)
	assert.NotContains(t, out.String(), questionSource)
}

func TestCollectInvalidPreset(t *testing.T) {
	lang := "go"
	p, _ := newPrompter("")

	_, err := p.Collect(answers.Answers{Language: &lang}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid language "go"`)
}

func TestCollectClosed(t *testing.T) {
	p, _ := newPrompter("demo\n")

	_, err := p.Collect(answers.Answers{}, false)
	require.ErrorIs(t, err, ErrClosed)
	assert.Contains(t, err.Error(), "language")
}
