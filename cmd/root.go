// bob, interactive Makefile scaffolding
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/qobs-build/bob/internal/makefile"
	"github.com/qobs-build/bob/internal/msg"
	"github.com/qobs-build/bob/internal/prompt"
	"github.com/qobs-build/bob/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	flagDirectory   string
	flagConfirmLibs bool
	flagGit         bool
	flagDiff        bool
)

// stdin is swapped in tests
var stdin io.Reader = os.Stdin

func changeDirectory(cmd *cobra.Command, args []string) {
	if flagDirectory == "" {
		return
	}
	if err := scaffold.ChangeDir(flagDirectory); err != nil {
		msg.Fatal("%v", err)
	}
}

// collectOptions asks on w whatever the flags and answers file leave open
func collectOptions(cmd *cobra.Command, w io.Writer) makefile.Options {
	preset, err := loadPreset(cmd, ".")
	if err != nil {
		msg.Fatal("%v", err)
	}
	opts, err := prompt.New(stdin, w).Collect(preset, flagConfirmLibs)
	if err != nil {
		msg.Fatal("failed to read answers: %v", err)
	}
	return opts
}

func showDiff(s *scaffold.Scaffolder, opts makefile.Options) {
	existing, err := os.ReadFile(s.MakefilePath())
	if err != nil {
		msg.Fatal("read %s: %v", s.MakefilePath(), err)
	}
	fmt.Fprint(color.Output, scaffold.Diff(string(existing), makefile.Generate(opts)))
}

func report(res *scaffold.Result) {
	for _, dir := range res.CreatedDirs {
		msg.Created("directory", dir)
	}
	for _, file := range res.CreatedFiles {
		msg.Created("file", file)
	}
	for _, file := range res.Skipped {
		msg.Skipped("file", file)
	}
	if res.GitInit {
		msg.Info("initialized empty git repository")
	}
}

func warnUnmatched(dir string, opts makefile.Options) {
	sources, err := scaffold.ScanSources(dir, opts)
	if err != nil {
		msg.Warn("could not scan for sources: %v", err)
		return
	}
	for _, src := range sources.Unmatched {
		msg.Warn("%s will not be built, SRCS only matches %s", src, makefile.SourceWildcard(opts))
	}
}

func warnToolchain(lang makefile.Language) {
	tc := scaffold.FindToolchain(lang)
	if tc.Found {
		return
	}
	if len(tc.Alternatives) > 0 {
		msg.Warn("%s was not found in PATH; set COMPILER in the Makefile to one of: %s", tc.Compiler, strings.Join(tc.Alternatives, ", "))
	} else {
		msg.Warn("%s was not found in PATH", tc.Compiler)
	}
}

func doScaffold(cmd *cobra.Command, args []string) {
	s := &scaffold.Scaffolder{Dir: ".", Git: flagGit}

	// don't ask anything if nothing can be written, unless a diff was requested
	if _, err := os.Stat(s.MakefilePath()); err == nil && !flagDiff {
		msg.Fatal("%s already exists, refusing to overwrite it", makefile.Filename)
	}

	opts := collectOptions(cmd, color.Output)

	res, err := s.Write(opts)
	if errors.Is(err, scaffold.ErrMakefileExists) {
		if flagDiff {
			showDiff(s, opts)
		}
		msg.Fatal("%s already exists, refusing to overwrite it", makefile.Filename)
	}
	if err != nil {
		msg.Fatal("%v", err)
	}

	report(res)
	warnUnmatched(s.Dir, opts)
	warnToolchain(opts.Language())

	fmt.Fprintf(color.Output, "You can now do %s to build, or %s to build and run.\n",
		color.HiCyanString("make"), color.HiCyanString("make run"))
}

var rootCmd = &cobra.Command{
	Use:              "bob",
	Short:            "Scaffold a C or C++ project with a Makefile",
	Long:             `Asks a few questions and writes a Makefile with debug and release builds, plus a starter source tree.`,
	Args:             cobra.NoArgs,
	PersistentPreRun: changeDirectory,
	Run:              doScaffold,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDirectory, "directory", "d", "", "Change to this directory before doing anything")
	rootCmd.MarkPersistentFlagDirname("directory")

	addAnswerFlags(rootCmd)
	rootCmd.Flags().BoolVar(&flagConfirmLibs, "confirm-libs", false, "Confirm each library before adding it")
	rootCmd.Flags().BoolVar(&flagGit, "git", false, "Initialize a git repository with a .gitignore")
	rootCmd.Flags().BoolVar(&flagDiff, "diff", false, "Show how an existing Makefile differs from the generated one")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
