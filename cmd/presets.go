package cmd

import (
	"github.com/qobs-build/bob/internal/answers"
	"github.com/spf13/cobra"
)

var (
	flagAnswers string
	flagName    string
	flagStd     string
	flagSrc     bool
	flagInclude bool
	flagLibs    []string
	flagNoLibs  bool
)

var flagLang EnumValue = NewEnumValue("c", map[string]string{
	"c":   "C, compiled with clang",
	"cpp": "C++, compiled with clang++",
	"c++": "C++, compiled with clang++",
})

// addAnswerFlags registers the flags that answer questions up front
func addAnswerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagAnswers, "answers", "a", "", "TOML file answering some or all questions")
	cmd.Flags().StringVarP(&flagName, "name", "n", "", "Project name")
	cmd.Flags().VarP(&flagLang, "lang", "l", "Language, one of "+flagLang.HelpString())
	cmd.RegisterFlagCompletionFunc("lang", flagLang.CompletionFunc())
	cmd.Flags().StringVar(&flagStd, "std", "", `Standard flag, "latest" or -std=...`)
	cmd.Flags().BoolVar(&flagSrc, "src", false, "Use a src directory")
	cmd.Flags().BoolVar(&flagInclude, "include", false, "Use an include directory")
	cmd.Flags().StringSliceVar(&flagLibs, "lib", nil, "Library to link against (repeatable)")
	cmd.Flags().BoolVar(&flagNoLibs, "no-libs", false, "Link against no libraries")
}

// loadPreset merges the answers file with answers given as flags. Flags win.
func loadPreset(cmd *cobra.Command, dir string) (answers.Answers, error) {
	var a answers.Answers
	if flagAnswers != "" {
		var err error
		a, err = answers.ParseFile(flagAnswers, answers.NewEnv(dir))
		if err != nil {
			return answers.Answers{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		a.Name = &flagName
	}
	if flags.Changed("lang") {
		lang := flagLang.Value()
		a.Language = &lang
	}
	if flags.Changed("std") {
		a.Standard = &flagStd
	}
	if flags.Changed("src") {
		a.Source = &flagSrc
	}
	if flags.Changed("include") {
		a.Include = &flagInclude
	}
	if flags.Changed("lib") {
		a.Libraries = &flagLibs
	} else if flagNoLibs {
		none := []string{}
		a.Libraries = &none
	}

	return a, a.Validate()
}
