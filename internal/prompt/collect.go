package prompt

import (
	"fmt"

	"github.com/qobs-build/bob/internal/answers"
	"github.com/qobs-build/bob/internal/makefile"
)

const (
	questionName      = "Enter a project name"
	questionLanguage  = "Language? [c/c++]"
	questionStandard  = "Standard to use? [latest/-std=c++2b/-std=c11 etc]"
	questionSource    = "Use a 'src' dir?"
	questionInclude   = "Use an 'include' dir?"
	questionLibraries = "Enter any libraries you want to link against (one at a time, enter to send) and type 'done' when you're finished."
)

// Collect asks every question preset leaves unanswered and builds the options.
// Preset answers are validated but never asked again.
func (p *Prompter) Collect(preset answers.Answers, confirmLibs bool) (makefile.Options, error) {
	if err := preset.Validate(); err != nil {
		return makefile.Options{}, err
	}
	a := preset

	if a.Name == nil {
		name, err := p.Ask(questionName, ProjectName)
		if err != nil {
			return makefile.Options{}, fmt.Errorf("project name: %w", err)
		}
		a.Name = &name
	}
	if a.Language == nil {
		lang, err := p.Ask(questionLanguage, LanguageToken)
		if err != nil {
			return makefile.Options{}, fmt.Errorf("language: %w", err)
		}
		a.Language = &lang
	}
	if a.Standard == nil {
		std, err := p.Ask(questionStandard, StandardToken)
		if err != nil {
			return makefile.Options{}, fmt.Errorf("standard: %w", err)
		}
		a.Standard = &std
	}
	if a.Source == nil {
		useSrc, err := p.AskYesNo(questionSource)
		if err != nil {
			return makefile.Options{}, fmt.Errorf("src dir: %w", err)
		}
		a.Source = &useSrc
	}
	if a.Include == nil {
		useInclude, err := p.AskYesNo(questionInclude)
		if err != nil {
			return makefile.Options{}, fmt.Errorf("include dir: %w", err)
		}
		a.Include = &useInclude
	}
	if a.Libraries == nil {
		libs, err := p.AskList(questionLibraries, confirmLibs)
		if err != nil {
			return makefile.Options{}, fmt.Errorf("libraries: %w", err)
		}
		a.Libraries = &libs
	}

	return a.Options()
}
