// bob batch <manifest>
package cmd

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/qobs-build/bob/internal/answers"
	"github.com/qobs-build/bob/internal/msg"
	"github.com/qobs-build/bob/internal/scaffold"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var flagJobs int

// scaffoldBatch scaffolds every project of the manifest, at most jobs at a time.
// Directories are resolved against baseDir; the working directory is left alone.
func scaffoldBatch(m *answers.Manifest, baseDir string, jobs int, git bool) ([]*scaffold.Result, error) {
	results := make([]*scaffold.Result, len(m.Projects))

	var g errgroup.Group
	g.SetLimit(max(jobs, 1))
	for i, project := range m.Projects {
		g.Go(func() error {
			opts, err := project.Answers.Options()
			if err != nil {
				return fmt.Errorf("%s: %w", project.Dir, err)
			}

			dir := project.Dir
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(baseDir, dir)
			}
			s := &scaffold.Scaffolder{Dir: dir, Git: git}
			res, err := s.Write(opts)
			if err != nil {
				return fmt.Errorf("%s: %w", project.Dir, err)
			}
			results[i] = res
			return nil
		})
	}

	return results, g.Wait()
}

func doBatch(cmd *cobra.Command, args []string) {
	manifestPath := args[0]
	m, err := answers.ParseManifestFromFile(manifestPath)
	if err != nil {
		msg.Fatal("failed to parse manifest: %v", err)
	}

	results, err := scaffoldBatch(m, filepath.Dir(manifestPath), flagJobs, flagGit)
	for i, res := range results {
		if res == nil {
			continue
		}
		msg.Info("scaffolded %s (%d files)", filepath.ToSlash(m.Projects[i].Dir), len(res.CreatedFiles))
	}
	if err != nil {
		msg.Fatal("%v", err)
	}
}

var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Scaffold every project listed in a TOML manifest",
	Args:  cobra.ExactArgs(1),
	Run:   doBatch,
}

func init() {
	// bob batch subcommand
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().IntVarP(&flagJobs, "jobs", "j", runtime.NumCPU(), "Number of projects to scaffold in parallel")
	batchCmd.Flags().BoolVar(&flagGit, "git", false, "Initialize a git repository in every project")
}
