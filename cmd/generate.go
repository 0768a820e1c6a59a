// bob generate
package cmd

import (
	"fmt"

	"github.com/qobs-build/bob/internal/makefile"
	"github.com/spf13/cobra"
)

// doGenerate keeps stdout for the Makefile alone, so questions go to stderr
func doGenerate(cmd *cobra.Command, args []string) {
	opts := collectOptions(cmd, cmd.ErrOrStderr())
	fmt.Fprint(cmd.OutOrStdout(), makefile.Generate(opts))
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print the Makefile to stdout without writing anything",
	Args:  cobra.NoArgs,
	Run:   doGenerate,
}

func init() {
	// bob generate subcommand
	rootCmd.AddCommand(generateCmd)
	addAnswerFlags(generateCmd)
	generateCmd.Flags().BoolVar(&flagConfirmLibs, "confirm-libs", false, "Confirm each library before adding it")
}
