package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/jed/pkg/store"
	"tableflip.dev/jed/pkg/templates"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(jed completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(jed completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// templateCompletions offers template names for the first argument.
func templateCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	lib := templates.NewLibrary(nil)
	if user, err := store.LoadTemplates(nil); err == nil {
		lib = templates.NewLibrary(user)
	}
	return lib.Names(context.Background()), cobra.ShellCompDirectiveNoFileComp
}
