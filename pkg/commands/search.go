package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jed/pkg/commands/options"
	"tableflip.dev/jed/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	asTree := false

	cmd := &cobra.Command{
		Use:   "search FILE TERM",
		Short: "Find keys and values containing a term",
		Example: `
jed search package.json lint
jed search package.json react --tree
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := newEnv(false)
			if err != nil {
				return err
			}
			defer e.Close()

			svc, err := e.Open(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			s := search.Search{
				Service: svc,
				Term:    args[1],
				JSON:    oo.JSON,
				Tree:    asTree,
			}
			err = s.Do(e.Context())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&asTree, "tree", false, "Print the whole tree with matches highlighted.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
