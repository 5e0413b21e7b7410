package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/jed/pkg/commands/options"
	"tableflip.dev/jed/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	showPath := false

	cmd := &cobra.Command{
		Use:   "get FILE [PATH]",
		Short: "Print a document or the value at a path",
		Long: base.Wrap80("Prints the document tree, or the value at PATH. PATH separates keys " +
			"with '/' and names array elements as [i], e.g. users/[0]/name. Objects and " +
			"arrays print as a tree unless --json is set."),
		Example: `
jed get package.json
jed get package.json scripts/build
jed get package.json dependencies --json
`,
		Args: cobra.RangeArgs(1, 2),
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
			s := get.Get{
				Service:  svc,
				JSON:     oo.JSON,
				ShowPath: showPath,
			}
			if len(args) > 1 {
				s.Path = args[1]
			}
			err = s.Do(e.Context())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&showPath, "show-path", false, "Prefix each row with its path.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
