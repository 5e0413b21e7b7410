package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jed/pkg/commands/options"
	"tableflip.dev/jed/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete FILE PATH",
		Aliases: []string{"rm"},
		Short:   "Delete the value at a path and save",
		Example: `
jed delete package.json scripts/test
jed rm data.json users/[2]
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
			s := remove.Delete{
				Service: svc,
				Path:    args[1],
			}
			err = s.Do(e.Context())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
