package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jed/pkg/commands/options"
	"tableflip.dev/jed/pkg/runner/format"
)

func addFormat(topLevel *cobra.Command) {
	write := false

	cmd := &cobra.Command{
		Use:   "format FILE",
		Short: "Re-indent a document",
		Example: `
jed format package.json
jed format package.json --write
`,
		Args: cobra.ExactArgs(1),
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
			s := format.Format{
				Service: svc,
				Write:   write,
			}
			err = s.Do(e.Context())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Save the result instead of printing it.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
