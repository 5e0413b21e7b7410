package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/jed/pkg/commands/options"
	"tableflip.dev/jed/pkg/runner/set"
)

func addSet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set FILE PATH VALUE",
		Short: "Replace the value at a path and save",
		Long: base.Wrap80("Replaces the string, number, boolean or null at PATH. The new value " +
			"keeps the old value's type where it can: numbers that do not parse become " +
			"strings, and booleans accept true/yes/1. Objects and arrays cannot be set."),
		Example: `
jed set package.json version 1.2.0
jed set settings.json editor/tabSize 4
jed set data.json users/[0]/active false
`,
		Args: cobra.ExactArgs(3),
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
			s := set.Set{
				Service: svc,
				Path:    args[1],
				Value:   args[2],
			}
			err = s.Do(e.Context())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
