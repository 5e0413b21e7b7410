package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jed/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui [FILE]",
		Short: "Open the text-based user interface",
		Example: `
jed ui settings.json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			file, err := resolveFile(args)
			if err != nil {
				return err
			}
			e, err := newEnv(true)
			if err != nil {
				return err
			}
			defer e.Close()

			svc, err := e.Open(file)
			if err != nil {
				return err
			}
			i := ui.UI{Service: svc}
			return i.Do(e.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
