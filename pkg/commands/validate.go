package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jed/pkg/i18n"
	"tableflip.dev/jed/pkg/runner/validate"
)

func addValidate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that a file is well-formed JSON",
		Example: `
jed validate package.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := newEnv(false)
			if err != nil {
				return err
			}
			defer e.Close()

			s := validate.Validate{
				File:       args[0],
				Translator: i18n.New(e.config.Language()),
			}
			return s.Do(e.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
