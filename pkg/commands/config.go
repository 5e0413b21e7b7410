package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jed/pkg/runner/info"
)

func addConfig(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"info"},
		Short:   "Show where the configuration is read from and its values.",
		Example: `
jed config
JED_CONFIG_PATH=/etc/jed jed config
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := newEnv(false)
			if err != nil {
				return err
			}
			defer e.Close()

			s := info.Info{
				Config: e.config,
			}
			return s.Do(e.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
