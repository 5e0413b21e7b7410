package options

import (
	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	Verbose bool
}

// AddLogArgs registers --verbose on cmd and every subcommand.
func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug detail.")
}
