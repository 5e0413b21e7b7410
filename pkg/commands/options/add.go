package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/jed/pkg/jsonvalue"
)

// AddOptions
type AddOptions struct {
	Type string
}

func AddTypeArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Type, "type", "t", "",
		`Type of the new value, one of `+strings.Join(jsonvalue.Types, ", ")+`. Inferred from the value when unset.`)
	_ = cmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return jsonvalue.Types, cobra.ShellCompDirectiveNoFileComp
	})
}
