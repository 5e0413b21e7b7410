package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jed/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the tree icons and markers",
		Example: `
jed key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{}
			err := k.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
