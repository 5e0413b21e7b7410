package options

import (
	"github.com/spf13/cobra"
)

// InteractiveOptions
type InteractiveOptions struct {
	Print bool
}

func InteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVarP(&o.Print, "print", "p", false,
		`Print the tree instead of opening the editor.`)
}
