package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/jed/pkg/commands/options"
	"tableflip.dev/jed/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:   "add FILE PARENT KEY [VALUE]",
		Short: "Add a key or array element and save",
		Long: base.Wrap80("Adds KEY under the object or array at PARENT. Use \"\" for the " +
			"root. For arrays KEY is the index to insert at; anything else appends. " +
			"VALUE may be omitted for objects and arrays."),
		Example: `
jed add package.json scripts test "go test ./..."
jed add package.json "" private true --type boolean
jed add data.json users 0 --type object
`,
		Args: cobra.RangeArgs(3, 4),
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
			s := add.Add{
				Service: svc,
				Parent:  args[1],
				Key:     args[2],
				Type:    ao.Type,
			}
			if len(args) > 3 {
				s.Value = args[3]
			}
			err = s.Do(e.Context())
			return oo.HandleError(err)
		},
	}

	options.AddTypeArgs(cmd, ao)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
