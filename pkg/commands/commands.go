package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/jed/pkg/commands/options"
	errs "tableflip.dev/jed/pkg/errors"
	"tableflip.dev/jed/pkg/runner/get"
	"tableflip.dev/jed/pkg/runner/ui"
)

var (
	oo = &options.OutputOptions{}
	lo = &options.LogOptions{}
)

var errNoJSONFiles = errors.New("no JSON files found")

func New() *cobra.Command {
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "jed [FILE]",
		Short: base.Wrap80("View and edit JSON documents as a tree and as text."),
		Long: base.Wrap80("Opens FILE in a two pane editor: the structure on the left, the raw " +
			"JSON on the right. Without FILE the first *.json file in the working directory " +
			"is opened. When stdout is not a terminal the tree is printed instead."),
		Example: `
jed config.json
jed --print package.json
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := resolveFile(args)
			if err != nil {
				return err
			}
			interactive := !io.Print && isTerminal(os.Stdout.Fd())
			e, err := newEnv(interactive)
			if err != nil {
				return err
			}
			defer e.Close()

			svc, err := e.Open(file)
			if err != nil {
				return err
			}
			if interactive {
				i := ui.UI{Service: svc}
				return i.Do(e.Context())
			}
			g := get.Get{Service: svc}
			return g.Do(e.Context())
		},
	}

	options.InteractiveArgs(cmd, io)
	options.AddLogArgs(cmd, lo)
	AddCommands(cmd)
	return cmd
}

// Execute runs cmd and reports a failure on its stderr. Parse errors are
// shown with the offending source line and a caret under the column.
func Execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Error: "+errs.UserMessage(err))
	}
	return err
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addSet(topLevel)
	addAdd(topLevel)
	addDelete(topLevel)
	addSearch(topLevel)
	addFormat(topLevel)
	addValidate(topLevel)
	addTemplate(topLevel)
	addConfig(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// resolveFile returns the file named in args, or the first *.json file in
// the working directory by name.
func resolveFile(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	matches, err := filepath.Glob("*.json")
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", errNoJSONFiles
	}
	sort.Strings(matches)
	return matches[0], nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
