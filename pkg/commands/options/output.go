// Package options defines shared flag helpers for CLI commands.
package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	errs "tableflip.dev/jed/pkg/errors"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// HandleError prints err as a JSON object when --json is set and swallows
// it. Otherwise err is returned for cobra to report.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": errs.UserMessage(err),
		}
		if code := errs.GetCode(err); code != "" {
			out["code"] = string(code)
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
