// Package info prints the effective configuration.
package info

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/jed/pkg/printers"
	"tableflip.dev/jed/pkg/store"
)

type Info struct {
	Config store.Config
}

func (n *Info) Do(ctx context.Context) error {
	if override := os.Getenv("JED_CONFIG_PATH"); override != "" {
		fmt.Fprintln(color.Output, "JED_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Fprintln(color.Output, "JED_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if f := n.Config.File(); f != "" {
		fmt.Fprintln(color.Output, "Config.file: ", f)
	} else {
		fmt.Fprintln(color.Output, "Config.file: ", "none, using defaults")
	}
	fmt.Fprintln(color.Output, "")

	settings := n.Config.Settings()
	rows := make([][2]string, 0, len(settings))
	for _, s := range settings {
		rows = append(rows, [2]string{s.Key, s.Value})
	}
	pp := printers.PrettyPrint{}
	pp.Settings(rows)
	return nil
}
