package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/jed/pkg/runner/template"
)

func addTemplate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"templates", "tpl"},
		Short:   "Work with JSON templates",
		Long: base.Wrap80("Templates are JSON values that can be inserted into a document. " +
			"The built-ins cannot be changed; saved templates are stored under the " +
			"templates_path setting."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTemplateList(cmd)
	addTemplateShow(cmd)
	addTemplateSave(cmd)
	addTemplateDelete(cmd)
	addTemplateInsert(cmd)

	topLevel.AddCommand(cmd)
}

func addTemplateList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List built-in and saved templates",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := newEnv(false)
			if err != nil {
				return err
			}
			defer e.Close()

			s := template.List{Library: e.Library()}
			return s.Do(e.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addTemplateShow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Print a template's JSON",
		Example: `
jed template show feature
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: templateCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := newEnv(false)
			if err != nil {
				return err
			}
			defer e.Close()

			s := template.Show{
				Library: e.Library(),
				Name:    args[0],
				Indent:  e.config.Indent(),
			}
			return s.Do(e.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addTemplateSave(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "save FILE PATH NAME",
		Short: "Save the value at a path as a template",
		Example: `
jed template save data.json users/[0] user
`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := newEnv(false)
			if err != nil {
				return err
			}
			defer e.Close()

			svc, err := e.Open(args[0])
			if err != nil {
				return err
			}
			s := template.Save{
				Service: svc,
				Path:    args[1],
				Name:    args[2],
			}
			return s.Do(e.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addTemplateDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "delete NAME",
		Aliases:           []string{"rm"},
		Short:             "Delete a saved template",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: templateCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := newEnv(false)
			if err != nil {
				return err
			}
			defer e.Close()

			s := template.Delete{
				Library: e.Library(),
				Name:    args[0],
			}
			return s.Do(e.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addTemplateInsert(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "insert NAME FILE KEY",
		Short: "Insert a template at the root of a document and save",
		Example: `
jed template insert test_case project.json login_test
`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: templateCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := newEnv(false)
			if err != nil {
				return err
			}
			defer e.Close()

			svc, err := e.Open(args[1])
			if err != nil {
				return err
			}
			s := template.Insert{
				Service: svc,
				Name:    args[0],
				Key:     args[2],
			}
			return s.Do(e.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
