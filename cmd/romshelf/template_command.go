package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"romshelf/internal/metadata"
	"romshelf/internal/pathtemplate"
)

func newTemplateCommand(ctx *commandContext) *cobra.Command {
	templateCmd := &cobra.Command{
		Use:   "template",
		Short: "Path template utilities",
	}

	templateCmd.AddCommand(newTemplateValidateCommand(ctx))
	templateCmd.AddCommand(newTemplateFieldsCommand())

	return templateCmd
}

func newTemplateValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [template]",
		Short: "Validate a path template",
		Long: "Validate checks a template for unknown placeholders. With no " +
			"argument the configured template is checked.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var template string
			if len(args) == 1 {
				template = args[0]
			} else {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				template = cfg.Organize.Template
			}

			if err := pathtemplate.Check(template); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Template valid: %s\n", template)
			if !pathtemplate.EndsWithName(template) {
				fmt.Fprintln(out, "Note: template does not end with {name}; the game name is appended as the final directory")
			}
			return nil
		},
	}
}

func newTemplateFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "fields",
		Short:       "List the available template placeholders",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(metadata.AllFields()))
			for _, field := range metadata.AllFields() {
				names = append(names, "{"+string(field)+"}")
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
			return nil
		},
	}
}
