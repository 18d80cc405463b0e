package cliutil

import (
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// HandleOutput renders the data according to the template or format
// flag of the command, writing to the command's output stream.
func HandleOutput(cmd *cobra.Command, data any) error {
	templateFlag, _ := cmd.Flags().GetString("template")
	formatFlag, _ := cmd.Flags().GetString("format")

	if templateFlag != "" {
		tmpl, err := template.New("output").Parse(templateFlag)
		if err != nil {
			return fmt.Errorf("failed to parse template: %w", err)
		}

		if err := tmpl.Execute(cmd.OutOrStdout(), data); err != nil {
			return fmt.Errorf("failed to execute template: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}

	var output []byte
	var err error

	switch formatFlag {
	case "yaml":
		output, err = yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
	case "json", "":
		output, err = json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q", formatFlag)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}
