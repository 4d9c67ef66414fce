package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spetersoncode/schemagen/document"
	"github.com/spetersoncode/schemagen/integration"
	"github.com/spetersoncode/schemagen/model"
	"github.com/spetersoncode/schemagen/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a file holds a valid Draft-07 schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(args[0])
		if err != nil {
			return err
		}
		v, err := validator.New()
		if err != nil {
			return err
		}
		if err := v.Validate(doc); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, successStyle.Sprintf("%s is a valid schema", args[0]))
		if missing := document.MissingFields(doc); len(missing) > 0 {
			fmt.Fprintf(out, "%s %v\n", warningStyle.Sprint("missing fields:"), missing)
		}
		return nil
	},
}

var stepsCmd = &cobra.Command{
	Use:   "steps <file>",
	Short: "List the integration steps of a schema file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(args[0])
		if err != nil {
			return err
		}
		steps := integration.Extract(doc)

		check, err := cmd.Flags().GetString("check")
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if check != "" {
			if integration.Contains(steps, check) {
				fmt.Fprintln(out, successStyle.Sprintf("integration step %q exists", check))
				return nil
			}
			return fmt.Errorf("integration step %q not found (available: %v)", check, steps)
		}

		if len(steps) == 0 {
			fmt.Fprintln(out, infoStyle.Sprint("no integration steps"))
			return nil
		}
		for _, s := range steps {
			fmt.Fprintln(out, s)
		}
		return nil
	},
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models offered by the default endpoint",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, id := range model.IDs() {
			if id == model.Default.ID() {
				fmt.Fprintf(out, "%s %s\n", id, headerStyle.Sprint("(default)"))
				continue
			}
			fmt.Fprintln(out, id)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(stepsCmd)
	rootCmd.AddCommand(modelsCmd)

	stepsCmd.Flags().StringP("check", "c", "", "Report whether the named step exists")
}
