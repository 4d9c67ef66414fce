package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spetersoncode/schemagen/document"
	"github.com/spetersoncode/schemagen/internal/app"
	"github.com/spetersoncode/schemagen/internal/config"
	"github.com/spetersoncode/schemagen/internal/logging"
	"github.com/spetersoncode/schemagen/workflow"
)

// errReported marks a failure whose details were already printed.
var errReported = errors.New("schema request failed")

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate a new schema from a description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorkflow(cmd, workflow.ActionGenerate, "", strings.Join(args, " "))
	},
}

var refineCmd = &cobra.Command{
	Use:   "refine <prompt>",
	Short: "Modify an existing schema",
	Long: `Refine loads the schema named by --from and asks the model to modify it.
Integration steps mentioned as integration step "name" are checked against the
refined schema. Without --from the command behaves like generate.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := cmd.Flags().GetString("from")
		if err != nil {
			return err
		}
		return runWorkflow(cmd, workflow.ActionRefine, from, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(refineCmd)

	refineCmd.Flags().StringP("from", "f", "", "JSON file holding the schema to refine")
}

func runWorkflow(cmd *cobra.Command, action, from, text string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wf, err := app.NewWorkflow(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if from != "" {
		doc, err := readDocument(from)
		if err != nil {
			return err
		}
		wf.State().Replace(doc)
	}

	res := wf.Run(ctx, action, text)
	printResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), res)
	if res.IsError() {
		return errReported
	}
	return nil
}

func readDocument(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s is not valid JSON: %w", path, err)
	}
	return doc, nil
}

// printResult writes the schema to out and a status line to status.
func printResult(out, status io.Writer, res *workflow.Result) {
	switch res.Status {
	case workflow.StatusError:
		if res.RawContent != "" {
			fmt.Fprintln(status, res.RawContent)
		}
		fmt.Fprintln(status, errorStyle.Sprintf("%s (%s)", res.Message, res.ErrorKind))
		return
	case workflow.StatusWarning:
		fmt.Fprintln(status, warningStyle.Sprint(res.Message))
		fmt.Fprintf(status, "%s %s\n", infoStyle.Sprint("available steps:"), strings.Join(res.AvailableSteps, ", "))
	case workflow.StatusNeedsClarification:
		fmt.Fprintf(status, "%s: %s\n", warningStyle.Sprint(res.Message), strings.Join(res.MissingFields, ", "))
	default:
		fmt.Fprintln(status, successStyle.Sprint("schema generated"))
		if len(res.IntegrationSteps) > 0 {
			fmt.Fprintf(status, "%s %s\n", infoStyle.Sprint("integration steps:"), strings.Join(res.IntegrationSteps, ", "))
		}
	}
	fmt.Fprintln(out, res.Schema)
}
