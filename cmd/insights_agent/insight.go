package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-pulse/internal/insights"
	"github.com/jonathan/career-pulse/internal/observability"
	"github.com/jonathan/career-pulse/internal/types"
)

var insightCmd = &cobra.Command{
	Use:   "insight <topic>",
	Short: "Generate structured data for one topic",
	Long: "Resolves one topic through the LLM and prints the result as JSON. " +
		"Without a credential, or with --offline, the result is synthetic.",
	Args: cobra.ExactArgs(1),
	RunE: runInsight,
}

var (
	insightParams  paramFlags
	insightOffline bool
	insightPretty  bool
	insightOutput  string
)

func init() {
	insightParams.register(insightCmd)
	insightCmd.Flags().BoolVar(&insightOffline, "offline", false, "Skip the LLM and return synthetic data")
	insightCmd.Flags().BoolVar(&insightPretty, "pretty", false, "Print a human-readable summary instead of JSON")
	insightCmd.Flags().StringVarP(&insightOutput, "out", "o", "", "Write the JSON result to a file")
	rootCmd.AddCommand(insightCmd)
}

func runInsight(cmd *cobra.Command, args []string) error {
	topic, err := types.ParseTopic(args[0])
	if err != nil {
		return err
	}
	params, err := insightParams.params()
	if err != nil {
		return err
	}

	a, err := bootstrap(cmd.Context(), insightOffline)
	if err != nil {
		return err
	}
	defer a.Close()

	outcome := a.service.Resolve(cmd.Context(), insights.Request{Topic: topic, Params: params})

	if insightPretty {
		observability.NewPrinter(cmd.OutOrStdout()).PrintResult(outcome.Result)
	}

	jsonBytes, err := json.MarshalIndent(outcome.Result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if insightOutput != "" {
		outputDir := filepath.Dir(insightOutput)
		if outputDir != "" && outputDir != "." {
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(insightOutput, append(jsonBytes, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%s)\n", insightOutput, outcome.Source)
		return nil
	}

	if !insightPretty {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
	}
	return nil
}
