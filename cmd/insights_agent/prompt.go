package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-pulse/internal/insights"
	"github.com/jonathan/career-pulse/internal/types"
)

var promptCmd = &cobra.Command{
	Use:   "prompt <topic>",
	Short: "Print the prompt that would be sent for a topic",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrompt,
}

var promptParams paramFlags

func init() {
	promptParams.register(promptCmd)
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	topic, err := types.ParseTopic(args[0])
	if err != nil {
		return err
	}
	params, err := promptParams.params()
	if err != nil {
		return err
	}

	a, err := bootstrap(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Fprintln(cmd.OutOrStdout(), a.service.Prompt(insights.Request{Topic: topic, Params: params.WithDefaults()}))
	return nil
}
