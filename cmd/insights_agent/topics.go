package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-pulse/internal/types"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the supported insight topics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, topic := range types.AllTopics() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", topic, topic.Description())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
