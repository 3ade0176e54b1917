package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-pulse/internal/insights"
	"github.com/jonathan/career-pulse/internal/types"
)

var improveCmd = &cobra.Command{
	Use:   "improve <text>",
	Short: "Rewrite one resume bullet with the LLM",
	Long:  "Rewrites a resume bullet to be concise and achievement oriented. Requires a configured credential.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImprove,
}

var improveKind string

func init() {
	improveCmd.Flags().StringVarP(&improveKind, "type", "t", insights.DefaultBulletKind, "Kind of text (experience, project, achievement, summary)")
	rootCmd.AddCommand(improveCmd)
}

func runImprove(cmd *cobra.Command, args []string) error {
	req := types.ImproveBulletRequest{
		Current: strings.Join(args, " "),
		Type:    improveKind,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	a, err := bootstrap(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	improved, err := a.service.ImproveBullet(cmd.Context(), req.Current, req.Type)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), improved)
	return nil
}
