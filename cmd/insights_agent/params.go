package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-pulse/internal/types"
)

// paramFlags binds the per-call insight parameters to command flags
type paramFlags struct {
	timeframe          string
	role               string
	industry           string
	field              string
	skill              string
	targetPosition     string
	linkedInURL        string
	jobDescription     string
	jobDescriptionFile string
	targetRole         string
	seed               string
}

func (p *paramFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&p.timeframe, "timeframe", "", "Job market timeframe (week, month, quarter, year)")
	flags.StringVar(&p.role, "role", "", "Role for salary data")
	flags.StringVar(&p.industry, "industry", "", "Industry for company growth data")
	flags.StringVar(&p.field, "field", "", "Field for skill demand data")
	flags.StringVar(&p.skill, "skill", "", "Skill for course recommendations")
	flags.StringVar(&p.targetPosition, "target-position", "", "Target position for profile optimization")
	flags.StringVar(&p.linkedInURL, "linkedin-url", "", "LinkedIn profile URL")
	flags.StringVar(&p.jobDescription, "job-description", "", "Job description text for resume content")
	flags.StringVar(&p.jobDescriptionFile, "job-description-file", "", "Path to a file holding the job description")
	flags.StringVar(&p.targetRole, "target-role", "", "Target role for resume content")
	flags.StringVar(&p.seed, "seed", "", "Seed for reproducible synthetic data")
}

// params builds and validates the request parameters
func (p *paramFlags) params() (types.Params, error) {
	jobDescription := p.jobDescription
	if p.jobDescriptionFile != "" {
		if jobDescription != "" {
			return types.Params{}, fmt.Errorf("--job-description and --job-description-file are mutually exclusive")
		}
		content, err := os.ReadFile(p.jobDescriptionFile)
		if err != nil {
			return types.Params{}, fmt.Errorf("failed to read job description file: %w", err)
		}
		jobDescription = string(content)
	}

	req := types.InsightRequest{Params: types.Params{
		Timeframe:      p.timeframe,
		Role:           p.role,
		Industry:       p.industry,
		Field:          p.field,
		Skill:          p.skill,
		TargetPosition: p.targetPosition,
		LinkedInURL:    p.linkedInURL,
		JobDescription: jobDescription,
		TargetRole:     p.targetRole,
		RandomSeed:     p.seed,
	}}
	if err := req.Validate(); err != nil {
		return types.Params{}, fmt.Errorf("invalid parameters: %w", err)
	}
	return req.Params, nil
}
