package types

import "strings"

// Default parameter values applied when a caller leaves a parameter empty
const (
	DefaultTimeframe      = "month"
	DefaultRole           = "Software Engineer"
	DefaultIndustry       = "IT Services"
	DefaultField          = "Software Development"
	DefaultSkill          = "Programming"
	DefaultTargetPosition = "Professional"
	DefaultJobDescription = "Software Development"
	DefaultTargetRole     = "Software Engineer"
)

// Timeframes lists the accepted job-market timeframes
var Timeframes = []string{"week", "month", "quarter", "year"}

// Params holds the per-call parameters of an insight request.
// Every field is optional; WithDefaults fills what a topic needs.
type Params struct {
	Timeframe      string         `json:"timeframe,omitempty" validate:"omitempty,max=32"`
	Role           string         `json:"role,omitempty" validate:"omitempty,max=200"`
	Industry       string         `json:"industry,omitempty" validate:"omitempty,max=200"`
	Field          string         `json:"field,omitempty" validate:"omitempty,max=200"`
	Skill          string         `json:"skill,omitempty" validate:"omitempty,max=200"`
	TargetPosition string         `json:"target_position,omitempty" validate:"omitempty,max=200"`
	LinkedInURL    string         `json:"linkedin_url,omitempty" validate:"omitempty,url,max=500"`
	JobDescription string         `json:"job_description,omitempty" validate:"omitempty,max=20000"`
	TargetRole     string         `json:"target_role,omitempty" validate:"omitempty,max=200"`
	UserInput      map[string]any `json:"user_input,omitempty"`
	RandomSeed     string         `json:"random_seed,omitempty" validate:"omitempty,max=64"`
}

// WithDefaults returns a copy of p with empty or unknown values replaced by defaults
func (p Params) WithDefaults() Params {
	out := p
	out.Timeframe = normalizeTimeframe(p.Timeframe)
	out.Role = orDefault(p.Role, DefaultRole)
	out.Industry = orDefault(p.Industry, DefaultIndustry)
	out.Field = orDefault(p.Field, DefaultField)
	out.Skill = orDefault(p.Skill, DefaultSkill)
	out.TargetPosition = orDefault(p.TargetPosition, DefaultTargetPosition)
	out.JobDescription = orDefault(p.JobDescription, DefaultJobDescription)
	out.TargetRole = orDefault(p.TargetRole, DefaultTargetRole)
	out.LinkedInURL = strings.TrimSpace(p.LinkedInURL)
	out.RandomSeed = strings.TrimSpace(p.RandomSeed)
	if out.UserInput == nil {
		out.UserInput = map[string]any{}
	}
	return out
}

func normalizeTimeframe(timeframe string) string {
	timeframe = strings.ToLower(strings.TrimSpace(timeframe))
	for _, known := range Timeframes {
		if timeframe == known {
			return timeframe
		}
	}
	return DefaultTimeframe
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
