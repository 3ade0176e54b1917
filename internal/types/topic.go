// Package types provides type definitions for structured data used throughout the career-pulse system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// Topic names a category of requested structured data
type Topic string

// Topic constants define the supported insight topics
const (
	TopicJobMarket            Topic = "job-market"
	TopicSalary               Topic = "salary"
	TopicCompanyGrowth        Topic = "company-growth"
	TopicSkillDemand          Topic = "skill-demand"
	TopicCourseRecommendation Topic = "course-recommendation"
	TopicProfileOptimization  Topic = "profile-optimization"
	TopicResumeContent        Topic = "resume-content"
)

// topicAliases maps alternate names used by dashboards and older clients
var topicAliases = map[string]Topic{
	"skill-courses":   TopicCourseRecommendation,
	"courses":         TopicCourseRecommendation,
	"linkedin":        TopicProfileOptimization,
	"salary-insights": TopicSalary,
	"ats-resume":      TopicResumeContent,
	"job-trends":      TopicJobMarket,
}

// AllTopics returns every supported topic in display order
func AllTopics() []Topic {
	return []Topic{
		TopicJobMarket,
		TopicSalary,
		TopicCompanyGrowth,
		TopicSkillDemand,
		TopicCourseRecommendation,
		TopicProfileOptimization,
		TopicResumeContent,
	}
}

// Valid reports whether t is one of the supported topics
func (t Topic) Valid() bool {
	for _, known := range AllTopics() {
		if t == known {
			return true
		}
	}
	return false
}

// Description returns a short human-readable description of the topic
func (t Topic) Description() string {
	switch t {
	case TopicJobMarket:
		return "Job openings, salaries and growth for major Indian cities"
	case TopicSalary:
		return "Average yearly salary trend for a role"
	case TopicCompanyGrowth:
		return "Growth, hiring and market cap for companies in an industry"
	case TopicSkillDemand:
		return "Demand score, growth and salary for skills in a field"
	case TopicCourseRecommendation:
		return "English and Hindi course recommendations for a skill"
	case TopicProfileOptimization:
		return "LinkedIn headline, summary and suggested posts for a target position"
	case TopicResumeContent:
		return "ATS-optimized resume content for a job description"
	default:
		return ""
	}
}

// ParseTopic resolves a topic name or alias
func ParseTopic(name string) (Topic, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if t := Topic(normalized); t.Valid() {
		return t, nil
	}
	if t, ok := topicAliases[normalized]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown topic %q", name)
}
