// Package observability provides formatted CLI output, structured logging and
// Prometheus metrics.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/career-pulse/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads s to width runes
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		runes := []rune(s)
		return string(runes[:width-3]) + "..."
	}
	return s + strings.Repeat(" ", width-n)
}

// PrintResult outputs a human-readable summary of any insight result
func (p *Printer) PrintResult(result types.Result) {
	switch r := result.(type) {
	case types.JobMarketData:
		p.PrintJobMarket(r)
	case types.SalaryData:
		p.PrintSalary(r)
	case types.CompanyGrowthData:
		p.PrintCompanyGrowth(r)
	case types.SkillDemandData:
		p.PrintSkillDemand(r)
	case types.SkillCourses:
		p.PrintCourses(r)
	case types.ProfileOptimization:
		p.PrintProfile(r)
	case types.ResumeContent:
		p.PrintResume(r)
	case types.GenericData:
		p.printBox("NO DATA FOR "+strings.ToUpper(string(r.RequestedTopic)), r.Message)
	}
}

// PrintJobMarket outputs one line per city
func (p *Printer) PrintJobMarket(data types.JobMarketData) {
	if len(data) == 0 {
		return
	}

	var sb strings.Builder
	for _, r := range data {
		sb.WriteString(fmt.Sprintf("%-12s %6d jobs  ₹%-9d %+.1f%%\n", r.Location, r.Jobs, r.Salary, r.Growth))
	}
	p.printBox("JOB MARKET", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSalary outputs the salary trend by year
func (p *Printer) PrintSalary(data types.SalaryData) {
	if len(data) == 0 {
		return
	}

	var sb strings.Builder
	for _, r := range data {
		sb.WriteString(fmt.Sprintf("%s  ₹%d\n", r.Year, r.Salary))
	}
	p.printBox("SALARY TREND", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCompanyGrowth outputs growth, hiring and market cap per company
func (p *Printer) PrintCompanyGrowth(data types.CompanyGrowthData) {
	if len(data) == 0 {
		return
	}

	var sb strings.Builder
	for _, r := range data {
		sb.WriteString(fmt.Sprintf("%-16s %+.1f%%  hiring %d  cap %.0fB\n", r.Company, r.Growth, r.Hiring, r.MarketCap))
	}
	p.printBox("COMPANY GROWTH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillDemand outputs demand score and salary per skill
func (p *Printer) PrintSkillDemand(data types.SkillDemandData) {
	if len(data) == 0 {
		return
	}

	var sb strings.Builder
	for _, r := range data {
		sb.WriteString(fmt.Sprintf("%-12s demand %3d  %+.1f%%  ₹%d\n", r.Skill, r.Demand, r.Growth, r.Salary))
	}
	p.printBox("SKILL DEMAND", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCourses outputs the course lists for both languages
func (p *Printer) PrintCourses(courses types.SkillCourses) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill: %s\n\n", courses.Skill))
	writeCourses(&sb, "English", courses.English)
	sb.WriteString("\n")
	writeCourses(&sb, "Hindi", courses.Hindi)

	p.printBox("COURSE RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeCourses(sb *strings.Builder, label string, courses []types.Course) {
	sb.WriteString(label + ":\n")
	count := min(len(courses), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := courses[i]
		sb.WriteString(fmt.Sprintf("  • %s\n", c.Title))
		sb.WriteString(fmt.Sprintf("    %s · %s · %.1f★ · %s\n", c.Provider, c.Level, c.Rating, c.Duration))
	}
	if len(courses) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(courses)-maxItemsToShow))
	}
}

// PrintProfile outputs the optimized LinkedIn profile and suggested posts
func (p *Printer) PrintProfile(profile types.ProfileOptimization) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Headline: %s\n\n", profile.Profile.Headline))

	if len(profile.Profile.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		for _, rec := range profile.Profile.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
		sb.WriteString("\n")
	}

	if len(profile.Posts) > 0 {
		sb.WriteString("Suggested posts:\n")
		for i, post := range profile.Posts {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, post.Title))
		}
	}

	p.printBox("LINKEDIN OPTIMIZATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResume outputs a summary of generated resume content
func (p *Printer) PrintResume(resume types.ResumeContent) {
	var sb strings.Builder

	if len(resume.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(resume.Skills, ", ")))
	}
	if len(resume.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf("Keywords: %s\n", strings.Join(resume.Keywords, ", ")))
	}
	sb.WriteString("\n")

	for _, exp := range resume.Experience {
		sb.WriteString(fmt.Sprintf("%s @ %s (%s)\n", exp.Title, exp.Company, exp.Duration))
		count := min(len(exp.Achievements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", exp.Achievements[i]))
		}
	}

	if len(resume.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range resume.Suggestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("ATS RESUME CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}
