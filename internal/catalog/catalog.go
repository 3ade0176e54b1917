// Package catalog loads the static reference lists used to synthesize fallback insights.
// The catalog is loaded once at process start and treated as read-only afterwards.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/jonathan/career-pulse/internal/types"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultData []byte

// minimum pool sizes required by the fallback generator
const (
	MinCities    = 5
	MinSkills    = 5
	MinCompanies = 1
)

// Catalog holds the fallback candidate pools
type Catalog struct {
	Cities    []string     `yaml:"cities"`
	Skills    []string     `yaml:"skills"`
	Companies []string     `yaml:"companies"`
	Salary    SalaryTable  `yaml:"salary"`
	Courses   CoursePool   `yaml:"courses"`
	LinkedIn  LinkedInPool `yaml:"linkedin"`
	Resume    ResumePool   `yaml:"resume"`
}

// SalaryTable describes the synthetic salary progression
type SalaryTable struct {
	Years []string `yaml:"years"`
	Base  int      `yaml:"base"`
	Step  int      `yaml:"step"`
}

// CoursePool holds real course metadata per language
type CoursePool struct {
	English []types.Course `yaml:"english"`
	Hindi   []types.Course `yaml:"hindi"`
}

// LinkedInPool holds the profile-optimization template.
// {position} and {n} are substituted by the generator.
type LinkedInPool struct {
	Headline        string   `yaml:"headline"`
	Summary         string   `yaml:"summary"`
	Recommendations []string `yaml:"recommendations"`
	PostCount       int      `yaml:"post_count"`
	PostTitle       string   `yaml:"post_title"`
	PostContent     string   `yaml:"post_content"`
	Hashtags        []string `yaml:"hashtags"`
}

// ResumePool holds the resume-content building blocks
type ResumePool struct {
	CommonSkills         []string              `yaml:"common_skills"`
	DefaultSkills        []string              `yaml:"default_skills"`
	AchievementTemplates []string              `yaml:"achievement_templates"`
	Suggestions          []string              `yaml:"suggestions"`
	ExtraSuggestions     []string              `yaml:"extra_suggestions"`
	Technologies         []string              `yaml:"technologies"`
	Company              string                `yaml:"company"`
	Duration             string                `yaml:"duration"`
	Education            types.ResumeEducation `yaml:"education"`
	Project              ProjectTemplate       `yaml:"project"`
}

// ProjectTemplate is the fallback project entry
type ProjectTemplate struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, parsing it on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(defaultData)
	})
	return defaultCatalog, defaultErr
}

// MustDefault returns the embedded catalog, panicking if it is invalid.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("failed to load embedded catalog: %v", err))
	}
	return c
}

// LoadFile parses a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every pool the fallback generator draws from is usable.
func (c *Catalog) Validate() error {
	switch {
	case len(c.Cities) < MinCities:
		return fmt.Errorf("catalog error: need at least %d cities, got %d", MinCities, len(c.Cities))
	case len(c.Skills) < MinSkills:
		return fmt.Errorf("catalog error: need at least %d skills, got %d", MinSkills, len(c.Skills))
	case len(c.Companies) < MinCompanies:
		return fmt.Errorf("catalog error: need at least %d company", MinCompanies)
	case len(c.Salary.Years) == 0:
		return fmt.Errorf("catalog error: salary years are empty")
	case c.Salary.Base < 0 || c.Salary.Step < 0:
		return fmt.Errorf("catalog error: salary base and step must be non-negative")
	case len(c.Courses.English) == 0 || len(c.Courses.Hindi) == 0:
		return fmt.Errorf("catalog error: both english and hindi courses are required")
	case c.LinkedIn.PostCount < 0:
		return fmt.Errorf("catalog error: linkedin post_count must be non-negative")
	case len(c.Resume.CommonSkills) == 0 || len(c.Resume.AchievementTemplates) == 0 || len(c.Resume.Suggestions) == 0:
		return fmt.Errorf("catalog error: resume pools are incomplete")
	}

	for i, course := range append(append([]types.Course{}, c.Courses.English...), c.Courses.Hindi...) {
		if course.Rating < 1 || course.Rating > 5 {
			return fmt.Errorf("catalog error: course %d (%s) rating %.1f outside [1,5]", i, course.Title, course.Rating)
		}
	}
	return nil
}
