package insights

import (
	"encoding/json"
	"math"

	"github.com/jonathan/career-pulse/internal/types"
)

// Kind is the JSON type a field is coerced to
type Kind int

// Field kinds
const (
	KindString Kind = iota
	KindInt
	KindNumber
	KindStringList
	KindRecords
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindNumber:
		return "number"
	case KindStringList:
		return "array of strings"
	case KindRecords:
		return "array of objects"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Root is the container type of a topic's result
type Root int

// Root containers
const (
	RootArray Root = iota
	RootObject
)

// Bounds clamps a numeric field
type Bounds struct {
	Min float64
	Max float64
}

func (b *Bounds) apply(v float64) float64 {
	if b == nil {
		return v
	}
	return clamp(v, b.Min, b.Max)
}

var (
	nonNegative = &Bounds{Min: 0, Max: math.Inf(1)}
	percentage  = &Bounds{Min: 0, Max: 100}
	ratingScale = &Bounds{Min: ratingMin, Max: ratingMax}
)

// FillContext gives fill functions access to the request and a random source
type FillContext struct {
	Params types.Params
	Random RandomSource
	gen    *FallbackGenerator

	// object holds the members already coerced in the enclosing object
	object map[string]any
	// skills is drawn at most once per result
	skills []string
}

// resumeSkills returns the skills section coerced so far, drawing filler
// skills once when the completion had none.
func (fc *FillContext) resumeSkills() []string {
	if skills, ok := fc.object["skills"].([]string); ok && len(skills) > 0 {
		return skills
	}
	if fc.skills == nil {
		fc.skills = fc.gen.fillSkills(fc.Random, fc.Params)
	}
	return fc.skills
}

// FieldSpec declares one field: its kind, where else to look for it, and what
// to use when it is absent or mistyped.
type FieldSpec struct {
	Name        string
	Kind        Kind
	Description string
	// Aliases are alternate keys tried in order when Name is absent or mistyped
	Aliases []string
	// Default replaces an absent value; when nil the kind's zero value is used
	// ("Unknown" for strings)
	Default any
	// Fill computes a replacement from the request; it wins over Default
	Fill func(fc *FillContext) any
	// Required fields make the whole result a ShapeError when absent
	Required bool
	Bounds   *Bounds
	// Fields describes the members of KindRecords and KindObject values
	Fields []FieldSpec
}

// Shape is the declarative schema of one topic
type Shape struct {
	Topic  types.Topic
	Root   Root
	Fields []FieldSpec
	decode func(data []byte) (types.Result, error)
}

func decodeInto[T types.Result](data []byte) (types.Result, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var courseFields = []FieldSpec{
	{Name: "title", Kind: KindString, Description: "course title", Aliases: []string{"name"}},
	{Name: "provider", Kind: KindString, Description: "course platform", Aliases: []string{"platform"}},
	{Name: "url", Kind: KindString, Description: "course page URL", Aliases: []string{"link"}, Default: ""},
	{Name: "level", Kind: KindString, Description: "Beginner, Intermediate or Advanced", Default: "All Levels"},
	{Name: "rating", Kind: KindNumber, Description: "rating from 1 to 5", Bounds: ratingScale},
	{Name: "duration", Kind: KindString, Description: "duration in hours", Default: "Self-paced"},
}

var shapes = map[types.Topic]*Shape{
	types.TopicJobMarket: {
		Topic: types.TopicJobMarket,
		Root:  RootArray,
		Fields: []FieldSpec{
			{Name: "location", Kind: KindString, Description: "city name", Aliases: []string{"city"}},
			{Name: "jobs", Kind: KindInt, Description: "number of job openings", Aliases: []string{"jobCount"}, Bounds: nonNegative},
			{Name: "salary", Kind: KindInt, Description: "average annual salary in rupees", Aliases: []string{"averageSalary"}, Bounds: nonNegative},
			{Name: "growth", Kind: KindNumber, Description: "percentage growth"},
		},
		decode: decodeInto[types.JobMarketData],
	},
	types.TopicSalary: {
		Topic: types.TopicSalary,
		Root:  RootArray,
		Fields: []FieldSpec{
			{Name: "year", Kind: KindString, Description: "calendar year"},
			{Name: "salary", Kind: KindInt, Description: "average annual salary in rupees", Aliases: []string{"averageSalary"}, Bounds: nonNegative},
		},
		decode: decodeInto[types.SalaryData],
	},
	types.TopicCompanyGrowth: {
		Topic: types.TopicCompanyGrowth,
		Root:  RootArray,
		Fields: []FieldSpec{
			{Name: "company", Kind: KindString, Description: "company name", Aliases: []string{"name"}},
			{Name: "growth", Kind: KindNumber, Description: "percentage growth"},
			{Name: "hiring", Kind: KindInt, Description: "number of open positions", Aliases: []string{"openPositions"}, Bounds: nonNegative},
			{Name: "marketCap", Kind: KindNumber, Description: "market capitalization in billions of rupees", Aliases: []string{"market_cap"}, Bounds: nonNegative},
		},
		decode: decodeInto[types.CompanyGrowthData],
	},
	types.TopicSkillDemand: {
		Topic: types.TopicSkillDemand,
		Root:  RootArray,
		Fields: []FieldSpec{
			{Name: "skill", Kind: KindString, Description: "skill name", Aliases: []string{"name"}},
			{Name: "demand", Kind: KindInt, Description: "demand score out of 100", Aliases: []string{"demandScore"}, Bounds: percentage},
			{Name: "growth", Kind: KindNumber, Description: "percentage growth"},
			{Name: "salary", Kind: KindInt, Description: "average annual salary in rupees", Aliases: []string{"averageSalary"}, Bounds: nonNegative},
		},
		decode: decodeInto[types.SkillDemandData],
	},
	types.TopicCourseRecommendation: {
		Topic: types.TopicCourseRecommendation,
		Root:  RootObject,
		Fields: []FieldSpec{
			{Name: "skill", Kind: KindString, Description: "the requested skill", Fill: func(fc *FillContext) any { return fc.Params.Skill }},
			{Name: "english", Kind: KindRecords, Description: "courses taught in English", Required: true, Fields: courseFields},
			{Name: "hindi", Kind: KindRecords, Description: "courses taught in Hindi", Required: true, Fields: courseFields},
		},
		decode: decodeInto[types.SkillCourses],
	},
	types.TopicProfileOptimization: {
		Topic: types.TopicProfileOptimization,
		Root:  RootObject,
		Fields: []FieldSpec{
			{
				Name: "profile", Kind: KindObject, Description: "optimized profile sections", Required: true,
				Fields: []FieldSpec{
					{Name: "headline", Kind: KindString, Description: "headline for the target position", Fill: func(fc *FillContext) any { return fc.gen.headline(fc.Params) }},
					{Name: "summary", Kind: KindString, Description: "about section", Fill: func(fc *FillContext) any { return fc.gen.catalog.LinkedIn.Summary }},
					{Name: "recommendations", Kind: KindStringList, Description: "specific profile improvements", Fill: func(fc *FillContext) any {
						return append([]string(nil), fc.gen.catalog.LinkedIn.Recommendations...)
					}},
				},
			},
			{
				Name: "posts", Kind: KindRecords, Description: "suggested posts", Required: true,
				Fields: []FieldSpec{
					{Name: "title", Kind: KindString, Description: "post title"},
					{Name: "content", Kind: KindString, Description: "post body", Aliases: []string{"body"}},
					{Name: "hashtags", Kind: KindStringList, Description: "hashtags", Aliases: []string{"tags"}, Fill: func(fc *FillContext) any {
						return append([]string(nil), fc.gen.catalog.LinkedIn.Hashtags...)
					}},
				},
			},
		},
		decode: decodeInto[types.ProfileOptimization],
	},
	types.TopicResumeContent: {
		Topic: types.TopicResumeContent,
		Root:  RootObject,
		Fields: []FieldSpec{
			// skills must precede summary; the summary fill reads them
			{Name: "skills", Kind: KindStringList, Description: "technical and soft skills", Fill: func(fc *FillContext) any {
				return fc.resumeSkills()
			}},
			{Name: "summary", Kind: KindString, Description: "ATS-optimized professional summary", Fill: func(fc *FillContext) any {
				return resumeSummary(fc.Params.TargetRole, fc.resumeSkills())
			}},
			{
				Name: "experience", Kind: KindRecords, Description: "work history",
				Fill: func(fc *FillContext) any {
					return []types.ResumeExperience{fc.gen.experience(fc.Random, fc.Params)}
				},
				Fields: []FieldSpec{
					{Name: "title", Kind: KindString, Description: "job title", Fill: func(fc *FillContext) any { return fc.Params.TargetRole }},
					{Name: "company", Kind: KindString, Description: "company name"},
					{Name: "duration", Kind: KindString, Description: "time in role"},
					{Name: "achievements", Kind: KindStringList, Description: "achievements with metrics", Fill: func(fc *FillContext) any {
						return fc.gen.achievements(fc.Random)
					}},
				},
			},
			{
				Name: "education", Kind: KindRecords, Description: "degrees",
				Fill: func(fc *FillContext) any {
					return []types.ResumeEducation{fc.gen.catalog.Resume.Education}
				},
				Fields: []FieldSpec{
					{Name: "degree", Kind: KindString, Description: "degree name"},
					{Name: "institution", Kind: KindString, Description: "institution name"},
					{Name: "year", Kind: KindString, Description: "graduation year"},
					{Name: "details", Kind: KindString, Description: "relevant coursework or achievements", Default: ""},
				},
			},
			{
				Name: "projects", Kind: KindRecords, Description: "projects",
				Fill: func(fc *FillContext) any {
					return []types.ResumeProject{fc.gen.project(fc.Random)}
				},
				Fields: []FieldSpec{
					{Name: "name", Kind: KindString, Description: "project name"},
					{Name: "description", Kind: KindString, Description: "description with metrics"},
					{Name: "technologies", Kind: KindStringList, Description: "technologies used", Default: []string{}},
				},
			},
			{Name: "keywords", Kind: KindStringList, Description: "important keywords from the job description", Fill: func(fc *FillContext) any {
				return fc.gen.fillKeywords(fc.Random, fc.Params)
			}},
			{Name: "suggestions", Kind: KindStringList, Description: "improvements to make the resume more ATS-friendly", Fill: func(fc *FillContext) any {
				return fc.gen.fillSuggestions(fc.Random)
			}},
		},
		decode: decodeInto[types.ResumeContent],
	},
}

// ShapeFor returns the declarative schema of a topic
func ShapeFor(topic types.Topic) (*Shape, bool) {
	shape, ok := shapes[topic]
	return shape, ok
}
