package insights

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/career-pulse/internal/catalog"
	"github.com/jonathan/career-pulse/internal/types"
)

// Fallback value ranges, inclusive
const (
	fallbackCityCount  = 5
	fallbackSkillCount = 5
	genericItemCount   = 5

	jobsMin, jobsMax                   = 1000, 5999
	jobSalaryMin, jobSalaryMax         = 500000, 1999999
	growthMin, growthMax               = 5, 34
	companyGrowthMin, companyGrowthMax = 10, 49
	hiringMin, hiringMax               = 100, 1099
	marketCapMin, marketCapMax         = 10, 109
	demandMin, demandMax               = 50, 99
	skillSalaryMin, skillSalaryMax     = 500000, 1499999
	achievementMin, achievementMax     = 10, 49
	salaryJitterMax                    = 99999

	ratingJitter = 0.2
	ratingMin    = 1.0
	ratingMax    = 5.0

	keywordMinLength  = 5
	resumeKeywordMax  = 8
	resumeSkillCount  = 10
	filledSkillWords  = 5
	filledSkillCount  = 8
	achievementCount  = 3
	technologyCount   = 3
	suggestionCount   = 3
	filledSuggestions = 4
)

// FallbackGenerator synthesizes shape-conforming results from the catalog.
// It never fails and performs no I/O.
type FallbackGenerator struct {
	catalog *catalog.Catalog
	random  RandomSource
	now     func() time.Time
}

// NewFallbackGenerator creates a generator. A nil catalog uses the embedded one
// and a nil random source draws its seed from the clock.
func NewFallbackGenerator(c *catalog.Catalog, rnd RandomSource) *FallbackGenerator {
	if c == nil {
		c = catalog.MustDefault()
	}
	if rnd == nil {
		rnd = NewRandomSource(0)
	}
	return &FallbackGenerator{catalog: c, random: rnd, now: time.Now}
}

// Generate returns a synthetic result for the request's topic.
// A request carrying a random seed is reproducible regardless of the shared source.
func (g *FallbackGenerator) Generate(req Request) types.Result {
	params := req.Params.WithDefaults()
	rnd := g.sourceFor(params)

	switch req.Topic {
	case types.TopicJobMarket:
		return g.jobMarket(rnd)
	case types.TopicSalary:
		return g.salary(rnd)
	case types.TopicCompanyGrowth:
		return g.companyGrowth(rnd)
	case types.TopicSkillDemand:
		return g.skillDemand(rnd)
	case types.TopicCourseRecommendation:
		return g.courses(rnd, params)
	case types.TopicProfileOptimization:
		return g.profile(params)
	case types.TopicResumeContent:
		return g.resume(rnd, params)
	default:
		return g.generic(rnd, req.Topic)
	}
}

func (g *FallbackGenerator) sourceFor(params types.Params) RandomSource {
	if params.RandomSeed != "" {
		return NewRandomSource(SeedFromString(params.RandomSeed))
	}
	return g.random
}

func (g *FallbackGenerator) jobMarket(rnd RandomSource) types.JobMarketData {
	cities := sample(rnd, g.catalog.Cities, fallbackCityCount)
	out := make(types.JobMarketData, 0, len(cities))
	for _, city := range cities {
		out = append(out, types.JobMarketRecord{
			Location: city,
			Jobs:     between(rnd, jobsMin, jobsMax),
			Salary:   between(rnd, jobSalaryMin, jobSalaryMax),
			Growth:   float64(between(rnd, growthMin, growthMax)),
		})
	}
	return out
}

func (g *FallbackGenerator) salary(rnd RandomSource) types.SalaryData {
	table := g.catalog.Salary
	out := make(types.SalaryData, 0, len(table.Years))
	for i, year := range table.Years {
		out = append(out, types.SalaryRecord{
			Year:   year,
			Salary: table.Base + i*table.Step + between(rnd, 0, salaryJitterMax),
		})
	}
	return out
}

func (g *FallbackGenerator) companyGrowth(rnd RandomSource) types.CompanyGrowthData {
	out := make(types.CompanyGrowthData, 0, len(g.catalog.Companies))
	for _, company := range g.catalog.Companies {
		out = append(out, types.CompanyGrowthRecord{
			Company:   company,
			Growth:    float64(between(rnd, companyGrowthMin, companyGrowthMax)),
			Hiring:    between(rnd, hiringMin, hiringMax),
			MarketCap: float64(between(rnd, marketCapMin, marketCapMax)),
		})
	}
	return out
}

func (g *FallbackGenerator) skillDemand(rnd RandomSource) types.SkillDemandData {
	skills := sample(rnd, g.catalog.Skills, fallbackSkillCount)
	out := make(types.SkillDemandData, 0, len(skills))
	for _, skill := range skills {
		out = append(out, types.SkillDemandRecord{
			Skill:  skill,
			Demand: between(rnd, demandMin, demandMax),
			Growth: float64(between(rnd, growthMin, growthMax)),
			Salary: between(rnd, skillSalaryMin, skillSalaryMax),
		})
	}
	return out
}

func (g *FallbackGenerator) courses(rnd RandomSource, params types.Params) types.SkillCourses {
	return types.SkillCourses{
		Skill:   params.Skill,
		English: jitterRatings(rnd, shuffled(rnd, g.catalog.Courses.English)),
		Hindi:   jitterRatings(rnd, shuffled(rnd, g.catalog.Courses.Hindi)),
	}
}

// jitterRatings moves each rating by up to ±0.2, clamped to [1,5] and
// rounded to one decimal. courses must already be a copy.
func jitterRatings(rnd RandomSource, courses []types.Course) []types.Course {
	for i := range courses {
		rating := courses[i].Rating + (rnd.Float64()*2-1)*ratingJitter
		courses[i].Rating = roundTo(clamp(rating, ratingMin, ratingMax), 1)
	}
	return courses
}

func (g *FallbackGenerator) profile(params types.Params) types.ProfileOptimization {
	pool := g.catalog.LinkedIn

	posts := make([]types.LinkedInPost, 0, pool.PostCount)
	for i := 1; i <= pool.PostCount; i++ {
		posts = append(posts, types.LinkedInPost{
			Title:    strings.ReplaceAll(pool.PostTitle, "{n}", strconv.Itoa(i)),
			Content:  pool.PostContent,
			Hashtags: append([]string(nil), pool.Hashtags...),
		})
	}

	return types.ProfileOptimization{
		Profile: types.LinkedInProfile{
			Headline:        g.headline(params),
			Summary:         pool.Summary,
			Recommendations: append([]string(nil), pool.Recommendations...),
		},
		Posts: posts,
	}
}

func (g *FallbackGenerator) headline(params types.Params) string {
	return strings.ReplaceAll(g.catalog.LinkedIn.Headline, "{position}", params.TargetPosition)
}

func (g *FallbackGenerator) resume(rnd RandomSource, params types.Params) types.ResumeContent {
	keywords := extractKeywords(params.JobDescription, resumeKeywordMax)
	pool := append(append([]string{}, keywords...), g.catalog.Resume.CommonSkills...)
	skills := sample(rnd, pool, resumeSkillCount)

	return types.ResumeContent{
		Summary:     resumeSummary(params.TargetRole, skills),
		Skills:      skills,
		Experience:  []types.ResumeExperience{g.experience(rnd, params)},
		Education:   []types.ResumeEducation{g.catalog.Resume.Education},
		Projects:    []types.ResumeProject{g.project(rnd)},
		Keywords:    keywords,
		Suggestions: sample(rnd, g.catalog.Resume.Suggestions, suggestionCount),
	}
}

func (g *FallbackGenerator) experience(rnd RandomSource, params types.Params) types.ResumeExperience {
	return types.ResumeExperience{
		Title:        params.TargetRole,
		Company:      g.catalog.Resume.Company,
		Duration:     g.catalog.Resume.Duration,
		Achievements: g.achievements(rnd),
	}
}

func (g *FallbackGenerator) achievements(rnd RandomSource) []string {
	templates := sample(rnd, g.catalog.Resume.AchievementTemplates, achievementCount)
	out := make([]string, 0, len(templates))
	for _, template := range templates {
		value := between(rnd, achievementMin, achievementMax)
		out = append(out, strings.ReplaceAll(template, "{value}", strconv.Itoa(value)))
	}
	return out
}

func (g *FallbackGenerator) project(rnd RandomSource) types.ResumeProject {
	return types.ResumeProject{
		Name:         g.catalog.Resume.Project.Name,
		Description:  g.catalog.Resume.Project.Description,
		Technologies: sample(rnd, g.catalog.Resume.Technologies, technologyCount),
	}
}

func (g *FallbackGenerator) generic(rnd RandomSource, topic types.Topic) types.GenericData {
	items := make([]types.GenericItem, 0, genericItemCount)
	for i := 1; i <= genericItemCount; i++ {
		items = append(items, types.GenericItem{
			ID:    i,
			Value: strconv.FormatInt(int64(rnd.IntN(math.MaxInt32)), 36),
		})
	}
	return types.GenericData{
		RequestedTopic: topic,
		Message:        fmt.Sprintf("No structured data is available for %q; returning placeholder data.", topic),
		Timestamp:      g.now().UTC().Format(time.RFC3339),
		RandomData:     items,
	}
}

// Fill helpers used when a live resume is missing sections

func (g *FallbackGenerator) fillKeywords(rnd RandomSource, params types.Params) []string {
	return shuffled(rnd, extractKeywords(params.JobDescription, resumeKeywordMax))
}

func (g *FallbackGenerator) fillSuggestions(rnd RandomSource) []string {
	pool := append(append([]string{}, g.catalog.Resume.Suggestions...), g.catalog.Resume.ExtraSuggestions...)
	return sample(rnd, pool, filledSuggestions)
}

func (g *FallbackGenerator) fillSkills(rnd RandomSource, params types.Params) []string {
	pool := append(extractKeywords(params.JobDescription, filledSkillWords), g.catalog.Resume.DefaultSkills...)
	return sample(rnd, pool, filledSkillCount)
}

func resumeSummary(targetRole string, skills []string) string {
	top := skills
	if len(top) > 3 {
		top = top[:3]
	}
	return fmt.Sprintf(
		"Experienced %s professional with a track record of delivering impactful results. Skilled in %s and committed to driving innovation and excellence.",
		targetRole, strings.Join(top, ", "),
	)
}

// extractKeywords returns up to limit words of at least keywordMinLength characters
func extractKeywords(text string, limit int) []string {
	keywords := make([]string, 0, limit)
	for _, word := range strings.Fields(text) {
		if len(keywords) == limit {
			break
		}
		if len([]rune(word)) >= keywordMinLength {
			keywords = append(keywords, word)
		}
	}
	return keywords
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
