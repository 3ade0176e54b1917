package types

// Result is the structured value returned for an insight topic.
// Each topic has exactly one concrete variant.
type Result interface {
	Topic() Topic
}

// JobMarketRecord is one city's job market snapshot
type JobMarketRecord struct {
	Location string  `json:"location"`
	Jobs     int     `json:"jobs"`
	Salary   int     `json:"salary"`
	Growth   float64 `json:"growth"`
}

// JobMarketData is the job-market result
type JobMarketData []JobMarketRecord

// Topic implements Result
func (JobMarketData) Topic() Topic { return TopicJobMarket }

// SalaryRecord is the average annual salary for one year
type SalaryRecord struct {
	Year   string `json:"year"`
	Salary int    `json:"salary"`
}

// SalaryData is the salary result
type SalaryData []SalaryRecord

// Topic implements Result
func (SalaryData) Topic() Topic { return TopicSalary }

// CompanyGrowthRecord describes one company in an industry
type CompanyGrowthRecord struct {
	Company   string  `json:"company"`
	Growth    float64 `json:"growth"`
	Hiring    int     `json:"hiring"`
	MarketCap float64 `json:"marketCap"`
}

// CompanyGrowthData is the company-growth result
type CompanyGrowthData []CompanyGrowthRecord

// Topic implements Result
func (CompanyGrowthData) Topic() Topic { return TopicCompanyGrowth }

// SkillDemandRecord describes demand for one skill
type SkillDemandRecord struct {
	Skill  string  `json:"skill"`
	Demand int     `json:"demand"`
	Growth float64 `json:"growth"`
	Salary int     `json:"salary"`
}

// SkillDemandData is the skill-demand result
type SkillDemandData []SkillDemandRecord

// Topic implements Result
func (SkillDemandData) Topic() Topic { return TopicSkillDemand }

// Course is a single course recommendation
type Course struct {
	Title    string  `json:"title" yaml:"title"`
	Provider string  `json:"provider" yaml:"provider"`
	URL      string  `json:"url" yaml:"url"`
	Level    string  `json:"level" yaml:"level"`
	Rating   float64 `json:"rating" yaml:"rating"`
	Duration string  `json:"duration" yaml:"duration"`
}

// SkillCourses is the course-recommendation result
type SkillCourses struct {
	Skill   string   `json:"skill"`
	English []Course `json:"english"`
	Hindi   []Course `json:"hindi"`
}

// Topic implements Result
func (SkillCourses) Topic() Topic { return TopicCourseRecommendation }

// LinkedInProfile holds the optimized profile sections
type LinkedInProfile struct {
	Headline        string   `json:"headline"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// LinkedInPost is a suggested post
type LinkedInPost struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Hashtags []string `json:"hashtags"`
}

// ProfileOptimization is the profile-optimization result
type ProfileOptimization struct {
	Profile LinkedInProfile `json:"profile"`
	Posts   []LinkedInPost  `json:"posts"`
}

// Topic implements Result
func (ProfileOptimization) Topic() Topic { return TopicProfileOptimization }

// ResumeExperience is one experience entry
type ResumeExperience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration"`
	Achievements []string `json:"achievements"`
}

// ResumeEducation is one education entry
type ResumeEducation struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Details     string `json:"details"`
}

// ResumeProject is one project entry
type ResumeProject struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// ResumeContent is the resume-content result
type ResumeContent struct {
	Summary     string             `json:"summary"`
	Skills      []string           `json:"skills"`
	Experience  []ResumeExperience `json:"experience"`
	Education   []ResumeEducation  `json:"education"`
	Projects    []ResumeProject    `json:"projects"`
	Keywords    []string           `json:"keywords"`
	Suggestions []string           `json:"suggestions"`
}

// Topic implements Result
func (ResumeContent) Topic() Topic { return TopicResumeContent }

// GenericItem is a placeholder record in a generic result
type GenericItem struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// GenericData is returned for a topic the pipeline has no shape for
type GenericData struct {
	RequestedTopic Topic         `json:"topic"`
	Message        string        `json:"message"`
	Timestamp      string        `json:"timestamp"`
	RandomData     []GenericItem `json:"randomData"`
}

// Topic implements Result
func (g GenericData) Topic() Topic { return g.RequestedTopic }
