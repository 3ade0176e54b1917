package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-pulse/internal/insights"
	"github.com/jonathan/career-pulse/internal/types"
)

// maxBodyBytes caps request bodies; job descriptions are the largest field
const maxBodyBytes = 64 << 10

// HealthResponse represents the response for /health
type HealthResponse struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}

// TopicInfo describes one served topic
type TopicInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// dashboardPanels lists the topics rendered on the industry-pulse dashboard
var dashboardPanels = []types.Topic{
	types.TopicJobMarket,
	types.TopicSalary,
	types.TopicCompanyGrowth,
	types.TopicSkillDemand,
	types.TopicCourseRecommendation,
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	mode := "offline"
	if s.service.Live() {
		mode = "live"
	}
	s.jsonResponse(w, http.StatusOK, HealthResponse{Status: "ok", Mode: mode})
}

// handleTopics lists the served topics
func (s *Server) handleTopics(w http.ResponseWriter, _ *http.Request) {
	topics := types.AllTopics()
	infos := make([]TopicInfo, 0, len(topics))
	for _, topic := range topics {
		infos = append(infos, TopicInfo{Name: string(topic), Description: topic.Description()})
	}
	s.jsonResponse(w, http.StatusOK, infos)
}

// handleInsight resolves one topic. GET reads parameters from the query
// string, POST from a JSON body.
func (s *Server) handleInsight(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("topic")
	topic, err := types.ParseTopic(name)
	if err != nil {
		s.failure(w, &ErrUnknownTopic{Name: name})
		return
	}

	var req types.InsightRequest
	if r.Method == http.MethodPost {
		if err := decodeBody(w, r, &req); err != nil {
			s.failure(w, err)
			return
		}
	} else {
		req.Params = paramsFromQuery(r.URL.Query())
	}

	if err := req.Validate(); err != nil {
		s.failure(w, validationError(err))
		return
	}

	outcome := s.service.Resolve(r.Context(), insights.Request{Topic: topic, Params: req.Params})
	if s.exposeProvenance {
		w.Header().Set(SourceHeader, string(outcome.Source))
	}
	s.jsonResponse(w, http.StatusOK, outcome.Result)
}

// handleIndustryPulse resolves the dashboard panels concurrently
func (s *Server) handleIndustryPulse(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := types.DashboardRequest{
		Timeframe: query.Get("timeframe"),
		Role:      query.Get("role"),
		Industry:  query.Get("industry"),
		Field:     query.Get("field"),
		Skill:     query.Get("skill"),
	}
	if err := req.Validate(); err != nil {
		s.failure(w, validationError(err))
		return
	}

	params := types.Params{
		Timeframe: req.Timeframe,
		Role:      req.Role,
		Industry:  req.Industry,
		Field:     req.Field,
		Skill:     req.Skill,
	}

	outcomes := make([]insights.Outcome, len(dashboardPanels))
	g, ctx := errgroup.WithContext(r.Context())
	for i, topic := range dashboardPanels {
		g.Go(func() error {
			outcomes[i] = s.service.Resolve(ctx, insights.Request{Topic: topic, Params: params})
			return nil
		})
	}
	// Resolve never fails, so Wait only synchronizes
	_ = g.Wait()

	if s.exposeProvenance {
		w.Header().Set(SourceHeader, aggregateSource(outcomes))
	}
	s.jsonResponse(w, http.StatusOK, types.DashboardResponse{
		JobMarket:     outcomes[0].Result,
		Salary:        outcomes[1].Result,
		CompanyGrowth: outcomes[2].Result,
		SkillDemand:   outcomes[3].Result,
		Courses:       outcomes[4].Result,
	})
}

// handleImproveBullet rewrites one resume bullet
func (s *Server) handleImproveBullet(w http.ResponseWriter, r *http.Request) {
	var req types.ImproveBulletRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, validationError(err))
		return
	}

	improved, err := s.service.ImproveBullet(r.Context(), req.Current, req.Type)
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.ImproveBulletResponse{Improved: improved})
}

// decodeBody decodes a JSON request body into dst. An empty body leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return &ErrValidation{Message: "invalid request body: " + err.Error()}
	}
	return nil
}

// paramsFromQuery maps query string keys onto insight parameters
func paramsFromQuery(query url.Values) types.Params {
	return types.Params{
		Timeframe:      query.Get("timeframe"),
		Role:           query.Get("role"),
		Industry:       query.Get("industry"),
		Field:          query.Get("field"),
		Skill:          query.Get("skill"),
		TargetPosition: query.Get("target_position"),
		LinkedInURL:    query.Get("linkedin_url"),
		JobDescription: query.Get("job_description"),
		TargetRole:     query.Get("target_role"),
		RandomSeed:     query.Get("random_seed"),
	}
}

// validationError reduces validator output to the first failing field
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ErrValidation{Field: fe.Field(), Message: "failed on the '" + fe.Tag() + "' rule"}
	}
	return &ErrValidation{Message: err.Error()}
}

// aggregateSource summarizes panel provenance as live, fallback or mixed
func aggregateSource(outcomes []insights.Outcome) string {
	live := 0
	for _, o := range outcomes {
		if o.Source == insights.SourceLive {
			live++
		}
	}
	switch live {
	case len(outcomes):
		return string(insights.SourceLive)
	case 0:
		return string(insights.SourceFallback)
	default:
		return "mixed"
	}
}
