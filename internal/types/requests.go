package types

import (
	"github.com/go-playground/validator/v10"
)

// InsightRequest is the HTTP request body for POST /insights/{topic}
type InsightRequest struct {
	Params
}

// Validate validates the InsightRequest using the validator.
func (r *InsightRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// DashboardRequest carries the query parameters of the industry-pulse dashboard
type DashboardRequest struct {
	Timeframe string `json:"timeframe,omitempty" validate:"omitempty,max=32"`
	Role      string `json:"role,omitempty" validate:"omitempty,max=200"`
	Industry  string `json:"industry,omitempty" validate:"omitempty,max=200"`
	Field     string `json:"field,omitempty" validate:"omitempty,max=200"`
	Skill     string `json:"skill,omitempty" validate:"omitempty,max=200"`
}

// Validate validates the DashboardRequest using the validator.
func (r *DashboardRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ImproveBulletRequest is the request body for POST /resume/improve
type ImproveBulletRequest struct {
	Current string `json:"current" validate:"required,min=3,max=2000"`
	Type    string `json:"type" validate:"omitempty,oneof=experience project achievement summary"`
}

// Validate validates the ImproveBulletRequest using the validator.
func (r *ImproveBulletRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ImproveBulletResponse is the response body for POST /resume/improve
type ImproveBulletResponse struct {
	Improved string `json:"improved"`
}

// DashboardResponse groups the industry-pulse panels
type DashboardResponse struct {
	JobMarket     Result `json:"job_market"`
	Salary        Result `json:"salary"`
	CompanyGrowth Result `json:"company_growth"`
	SkillDemand   Result `json:"skill_demand"`
	Courses       Result `json:"courses"`
}
