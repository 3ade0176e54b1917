//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsightRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request InsightRequest
		wantErr bool
	}{
		{"empty", InsightRequest{}, false},
		{"valid url", InsightRequest{Params{LinkedInURL: "https://www.linkedin.com/in/someone"}}, false},
		{"invalid url", InsightRequest{Params{LinkedInURL: "someone"}}, true},
		{"role too long", InsightRequest{Params{Role: strings.Repeat("r", 201)}}, true},
		{"job description at limit", InsightRequest{Params{JobDescription: strings.Repeat("j", 20000)}}, false},
		{"job description too long", InsightRequest{Params{JobDescription: strings.Repeat("j", 20001)}}, true},
		{"seed too long", InsightRequest{Params{RandomSeed: strings.Repeat("s", 65)}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDashboardRequest_Validate(t *testing.T) {
	assert.NoError(t, (&DashboardRequest{Industry: "Fintech"}).Validate())
	assert.Error(t, (&DashboardRequest{Timeframe: strings.Repeat("t", 33)}).Validate())
}

func TestImproveBulletRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request ImproveBulletRequest
		wantErr bool
	}{
		{"valid", ImproveBulletRequest{Current: "Led migration to Go", Type: "experience"}, false},
		{"default type", ImproveBulletRequest{Current: "Led migration to Go"}, false},
		{"missing current", ImproveBulletRequest{Type: "project"}, true},
		{"too short", ImproveBulletRequest{Current: "ok"}, true},
		{"unknown type", ImproveBulletRequest{Current: "Led migration to Go", Type: "poem"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
