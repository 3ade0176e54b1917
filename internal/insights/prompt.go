package insights

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/career-pulse/internal/prompts"
	"github.com/jonathan/career-pulse/internal/types"
)

// PromptBuilder turns a request into a single completion prompt
type PromptBuilder struct {
	now func() time.Time
}

// NewPromptBuilder creates a builder. A nil clock uses time.Now.
func NewPromptBuilder(now func() time.Time) *PromptBuilder {
	if now == nil {
		now = time.Now
	}
	return &PromptBuilder{now: now}
}

// Build states the data domain, enumerates the fields of the topic's shape,
// shows one example and closes with a return-only-JSON instruction.
func (b *PromptBuilder) Build(req Request) string {
	params := req.Params.WithDefaults()
	data := b.templateData(params)

	shape, ok := ShapeFor(req.Topic)
	if !ok {
		return fmt.Sprintf("Generate a JSON object with data about %q.\n\n%s",
			string(req.Topic), prompts.MustGet(prompts.InsightsFile, "closing-object"))
	}

	key := string(req.Topic)
	var sb strings.Builder

	sb.WriteString(render(key+"-intro", data))
	sb.WriteString("\n\n")

	sb.WriteString(prompts.MustGet(prompts.InsightsFile, "fields-header"))
	sb.WriteString("\n")
	writeFields(&sb, shape.Fields, 0)

	if prompts.Has(prompts.InsightsFile, key+"-requirements") {
		sb.WriteString("\n")
		sb.WriteString(prompts.MustGet(prompts.InsightsFile, "requirements-header"))
		sb.WriteString("\n")
		sb.WriteString(render(key+"-requirements", data))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(prompts.MustGet(prompts.InsightsFile, "example-header"))
	sb.WriteString("\n")
	sb.WriteString(render(key+"-example", data))
	sb.WriteString("\n\n")

	if shape.Root == RootArray {
		sb.WriteString(prompts.MustGet(prompts.InsightsFile, "closing-array"))
	} else {
		sb.WriteString(prompts.MustGet(prompts.InsightsFile, "closing-object"))
	}
	return sb.String()
}

func (b *PromptBuilder) templateData(params types.Params) map[string]string {
	userInput, err := json.MarshalIndent(params.UserInput, "", "  ")
	if err != nil {
		userInput = []byte("{}")
	}

	seed := params.RandomSeed
	if seed == "" {
		seed = strings.SplitN(uuid.NewString(), "-", 2)[0]
	}

	linkedInURL := params.LinkedInURL
	if linkedInURL == "" {
		linkedInURL = "not provided"
	}

	return map[string]string{
		"Timeframe":      params.Timeframe,
		"Role":           params.Role,
		"Industry":       params.Industry,
		"Field":          params.Field,
		"Skill":          params.Skill,
		"TargetPosition": params.TargetPosition,
		"LinkedInURL":    linkedInURL,
		"JobDescription": params.JobDescription,
		"TargetRole":     params.TargetRole,
		"UserInput":      string(userInput),
		"Timestamp":      b.now().UTC().Format(time.RFC3339),
		"Seed":           seed,
	}
}

func render(key string, data map[string]string) string {
	return prompts.Format(prompts.MustGet(prompts.InsightsFile, key), data)
}

func writeFields(sb *strings.Builder, fields []FieldSpec, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, field := range fields {
		fmt.Fprintf(sb, "%s- %s (%s): %s\n", indent, field.Name, field.Kind, field.Description)
		if len(field.Fields) > 0 {
			writeFields(sb, field.Fields, depth+1)
		}
	}
}
