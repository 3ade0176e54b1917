package insights

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/career-pulse/internal/llm"
	"github.com/jonathan/career-pulse/internal/schemas"
	"github.com/jonathan/career-pulse/internal/types"
	"github.com/tidwall/gjson"
)

const snippetLength = 120

// Parse strips code fences and surrounding prose from a completion and checks
// that what remains is well-formed JSON.
func Parse(raw string) (string, error) {
	cleaned := llm.CleanJSONBlock(raw)
	if cleaned == "" {
		return "", &ParseError{Message: "empty completion"}
	}
	if !gjson.Valid(cleaned) {
		return "", &ParseError{Message: "completion is not valid JSON", Snippet: truncate(cleaned, snippetLength)}
	}
	return cleaned, nil
}

// Validator checks parsed JSON against a topic's root schema, then coerces
// every declared field into the typed result.
type Validator struct {
	gen *FallbackGenerator
}

// NewValidator creates a validator whose fill functions draw from gen
func NewValidator(gen *FallbackGenerator) *Validator {
	return &Validator{gen: gen}
}

// Validate returns the typed result for document or a *ShapeError.
// Extra fields are ignored.
func (v *Validator) Validate(req Request, document string) (types.Result, error) {
	shape, ok := ShapeFor(req.Topic)
	if !ok {
		return nil, &ShapeError{Topic: req.Topic, Message: "no shape registered", Cause: errUnknownTopic}
	}

	if shape.Root == RootArray {
		document = unwrapArray(document)
	}
	if err := schemas.ValidateTopic(req.Topic, document); err != nil {
		return nil, &ShapeError{Topic: req.Topic, Message: "root shape rejected", Cause: err}
	}

	params := req.Params.WithDefaults()
	fc := &FillContext{Params: params, Random: v.gen.sourceFor(params), gen: v.gen}
	root := gjson.Parse(document)

	var normalized any
	switch shape.Root {
	case RootArray:
		records, ok := coerceRecords(root, shape.Fields, fc)
		if !ok {
			return nil, &ShapeError{Topic: req.Topic, Message: "no usable records"}
		}
		normalized = records
	default:
		object, err := coerceObject(root, shape.Fields, fc)
		if err != nil {
			return nil, &ShapeError{Topic: req.Topic, Message: "required section missing", Cause: err}
		}
		normalized = object
	}

	data, err := json.Marshal(normalized)
	if err != nil {
		return nil, &ShapeError{Topic: req.Topic, Message: "failed to encode normalized result", Cause: err}
	}
	result, err := shape.decode(data)
	if err != nil {
		return nil, &ShapeError{Topic: req.Topic, Message: "failed to decode normalized result", Cause: err}
	}
	return result, nil
}

// unwrapArray returns the array inside an object whose only member is an
// array, as produced by JSON-mode providers ({"data": [...]}). Anything else
// is returned unchanged.
func unwrapArray(document string) string {
	root := gjson.Parse(document)
	if !root.IsObject() {
		return document
	}
	members := root.Map()
	if len(members) != 1 {
		return document
	}
	for _, member := range members {
		if member.IsArray() {
			return member.Raw
		}
	}
	return document
}

var errMissing = errors.New("missing required field")

func coerceObject(obj gjson.Result, fields []FieldSpec, fc *FillContext) (map[string]any, error) {
	members := obj.Map()
	out := make(map[string]any, len(fields))
	parent := fc.object
	fc.object = out
	defer func() { fc.object = parent }()

	for i := range fields {
		field := &fields[i]
		value, ok := coerceField(members, field, fc)
		if !ok {
			if field.Required {
				return nil, fmt.Errorf("%w: %s", errMissing, field.Name)
			}
			value = fallbackValue(field, fc)
		}
		out[field.Name] = value
	}
	return out, nil
}

// coerceField tries the field name and then each alias
func coerceField(members map[string]gjson.Result, field *FieldSpec, fc *FillContext) (any, bool) {
	keys := append([]string{field.Name}, field.Aliases...)
	for _, key := range keys {
		raw, exists := members[key]
		if !exists {
			continue
		}
		if value, ok := coerceValue(raw, field, fc); ok {
			return value, true
		}
	}
	return nil, false
}

func coerceValue(raw gjson.Result, field *FieldSpec, fc *FillContext) (any, bool) {
	switch field.Kind {
	case KindString:
		return stringOf(raw)
	case KindInt:
		n, ok := numberOf(raw)
		if !ok {
			return nil, false
		}
		return toInt(field.Bounds.apply(n)), true
	case KindNumber:
		n, ok := numberOf(raw)
		if !ok {
			return nil, false
		}
		return field.Bounds.apply(n), true
	case KindStringList:
		return stringListOf(raw)
	case KindRecords:
		return coerceRecords(raw, field.Fields, fc)
	case KindObject:
		if !raw.IsObject() {
			return nil, false
		}
		object, err := coerceObject(raw, field.Fields, fc)
		if err != nil {
			return nil, false
		}
		return object, true
	default:
		return nil, false
	}
}

// coerceRecords keeps the object elements of an array, coercing each.
// It fails when no element survives.
func coerceRecords(raw gjson.Result, fields []FieldSpec, fc *FillContext) ([]any, bool) {
	if !raw.IsArray() {
		return nil, false
	}
	var records []any
	for _, item := range raw.Array() {
		if !item.IsObject() {
			continue
		}
		record, err := coerceObject(item, fields, fc)
		if err != nil {
			continue
		}
		records = append(records, record)
	}
	return records, len(records) > 0
}

func fallbackValue(field *FieldSpec, fc *FillContext) any {
	if field.Fill != nil {
		return field.Fill(fc)
	}
	if field.Default != nil {
		return field.Default
	}

	switch field.Kind {
	case KindString:
		return "Unknown"
	case KindInt:
		return toInt(field.Bounds.apply(0))
	case KindNumber:
		return field.Bounds.apply(0)
	case KindStringList:
		return []string{}
	case KindRecords:
		return []any{}
	case KindObject:
		object, err := coerceObject(gjson.Parse("{}"), field.Fields, fc)
		if err != nil {
			return map[string]any{}
		}
		return object
	default:
		return nil
	}
}

func stringOf(raw gjson.Result) (any, bool) {
	switch raw.Type {
	case gjson.String:
		if s := strings.TrimSpace(raw.Str); s != "" {
			return s, true
		}
	case gjson.Number:
		return strconv.FormatFloat(raw.Num, 'f', -1, 64), true
	}
	return nil, false
}

// numberOf accepts JSON numbers and numeric strings such as "1,200,000" or "18%"
func numberOf(raw gjson.Result) (float64, bool) {
	var n float64
	switch raw.Type {
	case gjson.Number:
		n = raw.Num
	case gjson.String:
		s := strings.TrimSpace(raw.Str)
		s = strings.TrimSuffix(s, "%")
		s = strings.ReplaceAll(s, ",", "")
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func stringListOf(raw gjson.Result) (any, bool) {
	if raw.Type == gjson.String {
		if s := strings.TrimSpace(raw.Str); s != "" {
			return []string{s}, true
		}
		return nil, false
	}
	if !raw.IsArray() {
		return nil, false
	}

	var out []string
	for _, item := range raw.Array() {
		if s, ok := stringOf(item); ok {
			out = append(out, s.(string))
		}
	}
	return out, len(out) > 0
}

// toInt rounds n, saturating at the largest integer a float64 holds exactly
func toInt(n float64) int64 {
	const limit = 1 << 53
	return int64(clamp(math.Round(n), -limit, limit))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
