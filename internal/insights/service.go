// Package insights resolves structured career insights from a completion
// service, validating and coercing its output and substituting synthetic data
// whenever the live path fails.
package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/career-pulse/internal/catalog"
	"github.com/jonathan/career-pulse/internal/llm"
	"github.com/jonathan/career-pulse/internal/types"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single completion call
const DefaultTimeout = 10 * time.Second

// Completer is the subset of llm.Client the pipeline needs
type Completer interface {
	GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

// Recorder receives per-call measurements
type Recorder interface {
	RecordInsight(topic, source, reason string)
	RecordCompletion(topic string, elapsed time.Duration)
}

// Request is one topic request. It is not retained after the call.
type Request struct {
	Topic  types.Topic
	Params types.Params
}

// Outcome is a resolved request together with its provenance
type Outcome struct {
	Result   types.Result
	Source   Source
	State    State
	Err      error
	CallID   string
	Duration time.Duration
}

// Reason classifies why the outcome fell back, or ReasonNone
func (o Outcome) Reason() string {
	return Reason(o.Err)
}

// Options configures a Service
type Options struct {
	// Client is the completion service; nil means every call falls back
	Client   Completer
	Tier     llm.ModelTier
	Timeout  time.Duration
	Catalog  *catalog.Catalog
	Random   RandomSource
	Logger   *zap.Logger
	Recorder Recorder
	Now      func() time.Time
}

// Service is the inbound interface of the pipeline. It is created once at
// process start and is safe for concurrent use.
type Service struct {
	client    Completer
	tier      llm.ModelTier
	timeout   time.Duration
	prompts   *PromptBuilder
	validator *Validator
	fallback  *FallbackGenerator
	logger    *zap.Logger
	recorder  Recorder
	now       func() time.Time
}

// NewService creates a Service from opts
func NewService(opts Options) *Service {
	if opts.Tier == "" {
		opts.Tier = llm.TierStandard
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	gen := NewFallbackGenerator(opts.Catalog, opts.Random)
	gen.now = opts.Now

	return &Service{
		client:    opts.Client,
		tier:      opts.Tier,
		timeout:   opts.Timeout,
		prompts:   NewPromptBuilder(opts.Now),
		validator: NewValidator(gen),
		fallback:  gen,
		logger:    opts.Logger,
		recorder:  opts.Recorder,
		now:       opts.Now,
	}
}

// Live reports whether a completion client is configured
func (s *Service) Live() bool {
	return s.client != nil
}

// Prompt returns the prompt that would be sent for a request
func (s *Service) Prompt(req Request) string {
	return s.prompts.Build(req)
}

// GetStructuredData always returns a shape-conforming result for topic
func (s *Service) GetStructuredData(ctx context.Context, topic types.Topic, params types.Params) types.Result {
	return s.Resolve(ctx, Request{Topic: topic, Params: params}).Result
}

// Resolve runs the pipeline once and reports where the result came from.
// Every failure is converted into a fallback result.
func (s *Service) Resolve(ctx context.Context, req Request) Outcome {
	start := s.now()
	req.Params = req.Params.WithDefaults()
	out := Outcome{CallID: uuid.NewString(), State: StateIdle}
	logger := s.logger.With(zap.String("call_id", out.CallID), zap.String("topic", string(req.Topic)))

	result, err := s.live(ctx, req, &out, logger)
	if err != nil {
		result = s.fallback.Generate(req)
		out.Source = SourceFallback
		out.State = StateFallback
		out.Err = err
	} else {
		out.Source = SourceLive
		out.State = StateDone
	}
	out.Result = result
	out.Duration = s.now().Sub(start)

	if s.recorder != nil {
		s.recorder.RecordInsight(string(req.Topic), string(out.Source), out.Reason())
	}

	if out.Source == SourceFallback {
		logger.Warn("using fallback insight",
			zap.String("reason", out.Reason()),
			zap.Error(out.Err),
			zap.Duration("duration", out.Duration))
	} else {
		logger.Info("resolved live insight", zap.Duration("duration", out.Duration))
	}
	return out
}

func (s *Service) live(ctx context.Context, req Request, out *Outcome, logger *zap.Logger) (result types.Result, err error) {
	if _, ok := ShapeFor(req.Topic); !ok {
		return nil, &ShapeError{Topic: req.Topic, Message: "no shape registered", Cause: errUnknownTopic}
	}
	if s.client == nil {
		return nil, &UpstreamUnavailableError{Message: "no credential configured", Cause: errNoClient}
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &UpstreamUnavailableError{Message: "completion client panicked", Cause: fmt.Errorf("%v", r)}
		}
	}()

	out.State = StatePrompting
	prompt := s.prompts.Build(req)

	out.State = StateAwaitingCompletion
	raw, err := s.complete(ctx, req.Topic, prompt)
	if err != nil {
		return nil, err
	}
	logger.Debug("completion received", zap.String("raw", truncate(raw, 512)))

	out.State = StateParsing
	document, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	out.State = StateValidating
	return s.validator.Validate(req, document)
}

func (s *Service) complete(ctx context.Context, topic types.Topic, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := s.now()
	raw, err := s.client.GenerateJSON(ctx, prompt, s.tier)
	if s.recorder != nil {
		s.recorder.RecordCompletion(string(topic), s.now().Sub(started))
	}
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	if err != nil {
		return "", &UpstreamUnavailableError{Message: "completion call failed", Cause: err}
	}
	return raw, nil
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
