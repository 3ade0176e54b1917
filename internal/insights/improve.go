package insights

import (
	"context"
	"strings"

	"github.com/jonathan/career-pulse/internal/llm"
	"github.com/jonathan/career-pulse/internal/prompts"
	"go.uber.org/zap"
)

// DefaultBulletKind is used when the caller does not say what the text is
const DefaultBulletKind = "experience"

// ImproveBullet rewrites one resume bullet. Unlike GetStructuredData it has
// no synthetic fallback, so failures are returned to the caller.
func (s *Service) ImproveBullet(ctx context.Context, current, kind string) (string, error) {
	if s.client == nil {
		return "", &UpstreamUnavailableError{Message: "no credential configured", Cause: errNoClient}
	}
	if kind == "" {
		kind = DefaultBulletKind
	}

	prompt := prompts.Format(prompts.MustGet(prompts.InsightsFile, "improve-bullet"), map[string]string{
		"Kind":    kind,
		"Current": strings.TrimSpace(current),
	})

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		s.logger.Warn("bullet improvement failed", zap.String("kind", kind), zap.Error(err))
		return "", &UpstreamUnavailableError{Message: "completion call failed", Cause: err}
	}

	improved := cleanBullet(text)
	if improved == "" {
		return "", &ParseError{Message: "empty completion"}
	}
	return improved, nil
}

// cleanBullet trims whitespace, wrapping quotes and a leading bullet marker
func cleanBullet(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "\"'`")
	text = strings.TrimLeft(text, "-*• ")
	return strings.TrimSpace(text)
}
