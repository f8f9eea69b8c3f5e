// Package narrative decorates already-applied outcomes with flavor text.
// The remote service is optional; every call falls back to a template.
package narrative

import (
	"context"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
)

// Service produces narrative text
type Service interface {
	Narrate(ctx context.Context, location, outcome string, rewards RewardSummary) string
	DescribeEnemy(ctx context.Context, e domain.Enemy) domain.Enemy
}

type service struct {
	client  Client
	timeout time.Duration
	lang    language.Tag
}

// NewService creates a Service. A nil client always uses the templates.
func NewService(client Client, timeout time.Duration) Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &service{client: client, timeout: timeout, lang: language.English}
}

func (s *service) Narrate(ctx context.Context, location, outcome string, rewards RewardSummary) string {
	if s.client != nil {
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		text, err := s.client.Narrate(cctx, NarrateRequest{
			Location: location,
			Outcome:  outcome,
			Rewards:  rewards,
			Language: s.lang.String(),
		})
		if err == nil {
			return text
		}
		logger.FromContext(ctx).Warn(LogMsgNarrateFallback, "location", location, "error", err)
	}
	return FallbackNarration(s.lang, location, outcome, rewards)
}

func (s *service) DescribeEnemy(ctx context.Context, e domain.Enemy) domain.Enemy {
	if s.client != nil {
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		flavor, err := s.client.Describe(cctx, e.Level, e.IsBoss)
		if err == nil {
			e.Name = flavor.Name
			e.Description = flavor.Description
			return e
		}
		logger.FromContext(ctx).Warn(LogMsgDescribeFallback, "level", e.Level, "error", err)
	}
	e.Description = FallbackDescription(s.lang, e)
	return e
}

// FallbackNarration is the deterministic text used without the remote service
func FallbackNarration(lang language.Tag, location, outcome string, r RewardSummary) string {
	p := message.NewPrinter(lang)
	place := cases.Title(lang).String(location)

	switch outcome {
	case OutcomeDefeat:
		return p.Sprintf("You were beaten back at %s and limp home with nothing to show for it.", place)
	default:
		text := p.Sprintf("You return from %s with %d XP and %d gold.", place, r.XP, r.Gold)
		if r.ItemName != "" {
			text += p.Sprintf(" Among the spoils: %s.", r.ItemName)
		}
		return text
	}
}

// FallbackDescription is the deterministic enemy description
func FallbackDescription(lang language.Tag, e domain.Enemy) string {
	p := message.NewPrinter(lang)
	if e.IsBoss {
		return p.Sprintf("A level %d champion with %d hit points bars the way.", e.Level, e.MaxHP)
	}
	return p.Sprintf("A level %d foe with %d hit points.", e.Level, e.MaxHP)
}
