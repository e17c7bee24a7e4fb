package chat

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kailas-cloud/askbot/internal/domain"
	"github.com/kailas-cloud/askbot/internal/domain/intent"
	"github.com/kailas-cloud/askbot/internal/domain/knowledge"
	"github.com/kailas-cloud/askbot/internal/domain/match"
	"github.com/kailas-cloud/askbot/internal/domain/reply"
	"github.com/kailas-cloud/askbot/internal/domain/unit"
	"github.com/kailas-cloud/askbot/internal/logger"
)

// MissingUnitsMessage answers a unit conversion that could not be performed.
const MissingUnitsMessage = "One or more units are missing."

const maxNameLen = 30

var introductionRegex = regexp.MustCompile(`(?i)(?:my name is|i'm|i am) `)

// convertUnits answers a unit conversion. The rating is always 1: a failed conversion is
// reported in-band, never as a fallback.
func (s *Service) convertUnits(ctx context.Context, r *reply.Reply, input string, best match.Result) {
	r.Rating = 1

	text, err := s.conversionText(input, best)
	if err != nil {
		logger.FromContext(ctx).Warn("unit conversion failed",
			zap.String("input", input),
			zap.String("template", best.Target()),
			zap.Error(err),
		)
		r.Text = MissingUnitsMessage
		return
	}
	r.Text = text
}

func (s *Service) conversionText(input string, best match.Result) (string, error) {
	tpl, ok := s.kb.Template(intent.UnitConverter, best.Index())
	if !ok {
		return "", fmt.Errorf("template %q: %w", best.Target(), domain.ErrMissingSlot)
	}
	slots, ok := tpl.Extract(input)
	if !ok {
		return "", fmt.Errorf("input does not fit %q: %w", best.Target(), domain.ErrMissingSlot)
	}

	amount, from, to := slots[knowledge.SlotAmount], slots[knowledge.SlotUnitFrom], slots[knowledge.SlotUnitTo]
	if amount == "" || from == "" || to == "" {
		return "", fmt.Errorf("template %q: %w", best.Target(), domain.ErrMissingSlot)
	}
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return "", fmt.Errorf("amount %q: %w", amount, domain.ErrMissingSlot)
	}

	conv, err := s.units.Convert(value, from, to)
	if err != nil {
		return "", fmt.Errorf("convert %s %s to %s: %w", amount, from, to, err)
	}
	return formatConversion(amount, conv), nil
}

func formatConversion(amount string, c unit.Conversion) string {
	return fmt.Sprintf("%s %s(%s) is equal to %s %s(%s).",
		amount, c.From.Plural, c.From.Abbr,
		FormatAmount(c.Value), c.To.Plural, c.To.Abbr,
	)
}

// FormatAmount renders a converted value with six significant digits and no exponent.
func FormatAmount(v float64) string {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 6, 64), 64)
	if err != nil {
		rounded = v
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// summarize answers an encyclopedia query. Lookup failures become an in-band apology
// marked as fallback; a found summary is returned verbatim.
func (s *Service) summarize(ctx context.Context, r *reply.Reply, input string, best match.Result) {
	topic := s.topic(input, best)
	if topic == "" {
		r.Text = notFoundText(topic)
		r.IsFallback = true
		return
	}

	// The lookup outlives a cancelled request; the lookup client's timeout bounds it.
	summary, err := s.lookup.Summary(context.WithoutCancel(ctx), topic)
	switch {
	case err == nil && strings.TrimSpace(summary) != "":
		r.Text = summary
	case err == nil, errors.Is(err, domain.ErrArticleNotFound):
		r.Text = notFoundText(topic)
		r.IsFallback = true
	default:
		logger.FromContext(ctx).Warn("summary lookup failed", zap.String("topic", topic), zap.Error(err))
		r.Text = `Sorry, we can't find any article related to "` + topic + `".`
		r.IsFallback = true
	}
}

// topic extracts the lookup title from input. The matched template is tried first, then
// the remaining templates in candidate order, then the text after the lookup phrase.
func (s *Service) topic(input string, best match.Result) string {
	if t := s.templateTopic(input, best.Index()); t != "" {
		return t
	}
	for i := range s.kb.Candidates(intent.Wikipedia) {
		if i == best.Index() {
			continue
		}
		if t := s.templateTopic(input, i); t != "" {
			return t
		}
	}
	if t, ok := s.classifier.Topic(input); ok {
		return titleCase(t)
	}
	return ""
}

func (s *Service) templateTopic(input string, idx int) string {
	tpl, ok := s.kb.Template(intent.Wikipedia, idx)
	if !ok {
		return ""
	}
	slots, ok := tpl.Extract(input)
	if !ok {
		return ""
	}
	return titleCase(slots[knowledge.SlotTopic])
}

func notFoundText(topic string) string {
	return `Sorry, I can't find any article related to "` + topic + `".`
}

func titleCase(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

// answerChat greets a general chat introduction by name and otherwise answers from the pool.
func (s *Service) answerChat(r *reply.Reply, in intent.Intent, query string, best match.Result) {
	if in == intent.GeneralChat {
		if name, ok := introducedName(stripTrailingPunctuation(query)); ok {
			r.Text = fmt.Sprintf("I'm glad to know, %s.", name)
			r.Rating = 1
			return
		}
	}
	s.answerFromPool(r, in, best)
}

// answerFromPool picks a random answer paired with the matched question when the score
// clears the threshold. Otherwise r.Text stays empty and the fallback policy applies.
func (s *Service) answerFromPool(r *reply.Reply, in intent.Intent, best match.Result) {
	if !best.Exceeds(s.threshold) {
		return
	}
	answers := s.kb.Answers(in, best.Index())
	if len(answers) == 0 {
		return
	}
	r.Text = s.pick(answers)
	r.Rating = best.Score()
}

// introducedName extracts X from "my name is X", "I'm X" or "I am X", keeping the
// original casing. Answers such as "I am fine" are not introductions.
func introducedName(query string) (string, bool) {
	for _, loc := range introductionRegex.FindAllStringIndex(query, -1) {
		rest := query[loc[1]:]
		lower := strings.ToLower(rest)
		if rest == "" || strings.HasPrefix(lower, "fine") || strings.HasPrefix(lower, "good") {
			continue
		}
		name := []rune(rest)
		if len(name) > maxNameLen {
			name = name[:maxNameLen]
		}
		return string(name), true
	}
	return "", false
}
