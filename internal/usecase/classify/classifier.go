// Package classify maps a normalized query to an intent.
//
// Rules are evaluated in priority order and the first match wins:
// unit conversion, encyclopedia lookup, support, domain chat, then general chat.
package classify

import (
	"regexp"
	"strings"

	"github.com/kailas-cloud/askbot/internal/domain/intent"
)

// Predicate reports whether a normalized input triggers a rule.
type Predicate func(input string) bool

// Rule pairs an intent with its trigger.
type Rule struct {
	Intent  intent.Intent
	Matches Predicate
}

var (
	unitConverterRegex = regexp.MustCompile(`(?i)(convert|change|in).{1,2}(\d{1,8})`)
	wikipediaRegex     = regexp.MustCompile(`(?i)(search for|tell me about|what is|who is) `)
	supportRegex       = regexp.MustCompile(
		`(?i)(invented|programmer|teacher|create|maker|who made|creator|developer|bug|email|report|problems)`,
	)
	domainChatRegex = regexp.MustCompile(`(?i)explain`)
)

// DefaultRules returns the built-in rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{Intent: intent.UnitConverter, Matches: unitConverterRegex.MatchString},
		{Intent: intent.Wikipedia, Matches: isEncyclopediaQuery},
		{Intent: intent.Support, Matches: supportRegex.MatchString},
		{Intent: intent.DomainChat, Matches: domainChatRegex.MatchString},
	}
}

// isEncyclopediaQuery matches a lookup phrase followed by a topic, unless the phrase is
// directly followed by one character and "you" ("what is your name", "who is you").
func isEncyclopediaQuery(input string) bool {
	_, ok := EncyclopediaTopic(input)
	return ok
}

// EncyclopediaTopic returns the text after the first lookup phrase that is followed by a
// topic rather than a reference to the bot.
func EncyclopediaTopic(input string) (string, bool) {
	for _, loc := range wikipediaRegex.FindAllStringIndex(input, -1) {
		phraseEnd := loc[1] - 1 // position of the separating space
		if refersToBot(input[phraseEnd:]) {
			continue
		}
		if topic := input[loc[1]:]; topic != "" && topic[0] != '\n' {
			return topic, true
		}
	}
	return "", false
}

func refersToBot(rest string) bool {
	r := []rune(rest)
	return len(r) >= 4 && strings.EqualFold(string(r[1:4]), "you")
}

// Classifier evaluates rules in order.
type Classifier struct {
	rules    []Rule
	fallback intent.Intent
}

// New creates a Classifier. Inputs matching no rule are classified as general chat.
func New(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules, fallback: intent.GeneralChat}
}

// Classify returns the intent of the first matching rule. Later rules are not evaluated.
func (c *Classifier) Classify(input string) intent.Intent {
	for _, r := range c.rules {
		if r.Matches(input) {
			return r.Intent
		}
	}
	return c.fallback
}

// Topic extracts the encyclopedia topic from input by its lookup phrase.
func (c *Classifier) Topic(input string) (string, bool) {
	return EncyclopediaTopic(input)
}
