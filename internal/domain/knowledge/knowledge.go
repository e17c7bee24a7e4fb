// Package knowledge holds the immutable question/answer data the bot answers from.
package knowledge

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kailas-cloud/askbot/internal/domain"
	"github.com/kailas-cloud/askbot/internal/domain/intent"
	"github.com/kailas-cloud/askbot/internal/domain/template"
)

// Entry pairs a topic's question variants with its answer pool.
type Entry struct {
	questions []string
	answers   []string
}

// NewEntry creates an entry. Both lists must be non-empty.
func NewEntry(questions, answers []string) (Entry, error) {
	if len(questions) == 0 {
		return Entry{}, fmt.Errorf("%w: entry has no questions", domain.ErrInvalidKnowledge)
	}
	if len(answers) == 0 {
		return Entry{}, fmt.Errorf("%w: entry %q has no answers", domain.ErrInvalidKnowledge, questions[0])
	}
	return Entry{
		questions: append([]string(nil), questions...),
		answers:   append([]string(nil), answers...),
	}, nil
}

// Questions returns the entry's question variants.
func (e Entry) Questions() []string { return e.questions }

// Answers returns the entry's answer pool.
func (e Entry) Answers() []string { return e.answers }

// group is a flattened view of entries: question i belongs to entries[owner[i]].
type group struct {
	entries   []Entry
	questions []string
	owner     []int
}

func newGroup(entries []Entry) group {
	g := group{entries: entries}
	for i, e := range entries {
		for _, q := range e.questions {
			g.questions = append(g.questions, q)
			g.owner = append(g.owner, i)
		}
	}
	return g
}

// Slot names the answer synthesizers read from extracted templates.
const (
	SlotAmount   = "amount"
	SlotUnitFrom = "unitFrom"
	SlotUnitTo   = "unitTo"
	SlotTopic    = "topic"
)

// templateSet is a candidate set whose members are also extraction patterns.
type templateSet struct {
	questions []string
	templates []template.Template
}

// newTemplateSet parses raw templates. Each must carry every required slot.
func newTemplateSet(raw []string, required ...string) (templateSet, error) {
	ts := templateSet{
		questions: make([]string, 0, len(raw)),
		templates: make([]template.Template, 0, len(raw)),
	}
	for _, r := range raw {
		t, err := template.Parse(r)
		if err != nil {
			return templateSet{}, fmt.Errorf("%w: %w", domain.ErrInvalidKnowledge, err)
		}
		if !t.HasSlots() {
			return templateSet{}, fmt.Errorf("%w: template %q has no placeholders", domain.ErrInvalidKnowledge, r)
		}
		if missing := missingSlots(t.Slots(), required); len(missing) > 0 {
			return templateSet{}, fmt.Errorf("%w: template %q lacks {%s}",
				domain.ErrInvalidKnowledge, r, strings.Join(missing, "}, {"))
		}
		ts.questions = append(ts.questions, r)
		ts.templates = append(ts.templates, t)
	}
	return ts, nil
}

func missingSlots(have, required []string) []string {
	var missing []string
	for _, name := range required {
		if !slices.Contains(have, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Sources is the raw intent data a Base is built from.
type Sources struct {
	UnitConverter []string
	Wikipedia     []string
	Support       []Entry
	DomainChat    []Entry
	GeneralChat   []Entry
	Welcome       []string
	Fallback      []string
}

// Base is the read-only knowledge base. It is safe for concurrent use.
type Base struct {
	unitConverter templateSet
	wikipedia     templateSet
	groups        map[intent.Intent]group
	welcome       []string
	fallback      []string
	corpus        []string
}

// New validates sources and builds a Base.
func New(src Sources) (*Base, error) {
	unit, err := newTemplateSet(src.UnitConverter, SlotAmount, SlotUnitFrom, SlotUnitTo)
	if err != nil {
		return nil, fmt.Errorf("unit converter templates: %w", err)
	}
	wiki, err := newTemplateSet(src.Wikipedia, SlotTopic)
	if err != nil {
		return nil, fmt.Errorf("wikipedia templates: %w", err)
	}

	b := &Base{
		unitConverter: unit,
		wikipedia:     wiki,
		groups: map[intent.Intent]group{
			intent.Support:     newGroup(src.Support),
			intent.DomainChat:  newGroup(src.DomainChat),
			intent.GeneralChat: newGroup(src.GeneralChat),
		},
		welcome:  append([]string(nil), src.Welcome...),
		fallback: append([]string(nil), src.Fallback...),
	}

	for _, i := range []intent.Intent{intent.UnitConverter, intent.Wikipedia, intent.Support, intent.DomainChat, intent.GeneralChat} {
		if len(b.Candidates(i)) == 0 {
			return nil, fmt.Errorf("%w: no questions for intent %s", domain.ErrInvalidKnowledge, i)
		}
	}
	if len(b.welcome) == 0 {
		return nil, fmt.Errorf("%w: welcome pool is empty", domain.ErrInvalidKnowledge)
	}
	if len(b.fallback) == 0 {
		return nil, fmt.Errorf("%w: fallback pool is empty", domain.ErrInvalidKnowledge)
	}

	b.corpus = buildCorpus(
		wiki.questions,
		unit.questions,
		b.groups[intent.Support].questions,
		b.groups[intent.GeneralChat].questions,
		b.groups[intent.DomainChat].questions,
	)
	return b, nil
}

// buildCorpus concatenates the lists, keeps the first occurrence of each question and drops blanks.
func buildCorpus(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, q := range list {
			if strings.TrimSpace(q) == "" {
				continue
			}
			if _, ok := seen[q]; ok {
				continue
			}
			seen[q] = struct{}{}
			out = append(out, q)
		}
	}
	return out
}

// Candidates returns the question set matched for an intent. Callers must not modify it.
func (b *Base) Candidates(i intent.Intent) []string {
	switch i {
	case intent.UnitConverter:
		return b.unitConverter.questions
	case intent.Wikipedia:
		return b.wikipedia.questions
	}
	return b.groups[i].questions
}

// Template returns the parsed template at index idx of a unit converter or wikipedia candidate set.
func (b *Base) Template(i intent.Intent, idx int) (template.Template, bool) {
	var ts templateSet
	switch i {
	case intent.UnitConverter:
		ts = b.unitConverter
	case intent.Wikipedia:
		ts = b.wikipedia
	default:
		return template.Template{}, false
	}
	if idx < 0 || idx >= len(ts.templates) {
		return template.Template{}, false
	}
	return ts.templates[idx], true
}

// Answers returns the answer pool of the entry owning candidate idx of a chat intent.
func (b *Base) Answers(i intent.Intent, idx int) []string {
	g, ok := b.groups[i]
	if !ok || idx < 0 || idx >= len(g.owner) {
		return nil
	}
	return g.entries[g.owner[idx]].answers
}

// Welcome returns the welcome message pool.
func (b *Base) Welcome() []string { return b.welcome }

// Fallback returns the fallback message pool.
func (b *Base) Fallback() []string { return b.fallback }

// Corpus returns every known question, deduplicated and without blanks.
func (b *Base) Corpus() []string { return b.corpus }

var interrogativeRegex = regexp.MustCompile(`(?i)^(can|are|may|how|what|when|who|do|where|your|from|is|will|why)`)

// Humanize upper-cases the first letter of a question and terminates it with "?" when it
// starts with an interrogative word, otherwise with ".".
func Humanize(q string) string {
	if q == "" {
		return q
	}
	r, size := utf8.DecodeRuneInString(q)
	out := string(unicode.ToUpper(r)) + q[size:]
	if interrogativeRegex.MatchString(q) {
		return out + "?"
	}
	return out + "."
}
