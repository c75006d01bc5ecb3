package router

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/healthdesk/carebot/internal/models"
)

// actionKind selects what a matched rule does with the query.
type actionKind int

const (
	// actionGenerate forwards the trimmed input to the generator as-is.
	actionGenerate actionKind = iota
	// actionGenerateWithDisclaimer builds a derived prompt from the
	// extracted term and appends the disclaimer to the generated text.
	actionGenerateWithDisclaimer
	// actionStatic returns a fixed literal without any external call.
	actionStatic
)

// predicate reports whether a rule applies to normalized text and may
// capture a term (the matched symptom keyword).
type predicate interface {
	match(text string) (term string, ok bool)
}

// prefixMatch fires when the text starts with one of the configured
// prefixes, allowing leading whitespace.
type prefixMatch struct {
	pattern *regexp.Regexp
}

func newPrefixMatch(prefixes []string) (prefixMatch, error) {
	if len(prefixes) == 0 {
		return prefixMatch{}, fmt.Errorf("prefix list is empty")
	}
	quoted := make([]string, len(prefixes))
	for i, p := range prefixes {
		if strings.TrimSpace(p) == "" {
			return prefixMatch{}, fmt.Errorf("prefix list contains an empty entry")
		}
		quoted[i] = regexp.QuoteMeta(p)
	}
	pattern, err := regexp.Compile(`^\s*(` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return prefixMatch{}, err
	}
	return prefixMatch{pattern: pattern}, nil
}

func (p prefixMatch) match(text string) (string, bool) {
	return "", p.pattern.MatchString(text)
}

// phraseAndCategory fires only when a phrase from one category and a
// keyword from another are both present; the keyword is the captured
// term.
type phraseAndCategory struct {
	phrases Category
	terms   Category
}

func (p phraseAndCategory) match(text string) (string, bool) {
	if !p.phrases.Contains(text) {
		return "", false
	}
	return p.terms.Extract(text)
}

// categoryMatch fires on any keyword from a single category.
type categoryMatch struct {
	category Category
}

func (p categoryMatch) match(text string) (string, bool) {
	return "", p.category.Contains(text)
}

// alwaysMatch is the fallback predicate; it must be last in the table.
type alwaysMatch struct{}

func (alwaysMatch) match(string) (string, bool) { return "", true }

// rule ties a predicate to its action. Rules are evaluated in slice
// order and the first match wins.
type rule struct {
	intent    models.Intent
	predicate predicate
	action    actionKind
	static    string
}

func buildRules(cfg Config) ([]rule, error) {
	definitions, err := newPrefixMatch(cfg.DefinitionPrefixes)
	if err != nil {
		return nil, fmt.Errorf("definition prefixes: %w", err)
	}
	selfRef, err := NewCategory("self_reference", cfg.SelfReferencePhrases)
	if err != nil {
		return nil, err
	}
	symptoms, err := NewCategory("symptom", cfg.SymptomKeywords)
	if err != nil {
		return nil, err
	}
	providers, err := NewCategory("care_provider", cfg.CareProviderKeywords)
	if err != nil {
		return nil, err
	}
	medications, err := NewCategory("medication", cfg.MedicationKeywords)
	if err != nil {
		return nil, err
	}

	return []rule{
		{intent: models.IntentDefinition, predicate: definitions, action: actionGenerate},
		{intent: models.IntentSymptomReport, predicate: phraseAndCategory{phrases: selfRef, terms: symptoms}, action: actionGenerateWithDisclaimer},
		{intent: models.IntentAppointment, predicate: categoryMatch{category: providers}, action: actionStatic, static: cfg.AppointmentReply},
		{intent: models.IntentMedication, predicate: categoryMatch{category: medications}, action: actionStatic, static: cfg.MedicationReply},
		{intent: models.IntentGeneral, predicate: alwaysMatch{}, action: actionGenerate},
	}, nil
}
