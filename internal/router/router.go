package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/healthdesk/carebot/internal/generator"
	"github.com/healthdesk/carebot/internal/models"
	"go.uber.org/zap"
)

// ErrGenerationFailed wraps generator errors surfaced through Route.
var ErrGenerationFailed = errors.New("generation failed")

// Config holds the rule table inputs and reply literals. It is fixed at
// construction; the router never mutates it at request time.
type Config struct {
	DefinitionPrefixes   []string
	SelfReferencePhrases []string
	SymptomKeywords      []string
	CareProviderKeywords []string
	MedicationKeywords   []string

	EmptyInputReply  string
	AppointmentReply string
	MedicationReply  string
	FailureReply     string
	Disclaimer       string
	SymptomPrompt    string
}

// DefaultConfig returns the production rule table.
func DefaultConfig() Config {
	return Config{
		DefinitionPrefixes:   []string{"what is", "explain", "define"},
		SelfReferencePhrases: []string{"i have", "i am", "i'm", "i feel"},
		SymptomKeywords:      []string{"symptom", "pain", "ache", "fever", "cough", "cold", "headache", "nausea"},
		CareProviderKeywords: []string{"appointment", "doctor", "physician", "clinic"},
		MedicationKeywords:   []string{"medication", "prescription", "drugs", "pills"},

		EmptyInputReply:  emptyInputReply,
		AppointmentReply: appointmentReply,
		MedicationReply:  medicationReply,
		FailureReply:     failureReply,
		Disclaimer:       disclaimer,
		SymptomPrompt:    symptomPromptFormat,
	}
}

// Router classifies a free-text query against an ordered rule table and
// produces the reply, calling the generator at most once per request.
type Router struct {
	cfg    Config
	rules  []rule
	gen    generator.Generator
	logger *zap.Logger
}

func New(cfg Config, gen generator.Generator, logger *zap.Logger) (*Router, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator is required")
	}
	rules, err := buildRules(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid rule configuration: %w", err)
	}
	return &Router{
		cfg:    cfg,
		rules:  rules,
		gen:    gen,
		logger: logger,
	}, nil
}

// Route classifies raw input and produces the reply. Request-scoped
// failures come back as a user-visible Reply; when generation fails the
// returned error is non-nil as well so callers can log the cause.
func (r *Router) Route(ctx context.Context, raw string) (models.Reply, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.Reply{Text: r.cfg.EmptyInputReply, Intent: models.IntentEmpty}, nil
	}

	normalized := strings.ToLower(trimmed)
	for _, rl := range r.rules {
		term, ok := rl.predicate.match(normalized)
		if !ok {
			continue
		}
		return r.apply(ctx, rl, trimmed, term)
	}

	// Unreachable: buildRules always ends with an always-match fallback.
	return models.Reply{}, fmt.Errorf("no rule matched input")
}

func (r *Router) apply(ctx context.Context, rl rule, trimmed, term string) (models.Reply, error) {
	switch rl.action {
	case actionStatic:
		return models.Reply{Text: rl.static, Intent: rl.intent}, nil

	case actionGenerateWithDisclaimer:
		prompt := fmt.Sprintf(r.cfg.SymptomPrompt, term)
		text, err := r.gen.Generate(ctx, prompt)
		if err != nil {
			return r.failure(rl.intent, err)
		}
		return models.Reply{
			Text:      text + "\n\n" + r.cfg.Disclaimer,
			Intent:    rl.intent,
			Term:      term,
			Generated: true,
		}, nil

	default:
		text, err := r.gen.Generate(ctx, trimmed)
		if err != nil {
			return r.failure(rl.intent, err)
		}
		return models.Reply{Text: text, Intent: rl.intent, Generated: true}, nil
	}
}

func (r *Router) failure(intent models.Intent, err error) (models.Reply, error) {
	r.logger.Error("Failed to generate reply",
		zap.Error(err),
		zap.String("intent", string(intent)))
	return models.Reply{Text: r.cfg.FailureReply, Intent: intent},
		fmt.Errorf("%w: %v", ErrGenerationFailed, err)
}
