package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthdesk/carebot/internal/models"
)

func TestPrefixMatch(t *testing.T) {
	p, err := newPrefixMatch([]string{"what is", "explain", "define"})
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "exact prefix", text: "what is cough?", want: true},
		{name: "leading whitespace", text: "   define hypertension", want: true},
		{name: "explain prefix", text: "explain fever.", want: true},
		{name: "prefix not at start", text: "please explain fever", want: false},
		{name: "prefix embedded in word", text: "explained by my doctor", want: false},
		{name: "no prefix", text: "i have a cough", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := p.match(tt.text)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestNewPrefixMatch_Validation(t *testing.T) {
	_, err := newPrefixMatch(nil)
	assert.Error(t, err)

	_, err = newPrefixMatch([]string{"what is", ""})
	assert.Error(t, err)
}

func TestPhraseAndCategory(t *testing.T) {
	selfRef, err := NewCategory("self_reference", []string{"i have", "i am", "i'm", "i feel"})
	require.NoError(t, err)
	symptoms, err := NewCategory("symptom", []string{"fever", "cough", "headache"})
	require.NoError(t, err)

	p := phraseAndCategory{phrases: selfRef, terms: symptoms}

	tests := []struct {
		name     string
		text     string
		wantTerm string
		wantOK   bool
	}{
		{
			name:     "phrase and symptom present",
			text:     "i have a fever and cough",
			wantTerm: "fever",
			wantOK:   true,
		},
		{
			name:   "symptom without self reference",
			text:   "a fever lasts a few days",
			wantOK: false,
		},
		{
			name:   "self reference without symptom",
			text:   "i have a question",
			wantOK: false,
		},
		{
			name:     "contraction phrase",
			text:     "i'm fighting a headache",
			wantTerm: "headache",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, ok := p.match(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTerm, term)
		})
	}
}

func TestAlwaysMatch(t *testing.T) {
	term, ok := alwaysMatch{}.match("anything at all")
	assert.True(t, ok)
	assert.Empty(t, term)

	_, ok = alwaysMatch{}.match("")
	assert.True(t, ok)
}

func TestBuildRules_OrderAndActions(t *testing.T) {
	rules, err := buildRules(DefaultConfig())
	require.NoError(t, err)
	require.Len(t, rules, 5)

	wantIntents := []models.Intent{
		models.IntentDefinition,
		models.IntentSymptomReport,
		models.IntentAppointment,
		models.IntentMedication,
		models.IntentGeneral,
	}
	for i, intent := range wantIntents {
		assert.Equal(t, intent, rules[i].intent)
	}

	assert.Equal(t, actionGenerate, rules[0].action)
	assert.Equal(t, actionGenerateWithDisclaimer, rules[1].action)
	assert.Equal(t, actionStatic, rules[2].action)
	assert.Equal(t, actionStatic, rules[3].action)
	assert.Equal(t, actionGenerate, rules[4].action)

	// The fallback must always match so every non-empty input fires a rule.
	_, ok := rules[4].predicate.match("zzz")
	assert.True(t, ok)
}

func TestBuildRules_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SymptomKeywords = nil

	_, err := buildRules(cfg)
	assert.Error(t, err)
}
