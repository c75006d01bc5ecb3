package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory_Validation(t *testing.T) {
	tests := []struct {
		name     string
		catName  string
		keywords []string
		wantErr  bool
	}{
		{
			name:     "valid category",
			catName:  "symptom",
			keywords: []string{"fever", "cough"},
			wantErr:  false,
		},
		{
			name:     "empty name",
			catName:  "",
			keywords: []string{"fever"},
			wantErr:  true,
		},
		{
			name:     "no keywords",
			catName:  "symptom",
			keywords: nil,
			wantErr:  true,
		},
		{
			name:     "blank keyword",
			catName:  "symptom",
			keywords: []string{"fever", "  "},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCategory(tt.catName, tt.keywords)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategory_Extract(t *testing.T) {
	symptoms, err := NewCategory("symptom",
		[]string{"symptom", "pain", "ache", "fever", "cough", "cold", "headache", "nausea"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		text     string
		wantTerm string
		wantOK   bool
	}{
		{
			name:     "single keyword",
			text:     "i have a fever",
			wantTerm: "fever",
			wantOK:   true,
		},
		{
			name:     "leftmost keyword wins",
			text:     "i have a fever and cough",
			wantTerm: "fever",
			wantOK:   true,
		},
		{
			name:     "text position beats declaration order",
			text:     "i have a cough and fever",
			wantTerm: "cough",
			wantOK:   true,
		},
		{
			name:   "keyword inside another word does not match",
			text:   "tell me about the campaign",
			wantOK: false,
		},
		{
			name:     "word boundary on both sides",
			text:     "my headache is back",
			wantTerm: "headache",
			wantOK:   true,
		},
		{
			name:   "no keywords present",
			text:   "hello there",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, ok := symptoms.Extract(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTerm, term)
		})
	}
}

func TestCategory_ExtractDeterministic(t *testing.T) {
	symptoms, err := NewCategory("symptom", []string{"fever", "cough"})
	require.NoError(t, err)

	first, ok := symptoms.Extract("a fever and a cough")
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		term, ok := symptoms.Extract("a fever and a cough")
		assert.True(t, ok)
		assert.Equal(t, first, term)
	}
}

func TestCategory_Contains(t *testing.T) {
	providers, err := NewCategory("care_provider",
		[]string{"appointment", "doctor", "physician", "clinic"})
	require.NoError(t, err)

	assert.True(t, providers.Contains("how do i book an appointment?"))
	assert.True(t, providers.Contains("is there a clinic nearby"))
	assert.False(t, providers.Contains("my doctorate thesis"))
	assert.False(t, providers.Contains("hello"))
}
