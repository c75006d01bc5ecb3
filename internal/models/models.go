package models

import "time"

// Intent identifies which routing rule handled a query.
type Intent string

const (
	IntentDefinition    Intent = "definition"
	IntentSymptomReport Intent = "symptom_report"
	IntentAppointment   Intent = "appointment"
	IntentMedication    Intent = "medication"
	IntentGeneral       Intent = "general"
	IntentEmpty         Intent = "empty"
)

// Reply is the final answer produced for a single query.
type Reply struct {
	Text      string `json:"text"`
	Intent    Intent `json:"intent"`
	Term      string `json:"term,omitempty"`
	Generated bool   `json:"generated"`
}

// Query represents a routed user query with its outcome
type Query struct {
	ID        string    `json:"id"`
	ChatID    int64     `json:"chat_id"`
	Input     string    `json:"input"`
	Intent    Intent    `json:"intent"`
	Term      string    `json:"term,omitempty"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}
