// Package chat keeps the per-session chat transcript and produces canned
// assistant replies for user messages.
package chat

import (
	"encoding/json"
	"fmt"

	"healthai/internal/lookup"
	"healthai/internal/models"
)

// DefaultMaxTurns caps a transcript when no limit is configured.
const DefaultMaxTurns = 200

// Transcript is an ordered, append-only list of chat turns. The first turn is
// always the assistant greeting.
type Transcript struct {
	turns    []models.ChatTurn
	maxTurns int
}

// NewTranscript returns a transcript holding only the greeting.
func NewTranscript(maxTurns int) *Transcript {
	if maxTurns < 2 {
		maxTurns = DefaultMaxTurns
	}
	return &Transcript{
		turns:    []models.ChatTurn{models.NewChatTurn(models.RoleAssistant, lookup.Greeting())},
		maxTurns: maxTurns,
	}
}

// Append adds a turn and returns it. Once the cap is reached the oldest turns
// after the greeting are dropped.
func (t *Transcript) Append(role, text string) models.ChatTurn {
	turn := models.NewChatTurn(role, text)
	t.turns = append(t.turns, turn)
	if over := len(t.turns) - t.maxTurns; over > 0 {
		t.turns = append(t.turns[:1], t.turns[1+over:]...)
	}
	return turn
}

// Turns returns a copy of the turns, oldest first.
func (t *Transcript) Turns() []models.ChatTurn {
	out := make([]models.ChatTurn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of turns.
func (t *Transcript) Len() int {
	return len(t.turns)
}

// MarshalJSON encodes the turns.
func (t *Transcript) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.turns)
}

// decodeTranscript restores a transcript encoded with MarshalJSON and applies
// the current cap, keeping the greeting.
func decodeTranscript(data []byte, maxTurns int) (*Transcript, error) {
	var turns []models.ChatTurn
	if err := json.Unmarshal(data, &turns); err != nil {
		return nil, fmt.Errorf("failed to decode transcript: %w", err)
	}
	t := NewTranscript(maxTurns)
	if len(turns) > 0 {
		if over := len(turns) - t.maxTurns; over > 0 {
			turns = append(turns[:1], turns[1+over:]...)
		}
		t.turns = turns
	}
	return t, nil
}
