package chat

import (
	"fmt"
	"log/slog"

	"healthai/internal/lookup"
	"healthai/internal/models"
)

const transcriptKey = "chat_transcript"

// Session is the subset of the HTTP session the transcript is stored in.
type Session interface {
	Get(key any) any
	Set(key, value any)
	Delete(key any)
}

// Exchange is the pair of turns produced by one user message.
type Exchange struct {
	User      models.ChatTurn
	Assistant models.ChatTurn
	Topic     string
	Matched   bool
}

// Service reads and writes session transcripts.
type Service struct {
	maxTurns int
}

// NewService creates a chat service capping transcripts at maxTurns.
func NewService(maxTurns int) *Service {
	if maxTurns < 2 {
		maxTurns = DefaultMaxTurns
	}
	return &Service{maxTurns: maxTurns}
}

// Load returns the session transcript, starting a new one if none is stored.
// A stored transcript that no longer decodes is discarded.
func (s *Service) Load(sess Session) *Transcript {
	raw, ok := sess.Get(transcriptKey).(string)
	if !ok || raw == "" {
		return NewTranscript(s.maxTurns)
	}
	t, err := decodeTranscript([]byte(raw), s.maxTurns)
	if err != nil {
		slog.Warn("discarding unreadable chat transcript", "error", err)
		s.Reset(sess)
		return NewTranscript(s.maxTurns)
	}
	return t
}

// Save stores the transcript in the session.
func (s *Service) Save(sess Session, t *Transcript) error {
	data, err := t.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}
	sess.Set(transcriptKey, string(data))
	return nil
}

// Reset discards the session transcript.
func (s *Service) Reset(sess Session) {
	sess.Delete(transcriptKey)
}

// Send appends the user message and the canned reply to the session
// transcript. Callers reject empty text before calling Send.
func (s *Service) Send(sess Session, text string) (Exchange, error) {
	t := s.Load(sess)

	reply, topic, matched := lookup.GenerateChatReplyMatch(text)
	ex := Exchange{
		User:    t.Append(models.RoleUser, text),
		Topic:   topic,
		Matched: matched,
	}
	ex.Assistant = t.Append(models.RoleAssistant, reply)

	if err := s.Save(sess, t); err != nil {
		return Exchange{}, err
	}
	return ex, nil
}
