package api

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"healthai/internal/chat"
	"healthai/internal/models"
	"healthai/internal/validation"
)

// ChatHandler serves the session-scoped chat transcript.
type ChatHandler struct {
	svc      *chat.Service
	recorder Recorder
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(svc *chat.Service, recorder Recorder) *ChatHandler {
	return &ChatHandler{svc: svc, recorder: recorder}
}

// Send appends the user's message and the canned reply to the transcript
// and returns both turns.
func (h *ChatHandler) Send(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return jsonError(c, fiber.StatusInternalServerError, "session unavailable")
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	text := strings.TrimSpace(body.Text)
	if valid, msg := validation.ValidateQuery(text); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	ex, err := h.svc.Send(sess, text)
	if err != nil {
		slog.Error("failed to update chat transcript", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to update transcript")
	}
	h.recorder.Record(models.OperationChat, ex.Topic, ex.Matched)

	return jsonSuccess(c, models.ChatReplyResponse{
		UserTurn:      ex.User,
		AssistantTurn: ex.Assistant,
		Topic:         ex.Topic,
	})
}

// Transcript returns the session transcript.
func (h *ChatHandler) Transcript(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return jsonError(c, fiber.StatusInternalServerError, "session unavailable")
	}

	t := h.svc.Load(sess)

	return jsonSuccess(c, models.TranscriptResponse{Turns: t.Turns()})
}

// Reset clears the transcript back to the greeting.
func (h *ChatHandler) Reset(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return jsonError(c, fiber.StatusInternalServerError, "session unavailable")
	}

	h.svc.Reset(sess)
	t := h.svc.Load(sess)

	return jsonSuccess(c, models.TranscriptResponse{Turns: t.Turns()})
}
