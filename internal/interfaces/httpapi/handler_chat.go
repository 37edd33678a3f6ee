package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/football-chatbot/internal/usecase"
)

type chatRequest struct {
	Question string `json:"question" validate:"required,max=500"`
	LeagueID int    `json:"league_id" validate:"omitempty,gt=0"`
}

type chatResponseDTO struct {
	Response     string `json:"response"`
	Intent       string `json:"intent"`
	Command      string `json:"command,omitempty"`
	Timestamp    string `json:"timestamp"`
	RequestsUsed int    `json:"requests_used"`
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Chat")
	defer span.End()

	var req chatRequest
	if err := decodeJSONBody(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		writeError(ctx, w, fmt.Errorf("%w: question is required", usecase.ErrInvalidInput))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	reply := h.chatService.Answer(ctx, usecase.ChatInput{
		Question: req.Question,
		LeagueID: req.LeagueID,
	})

	writeSuccess(ctx, w, http.StatusOK, chatResponseDTO{
		Response:     reply.Response,
		Intent:       string(reply.Intent),
		Command:      string(reply.Command),
		Timestamp:    reply.Timestamp.Format(time.RFC3339),
		RequestsUsed: reply.RequestsUsed,
	})
}
