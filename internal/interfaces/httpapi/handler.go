package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/football-chatbot/internal/platform/logging"
	"github.com/riskibarqy/football-chatbot/internal/usecase"
)

type Handler struct {
	chatService      *usecase.ChatService
	footballService  *usecase.FootballService
	cacheWarmService *usecase.CacheWarmService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	chatService *usecase.ChatService,
	footballService *usecase.FootballService,
	cacheWarmService *usecase.CacheWarmService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		chatService:      chatService,
		footballService:  footballService,
		cacheWarmService: cacheWarmService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestsUsed is echoed on every data response so the frontend can show the budget.
func (h *Handler) requestsUsed() int {
	if h.chatService == nil {
		return 0
	}
	return h.chatService.RequestsUsed()
}
