package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-chatbot/internal/metrics"
	"github.com/riskibarqy/football-chatbot/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	corsAllowedOrigins []string,
	cacheAdminToken string,
	recorder *metrics.Recorder,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, recorder)
	registerChatRoutes(mux, handler)
	registerFootballRoutes(mux, handler)
	registerCacheRoutes(mux, handler, cacheAdminToken)

	// Metrics sit directly on the mux so the matched pattern is visible after dispatch.
	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, recorder.Middleware(mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
