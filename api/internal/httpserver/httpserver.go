// Package httpserver — HTTP-вход бота: healthz и вебхук телеграма.
package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Pinger — *sql.DB или любая другая проверяемая зависимость.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Options struct {
	// DB nil — журнал ответов выключен.
	DB Pinger
	// Sessions — число активных сессий, nil — не показывать.
	Sessions func() int
	Log      *slog.Logger

	// WebhookPath пустой — polling, маршрут вебхука не регистрируется.
	WebhookPath string
	OnUpdate    func(tgbotapi.Update)

	HealthTimeout time.Duration
}

// NewRouter собирает chi-роутер.
func NewRouter(o Options) chi.Router {
	if o.Log == nil {
		o.Log = slog.Default()
	}
	if o.HealthTimeout <= 0 {
		o.HealthTimeout = 2 * time.Second
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/healthz", o.health)
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("riseup telegram bot"))
	})
	if o.WebhookPath != "" && o.OnUpdate != nil {
		r.Post(o.WebhookPath, o.webhook)
	}
	return r
}

func (o Options) health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"api": "ok", "database": "disabled"}
	status := map[string]any{"status": "healthy", "checks": checks}
	code := http.StatusOK

	if o.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), o.HealthTimeout)
		defer cancel()
		if err := o.DB.PingContext(ctx); err != nil {
			o.Log.Error("health check failed", "error", err)
			status["status"] = "degraded"
			checks["database"] = "unreachable"
			code = http.StatusServiceUnavailable
		} else {
			checks["database"] = "ok"
		}
	}
	if o.Sessions != nil {
		status["sessions"] = o.Sessions()
	}
	writeJSON(w, code, status)
}

// webhook отвечает 200 сразу, апдейт обрабатывается асинхронно в OnUpdate.
func (o Options) webhook(w http.ResponseWriter, r *http.Request) {
	var upd tgbotapi.Update
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&upd); err != nil {
		o.Log.Warn("webhook: bad update", "error", err, "request_id", chiMiddleware.GetReqID(r.Context()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid update"})
		return
	}
	o.OnUpdate(upd)
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// ShortHash — стабильный FNV-1a хэш токена для секретного пути вебхука.
func ShortHash(s string) string {
	h := uint64(1469598103934665603)
	const prime = 1099511628211
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	const hexdigits = "0123456789abcdef"
	out := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		out[i] = hexdigits[h&0xF]
		h >>= 4
	}
	return string(out)
}
