package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"riseup-bot/api/internal/backend"
	"riseup-bot/api/internal/session"
	"riseup-bot/api/internal/store"
)

// fakeBot — Messenger, который только запоминает исходящие.
type fakeBot struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	nextID   int

	failMarkdown bool
	failEdit     bool
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch m := c.(type) {
	case tgbotapi.MessageConfig:
		if f.failMarkdown && m.ParseMode != "" {
			return tgbotapi.Message{}, errors.New("Bad Request: can't parse entities")
		}
	case tgbotapi.EditMessageTextConfig:
		if f.failEdit {
			return tgbotapi.Message{}, errors.New("Bad Request: message to edit not found")
		}
	}
	f.sent = append(f.sent, c)
	f.nextID++
	return tgbotapi.Message{MessageID: f.nextID}, nil
}

func (f *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true, Result: json.RawMessage("true")}, nil
}

// texts — тексты отправленных и отредактированных сообщений по порядку.
func (f *fakeBot) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.sent {
		switch m := c.(type) {
		case tgbotapi.MessageConfig:
			out = append(out, m.Text)
		case tgbotapi.EditMessageTextConfig:
			out = append(out, m.Text)
		}
	}
	return out
}

func (f *fakeBot) last() string {
	t := f.texts()
	if len(t) == 0 {
		return ""
	}
	return t[len(t)-1]
}

func (f *fakeBot) messages() []tgbotapi.MessageConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tgbotapi.MessageConfig
	for _, c := range f.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, m)
		}
	}
	return out
}

func (f *fakeBot) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent, f.requests = nil, nil
}

// fakeAPI — бэкенд платформы на httptest.
type fakeAPI struct {
	mu        sync.Mutex
	linked    []int64
	stats     []bool
	statsCode int
}

const (
	goodToken    = "tok"
	expiredToken = "expired"
)

const mcqTaskJSON = `{"id":7,"title":"Qaysi biri UI?","type":"mcq","category":"web",
"scheduled_time":"2025-12-06T16:30:00Z",
"options":[{"text":"Backend","correct":false},{"text":"Frontend","correct":true}]}`

func (a *fakeAPI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, code int, body string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = io.WriteString(w, body)
	}
	authed := func(w http.ResponseWriter, r *http.Request) bool {
		switch r.Header.Get("Authorization") {
		case "Bearer " + goodToken:
			return true
		default:
			writeJSON(w, http.StatusUnauthorized, `{"detail":"token not valid"}`)
			return false
		}
	}

	mux.HandleFunc("POST /auth/login/", func(w http.ResponseWriter, r *http.Request) {
		var in struct{ Email, Password string }
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("login body: %v", err)
		}
		if in.Email != "ali@riseup.uz" || in.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, `{"detail":"bad credentials"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"access":"tok","refresh":"ref","username":"ali"}`)
	})
	mux.HandleFunc("POST /auth/link-telegram/", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		var in struct {
			TelegramID int64 `json:"telegram_id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		a.mu.Lock()
		a.linked = append(a.linked, in.TelegramID)
		a.mu.Unlock()
		writeJSON(w, http.StatusOK, `{"ok":true}`)
	})
	mux.HandleFunc("GET /tasks/", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, `[{"id":7,"title":"Qaysi biri UI?"},{"id":9,"title":"Python freymvorklari haqida savol"}]`)
	})
	mux.HandleFunc("GET /tasks/{id}/", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		if r.PathValue("id") != "7" {
			writeJSON(w, http.StatusNotFound, `{"detail":"not found"}`)
			return
		}
		writeJSON(w, http.StatusOK, mcqTaskJSON)
	})
	mux.HandleFunc("POST /stats/update/", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		var in struct{ Correct bool }
		_ = json.NewDecoder(r.Body).Decode(&in)
		a.mu.Lock()
		a.stats = append(a.stats, in.Correct)
		code := a.statsCode
		a.mu.Unlock()
		if code == 0 {
			code = http.StatusOK
		}
		writeJSON(w, code, `{}`)
	})
	return mux
}

func (a *fakeAPI) statsSeen() []bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]bool(nil), a.stats...)
}

type fakeAsker struct {
	mu     sync.Mutex
	asked  []string
	answer string
}

func (f *fakeAsker) Ask(_ context.Context, q string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.asked = append(f.asked, q)
	return f.answer
}

type fakeAttempts struct {
	mu   sync.Mutex
	rows []store.Attempt
	err  error
}

func (f *fakeAttempts) Insert(_ context.Context, a store.Attempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, a)
	return f.err
}

func (f *fakeAttempts) Summary(_ context.Context, id int64) (store.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var s store.Summary
	for _, a := range f.rows {
		if a.TelegramID != id {
			continue
		}
		s.Total++
		if a.Correct {
			s.Correct++
		}
		s.LastAt = time.Date(2025, 12, 6, 16, 30, 0, 0, time.UTC)
	}
	return s, f.err
}

type harness struct {
	r        *Router
	bot      *fakeBot
	api      *fakeAPI
	ai       *fakeAsker
	sessions *session.Memory
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler(t))
	t.Cleanup(srv.Close)
	pool := backend.NewPool(2*time.Second, 4)
	t.Cleanup(pool.Close)

	h := &harness{
		bot:      &fakeBot{},
		api:      api,
		ai:       &fakeAsker{answer: "Javob"},
		sessions: session.NewMemory(),
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h.r = NewRouter(h.bot, backend.New(srv.URL, pool), h.sessions, h.ai, log)
	return h
}

func (h *harness) login(uid int64, token string) {
	h.sessions.Put(uid, session.Session{Access: token, Username: "ali"})
}

var msgSeq int

func privateMsg(uid int64, text string) *tgbotapi.Message {
	msgSeq++
	m := &tgbotapi.Message{
		MessageID: msgSeq,
		From:      &tgbotapi.User{ID: uid, FirstName: "Ali"},
		Chat:      &tgbotapi.Chat{ID: uid, Type: "private"},
		Text:      text,
	}
	if strings.HasPrefix(text, "/") {
		cmd := strings.Fields(text)[0]
		m.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(cmd)}}
	}
	return m
}

func (h *harness) say(uid int64, text string) {
	h.r.HandleUpdate(context.Background(), tgbotapi.Update{Message: privateMsg(uid, text)})
}

func (h *harness) press(uid int64, data string) {
	h.r.HandleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb1",
		From:    &tgbotapi.User{ID: uid},
		Message: &tgbotapi.Message{MessageID: 100, Chat: &tgbotapi.Chat{ID: uid, Type: "private"}},
		Data:    data,
	}})
}
