package telegram

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"riseup-bot/api/internal/assistant"
	"riseup-bot/api/internal/backend"
	"riseup-bot/api/internal/session"
	"riseup-bot/api/internal/store"
)

// AttemptLog — журнал проверенных ответов. nil в Router — журнал выключен.
type AttemptLog interface {
	Insert(ctx context.Context, a store.Attempt) error
	Summary(ctx context.Context, telegramID int64) (store.Summary, error)
}

type Router struct {
	Bot      Messenger
	API      *backend.Client
	Sessions session.Store
	AI       assistant.Asker
	Log      *slog.Logger

	Attempts  AttemptLog
	DonateURL string

	states *stateStore
}

func NewRouter(bot Messenger, api *backend.Client, sessions session.Store, ai assistant.Asker, log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	return &Router{
		Bot:       bot,
		API:       api,
		Sessions:  sessions,
		AI:        ai,
		Log:       log,
		DonateURL: defaultDonateURL,
		states:    newStateStore(),
	}
}

// UserKey — ключ очереди Dispatcher для апдейта: id пользователя, иначе чата.
func UserKey(upd tgbotapi.Update) int64 {
	switch {
	case upd.Message != nil:
		return userID(upd.Message)
	case upd.CallbackQuery != nil && upd.CallbackQuery.From != nil:
		return upd.CallbackQuery.From.ID
	}
	return 0
}

func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.CallbackQuery != nil {
		r.handleCallback(ctx, upd.CallbackQuery)
		return
	}
	msg := upd.Message
	if msg == nil {
		return
	}
	if msg.IsCommand() {
		r.handleCommand(ctx, msg)
		return
	}
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	uid := userID(msg)
	switch st := r.states.get(uid); st.Step {
	case stateAwaitEmail:
		r.onEmail(msg, text)
		return
	case stateAwaitPassword:
		r.onPassword(ctx, msg, st, text)
		return
	case stateAwaitAnswer:
		r.onAnswer(ctx, msg, st.TaskID)
		return
	}

	if id, ok := repliedTaskID(msg); ok {
		r.onReplyAnswer(ctx, msg, id)
		return
	}
	if r.handleCourseText(msg.Chat.ID, text) {
		return
	}
	if isGroup(msg.Chat) && repliesToBot(msg) {
		r.askAI(ctx, msg, text)
	}
}

func (r *Router) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	cid := msg.Chat.ID
	switch msg.Command() {
	case "start":
		r.onStart(msg)
	case "help":
		r.send(cid, msgHelp)
	case "course":
		r.sendKeyboard(cid, msgCourseMenu, mainKeyboard())
	case "task":
		r.onTaskList(ctx, msg)
	case "cancel":
		r.states.reset(userID(msg))
		r.send(cid, msgCancelled)
	case "ai":
		r.onAI(ctx, msg)
	case "hissa":
		r.sendKeyboard(cid, msgDonate, donateKeyboard(r.DonateURL))
	case "stats":
		r.onStats(ctx, msg)
	default:
		r.send(cid, msgUnknownCommand)
	}
}

func (r *Router) send(chatID int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		r.Log.Warn("send failed", "chat_id", chatID, "error", err)
	}
}

func (r *Router) sendKeyboard(chatID int64, text string, kb any) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ReplyMarkup = kb
	if _, err := r.Bot.Send(m); err != nil {
		r.Log.Warn("send failed", "chat_id", chatID, "error", err)
	}
}

// sendMarkdown шлёт Markdown, при ошибке разметки — тот же текст без неё.
func (r *Router) sendMarkdown(chatID int64, text string) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ParseMode = tgbotapi.ModeMarkdown
	_, err := r.Bot.Send(m)
	if err == nil {
		return
	}
	r.Log.Debug("markdown send failed, retry plain", "chat_id", chatID, "error", err)
	r.send(chatID, text)
}

func userID(msg *tgbotapi.Message) int64 {
	if msg.From != nil {
		return msg.From.ID
	}
	return msg.Chat.ID
}

func isGroup(c *tgbotapi.Chat) bool {
	return c != nil && (c.IsGroup() || c.IsSuperGroup())
}

func repliesToBot(msg *tgbotapi.Message) bool {
	rt := msg.ReplyToMessage
	return rt != nil && rt.From != nil && rt.From.IsBot
}
