package telegram

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"riseup-bot/api/internal/backend"
	"riseup-bot/api/internal/quiz"
	"riseup-bot/api/internal/session"
	"riseup-bot/api/internal/store"
)

const maxListed = 10

var reTaskMarker = regexp.MustCompile(`Task #(\d+)`)

func (r *Router) onTaskList(ctx context.Context, msg *tgbotapi.Message) {
	uid, cid := userID(msg), msg.Chat.ID
	r.states.reset(uid)

	s, ok := r.Sessions.Get(uid)
	if !ok {
		r.send(cid, msgLoginFirst)
		return
	}
	tasks, err := r.API.Tasks(ctx, s.Access)
	if err != nil {
		r.reportAPIError(cid, uid, err, msgTasksFailed)
		return
	}
	if len(tasks) == 0 {
		r.send(cid, msgNoTasks)
		return
	}
	r.sendKeyboard(cid, fmt.Sprintf(msgTasksHeader, len(tasks)), taskListKeyboard(tasks, maxListed))
}

// onTaskSelected показывает карточку задания вместо списка и ждёт ответ.
func (r *Router) onTaskSelected(ctx context.Context, cb *tgbotapi.CallbackQuery, id int) {
	uid, cid := cb.From.ID, cb.Message.Chat.ID

	s, ok := r.Sessions.Get(uid)
	if !ok {
		r.send(cid, msgLoginFirstShort)
		return
	}
	t, err := r.API.Task(ctx, s.Access, id)
	if err != nil {
		r.reportAPIError(cid, uid, err, msgTaskFailed)
		return
	}

	text := quiz.FormatPrompt(t)
	if _, err := r.Bot.Send(tgbotapi.NewEditMessageText(cid, cb.Message.MessageID, text)); err != nil {
		r.Log.Debug("edit task list failed, send new", "chat_id", cid, "error", err)
		r.send(cid, text)
	}
	r.states.set(uid, convState{Step: stateAwaitAnswer, TaskID: id})
}

// onAnswer проверяет ответ на выбранное задание. После — всегда idle.
func (r *Router) onAnswer(ctx context.Context, msg *tgbotapi.Message, taskID int) {
	uid, cid := userID(msg), msg.Chat.ID
	defer r.states.reset(uid)

	s, ok := r.Sessions.Get(uid)
	if !ok {
		r.send(cid, msgNoSession)
		return
	}
	if taskID <= 0 {
		r.send(cid, msgBadTask)
		return
	}
	if r.grade(ctx, msg, s, taskID, msgTaskReqFailed) {
		r.send(cid, msgMoreTasks)
	}
}

// onReplyAnswer — ответ реплаем на карточку задания, состояние не трогает.
func (r *Router) onReplyAnswer(ctx context.Context, msg *tgbotapi.Message, taskID int) {
	s, ok := r.Sessions.Get(userID(msg))
	if !ok {
		return
	}
	r.grade(ctx, msg, s, taskID, msgReplyTaskFailed)
}

func (r *Router) grade(ctx context.Context, msg *tgbotapi.Message, s session.Session, taskID int, failText string) bool {
	uid, cid := userID(msg), msg.Chat.ID

	t, err := r.API.Task(ctx, s.Access, taskID)
	if err != nil {
		r.reportAPIError(cid, uid, err, failText)
		return false
	}
	v := quiz.Evaluate(t, msg.Text)
	r.sendMarkdown(cid, v.Explanation)
	r.Log.Info("answer graded", "user_id", uid, "task_id", t.ID, "type", string(t.Type), "correct", v.Correct)

	// вердикт уже доставлен, дальше только логируем
	if err := r.API.UpdateStats(ctx, s.Access, v.Correct); err != nil {
		r.Log.Warn("stats update failed", "user_id", uid, "task_id", t.ID, "error", err)
	}
	r.recordAttempt(ctx, uid, t, msg.Text, v.Correct)
	return true
}

func (r *Router) recordAttempt(ctx context.Context, uid int64, t quiz.Task, answer string, correct bool) {
	if r.Attempts == nil {
		return
	}
	err := r.Attempts.Insert(ctx, store.Attempt{
		TelegramID: uid,
		TaskID:     t.ID,
		TaskType:   string(t.Type),
		Answer:     answer,
		Correct:    correct,
	})
	if err != nil {
		r.Log.Warn("attempt insert failed", "user_id", uid, "task_id", t.ID, "error", err)
	}
}

// reportAPIError переводит ошибку API в сообщение. 401 сбрасывает сессию.
func (r *Router) reportAPIError(chatID, uid int64, err error, fallback string) {
	r.Log.Warn("backend call failed", "user_id", uid, "error", err)
	switch {
	case errors.Is(err, backend.ErrUnavailable), errors.Is(err, backend.ErrClosed):
		r.send(chatID, msgUnavailable)
	case backend.IsUnauthorized(err):
		r.Sessions.Clear(uid)
		r.send(chatID, msgSessionExpired)
	default:
		r.send(chatID, fallback)
	}
}

func (r *Router) onStats(ctx context.Context, msg *tgbotapi.Message) {
	cid := msg.Chat.ID
	if r.Attempts == nil {
		r.send(cid, msgStatsOff)
		return
	}
	sum, err := r.Attempts.Summary(ctx, userID(msg))
	if err != nil {
		r.Log.Warn("attempt summary failed", "user_id", userID(msg), "error", err)
		r.send(cid, msgStatsErr)
		return
	}
	last := "—"
	if !sum.LastAt.IsZero() {
		last = sum.LastAt.Format("02.01.2006 • 15:04")
	}
	r.send(cid, fmt.Sprintf(msgStats, sum.Total, sum.Correct, sum.Total-sum.Correct, last))
}

// repliedTaskID достаёт id задания из сообщения, на которое ответили.
func repliedTaskID(msg *tgbotapi.Message) (int, bool) {
	rt := msg.ReplyToMessage
	if rt == nil || rt.Text == "" {
		return 0, false
	}
	m := reTaskMarker.FindStringSubmatch(rt.Text)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
