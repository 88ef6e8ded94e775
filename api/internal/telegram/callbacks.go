package telegram

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (r *Router) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if _, err := r.Bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil { // ack
		r.Log.Debug("callback ack failed", "error", err)
	}
	if cb.Message == nil || cb.From == nil {
		return
	}
	cid := cb.Message.Chat.ID
	data := cb.Data

	switch {
	case strings.HasPrefix(data, cbTaskPrefix):
		id, err := strconv.Atoi(strings.TrimPrefix(data, cbTaskPrefix))
		if err != nil || id <= 0 {
			r.send(cid, msgBadTask)
			return
		}
		r.onTaskSelected(ctx, cb, id)
	case strings.HasPrefix(data, cbBackendPrefix):
		r.onCourseLang(cb, backendCourses, strings.TrimPrefix(data, cbBackendPrefix))
	case strings.HasPrefix(data, cbFrontendPrefix):
		r.onCourseLang(cb, frontendCourses, strings.TrimPrefix(data, cbFrontendPrefix))
	default:
		r.Log.Debug("unknown callback", "data", data)
	}
}

// onCourseLang открывает уроки выбранного языка и убирает инлайн-кнопки.
// Неизвестный код (back/backd) возвращает в главное меню.
func (r *Router) onCourseLang(cb *tgbotapi.CallbackQuery, set map[string]courseLang, code string) {
	cid := cb.Message.Chat.ID
	if cl, ok := set[code]; ok {
		r.sendKeyboard(cid, cl.Picked, courseKeyboard(cl))
	} else {
		r.sendKeyboard(cid, "Ortga", mainKeyboard())
	}
	edit := tgbotapi.NewEditMessageReplyMarkup(cid, cb.Message.MessageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})
	if _, err := r.Bot.Send(edit); err != nil {
		r.Log.Debug("clear inline keyboard failed", "chat_id", cid, "error", err)
	}
}
