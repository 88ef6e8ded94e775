package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"riseup-bot/api/internal/assistant"
)

func (r *Router) onAI(ctx context.Context, msg *tgbotapi.Message) {
	q := assistant.QuestionFromCommand(msg.Text)
	if q == "" {
		r.send(msg.Chat.ID, msgAIUsage)
		return
	}
	r.askAI(ctx, msg, q)
}

// askAI отвечает реплаем на msg, длинный ответ — несколькими сообщениями по порядку.
func (r *Router) askAI(ctx context.Context, msg *tgbotapi.Message, question string) {
	cid := msg.Chat.ID
	if _, err := r.Bot.Request(tgbotapi.NewChatAction(cid, tgbotapi.ChatTyping)); err != nil {
		r.Log.Debug("typing action failed", "chat_id", cid, "error", err)
	}

	answer := r.AI.Ask(ctx, question)
	for _, part := range assistant.Chunk(answer, assistant.ChunkSize) {
		m := tgbotapi.NewMessage(cid, part)
		m.ReplyToMessageID = msg.MessageID
		if _, err := r.Bot.Send(m); err != nil {
			r.Log.Warn("send ai answer failed", "chat_id", cid, "error", err)
			return
		}
	}
}
