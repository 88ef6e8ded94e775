package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Messenger — часть *tgbotapi.BotAPI, которой пользуется роутер.
type Messenger interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

var _ Messenger = (*tgbotapi.BotAPI)(nil)
