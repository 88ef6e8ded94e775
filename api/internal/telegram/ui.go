package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"riseup-bot/api/internal/quiz"
)

const defaultDonateURL = "https://t.me/timurbek_ustozai"

const (
	cbTaskPrefix     = "task_"
	cbBackendPrefix  = "lang_"
	cbFrontendPrefix = "til_"
)

// Главное меню курсов
func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewOneTimeReplyKeyboard(tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnBackend),
		tgbotapi.NewKeyboardButton(btnFrontend),
		tgbotapi.NewKeyboardButton(btnDonate),
	))
	kb.ResizeKeyboard = true
	return kb
}

func backendLangKeyboard() tgbotapi.InlineKeyboardMarkup {
	return langKeyboard(cbBackendPrefix, [][2]string{
		{"🇺🇿 O'zbekcha", "uzb"}, {"🇷🇺 Ruscha", "ru"}, {"🇺🇸 Inglizcha", "eng"},
	}, "back")
}

func frontendLangKeyboard() tgbotapi.InlineKeyboardMarkup {
	return langKeyboard(cbFrontendPrefix, [][2]string{
		{"🇺🇿 Uzb", "ozb"}, {"🇷🇺 Ru", "rus"}, {"🇺🇸 Eng", "en"},
	}, "backd")
}

// langKeyboard: три языка в ряд, "назад" отдельной строкой.
func langKeyboard(prefix string, langs [][2]string, back string) tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(langs))
	for _, l := range langs {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(l[0], prefix+l[1]))
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		row,
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(backUz, prefix+back)),
	)
}

func courseKeyboard(cl courseLang) tgbotapi.ReplyKeyboardMarkup {
	row := make([]tgbotapi.KeyboardButton, 0, len(cl.Lessons))
	for _, l := range cl.Lessons {
		row = append(row, tgbotapi.NewKeyboardButton(l.Button))
	}
	kb := tgbotapi.NewReplyKeyboard(row, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(cl.Back)))
	kb.ResizeKeyboard = true
	return kb
}

// Список заданий: по кнопке в строке, не больше limit.
func taskListKeyboard(tasks []quiz.TaskSummary, limit int) tgbotapi.InlineKeyboardMarkup {
	if len(tasks) > limit {
		tasks = tasks[:limit]
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(tasks))
	for _, t := range tasks {
		label := fmt.Sprintf("#%d • %s", t.ID, quiz.ShortTitle(t.Title))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("%s%d", cbTaskPrefix, t.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func donateKeyboard(url string) tgbotapi.InlineKeyboardMarkup {
	if url == "" {
		url = defaultDonateURL
	}
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonURL("💰 Hissa qo'shish", url),
	))
}
