// Package assistant — RiseUp AI: пересылка вопросов во внешний AI-чат.
package assistant

import (
	"context"
	"regexp"
	"strings"
)

// Asker отвечает на вопрос пользователя. Ошибок не возвращает: вместо них — готовый текст для чата.
type Asker interface {
	Ask(ctx context.Context, question string) string
}

// ChunkSize — с запасом под лимит сообщения телеграма (4096).
const ChunkSize = 4000

const (
	msgServerError = "⚠️ AI server xatosi: HTTP %d"
	msgConnError   = "⚠️ AI bilan ulanishda muammo bo‘ldi"
	msgTimeout     = "⚠️ AI javob bermadi (timeout yoki xato)"
	msgBadStatus   = "⚠️ AI javobida xatolik"
	msgNoAnswer    = "Javob yo‘q"
)

// BasePrompt — системная инструкция ментора RiseUp.
const BasePrompt = "Sen RiseUp platformasining AI mentori-san.\n" +
	"Har doim faqat o‘zbek tilida javob ber.\n" +
	"Javoblaring qisqa, tushunarli va amaliy bo‘lsin (3-7 gap).\n" +
	"Agar savol RiseUp kurslari (frontend/backend, dizayn, IT, hamda ingliz tilda) yoki o‘qish jarayoniga aloqador bo‘lmasa, " +
	"muloyim rad et va RiseUp mavzusiga qaytar.\n" +
	"Misol uchun, agar foydalanuvchi shaxsiy hayot, siyosat yoki boshqa mavzuda savol bersa, muloyimlik bilan rad et va RiseUp haqida gapir.\n" +
	"Foydalanuvchiga yordam berish hamda uni progress qilishga undash uchun harakat qil.\n" +
	"Seni yosh hamda iqtidorli RiseUp jamoasi yaratgan va doimo foydalanuvchilarga yordam berishga tayyorsan.\n" +
	"RiseUp ning rasmiy veb-sayti: https://riseuply.vercel.app\n" +
	"Foydalanuvchiga hissa qo'shishini so'rab, /hissa komandasi orqali RiseUp loyihasini rivojlantirish uchun yordam berishni tavsiya qil.\n" +
	"RiseUp ning Telegram kanali: https://t.me/riseuply\n" +
	"Foydalanuvchi uchun bizning riseuply.vercel.app dagi kurslarni tavsiya ber.\n" +
	"Boshqa materiallardan berma asosan faqat RiseUp ni tavsiya qil."

// BuildPrompt склеивает инструкцию и вопрос пользователя.
func BuildPrompt(question string) string {
	return BasePrompt + "\nFoydalanuvchi savoli: " + question + "\nJavob ber:"
}

var reAICommand = regexp.MustCompile(`^/ai(@\S+)?`)

// QuestionFromCommand: "/ai savol" -> "savol".
func QuestionFromCommand(text string) string {
	return strings.TrimSpace(reAICommand.ReplaceAllString(strings.TrimSpace(text), ""))
}

// Chunk режет текст на куски по size символов (руны, не байты), без учёта границ слов.
// Склейка кусков даёт исходную строку.
func Chunk(text string, size int) []string {
	if size <= 0 {
		size = ChunkSize
	}
	r := []rune(text)
	if len(r) == 0 {
		return nil
	}
	out := make([]string, 0, (len(r)+size-1)/size)
	for i := 0; i < len(r); i += size {
		end := i + size
		if end > len(r) {
			end = len(r)
		}
		out = append(out, string(r[i:end]))
	}
	return out
}
