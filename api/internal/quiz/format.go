package quiz

import (
	"fmt"
	"strings"
	"time"
)

const scheduleLayout = "02.01.2006 • 15:04"

var scheduleInputs = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatSchedule: 2025-12-06T16:30:00Z -> 06.12.2025 • 16:30.
// Часовой пояс исходной строки сохраняется; нераспознанная строка возвращается как есть.
func FormatSchedule(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return emptyMark
	}
	for _, layout := range scheduleInputs {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.Format(scheduleLayout)
		}
	}
	return s
}

// ShortTitle укорачивает заголовок для кнопки списка.
func ShortTitle(s string) string {
	r := []rune(s)
	if len(r) <= 20 {
		return s
	}
	return string(r[:17]) + "..."
}

// FormatPrompt — карточка задания. Строка "Task #<id>" используется для ответа реплаем.
func FormatPrompt(t Task) string {
	lines := []string{
		fmt.Sprintf("🆔 Task #%d", t.ID),
		"❓ Savol: " + t.Title,
		"🔁 Turi: " + t.Type.TypeName(),
	}
	if c := strings.TrimSpace(t.Category); c != "" {
		lines = append(lines, "🏷 Kategoriya: "+c)
	}
	if strings.TrimSpace(t.ScheduledTime) != "" {
		lines = append(lines, "⏰ Rejalashtirilgan: "+FormatSchedule(t.ScheduledTime))
	}
	lines = append(lines, "")

	if t.Type == TypeShort {
		lines = append(lines,
			"✍️ Bu savol qisqa javob talab qiladi.",
			"Javobingizni matn ko‘rinishida yozib yuboring (masalan: Backend).",
		)
	} else {
		lines = append(lines, "📌 Variantlar:")
		for i, o := range t.Options {
			lines = append(lines, fmt.Sprintf("%d) %s", i+1, o.Text))
		}
		switch t.Type {
		case TypeMCQ:
			lines = append(lines,
				"\nℹ️ Faqat bitta to‘g‘ri javob bor.",
				"Javobni matn ko‘rinishida ham, raqam ko‘rinishida ham yozishingiz mumkin (masalan: 1 yoki Backend).",
			)
		case TypeCheckbox:
			lines = append(lines,
				"\nℹ️ Bir nechta to‘g‘ri javob bo‘lishi mumkin.",
				"Masalan: 1 3 yoki Backend, Frontend ko‘rinishida.",
			)
		}
	}
	lines = append(lines,
		"\n✅ Endi javobingizni shu chatga yozib yuboring.\n"+
			"❌ Bekor qilish uchun /cancel buyrug'idan foydalanishingiz mumkin.",
	)
	return strings.Join(lines, "\n")
}
