package telegram

import "strings"

type lesson struct {
	Button string
	Intro  string
	URL    string
}

func (l lesson) text() string { return l.Intro + ":\n\n" + l.URL }

// courseLang — набор уроков одного направления на одном языке.
type courseLang struct {
	Picked  string
	Back    string
	Lessons []lesson
}

const (
	backUz = "🔙 Ortga"
	backRu = "🔙 Назад"
	backEn = "🔙 Back"

	btnBackend  = "Backend"
	btnFrontend = "Frontend"
	btnDonate   = "Hissa qo'shish 💰"
)

// ключи — суффиксы callback-данных lang_* и til_*
var backendCourses = map[string]courseLang{
	"uzb": {Picked: "Siz o'zbek tilini tanladingiz", Back: backUz, Lessons: []lesson{
		{"Python asoslari", "Python darslarini 0 dan boshlab o'rganing", "https://www.youtube.com/watch?v=ZqFjXM8k-PY&list=PLwsopmzfbOn9Lw5D7a26THpBDgAma1Sus"},
		{"Django darslari", "Django darslarini professional tarzda o'rganing 0dan o'zingizni website qilishingizgacha", "https://www.youtube.com/watch?v=49_C_3kkW6g&list=PLWoHEZ4vq7z5TR9I-TYLnqN0vgdHHrOmS"},
		{"Django Rest Framework darslari", "Django rest framework darslarini hamda api larni mukammal urganing", "https://www.youtube.com/watch?v=o7SVadHcXjM&list=PLm-TVk1aJmO4gKl0EuQei16B6Wi4tRhP8"},
		{"Aiogram darslari", "Aiogramda 0dan toki o'zingizni botingizni qilib chiqishgacha", "https://www.youtube.com/watch?v=FC2ztmTq10w&list=PLyABYrL3eBgWnQ_qUylmhChB1J6t4B38R"},
	}},
	"ru": {Picked: "Вы выбрали русский язык", Back: backRu, Lessons: []lesson{
		{"Python Уроки", "Python с нуля", "https://www.youtube.com/watch?v=34Rp6KVGIEM&list=PLDyJYA6aTY1lPWXBPk0gw6gR8fEtPDGKa"},
		{"Django Уроки", "Профессионально изучите уроки Django с нуля до создания собственного сайта", "https://www.youtube.com/watch?v=L-FyeHQwo4U&list=PLDyJYA6aTY1nZ9fSGcsK4wqeu-xaJksQQ"},
		{"Django Rest Framework Уроки", "Изучите руководства и API фреймворка Django REST", "https://www.youtube.com/watch?v=i-uvtDKeFgE&list=PLA0M1Bcd0w8xZA3Kl1fYmOH_MfLpiYMRs"},
		{"Aiogram Уроки", "С нуля до создания собственного бота на Aiogram", "https://www.youtube.com/watch?v=i07-M7m13bM&list=PLV0FNhq3XMOJ31X9eBWLIZJ4OVjBwb-KM"},
	}},
	"eng": {Picked: "You choose English", Back: backEn, Lessons: []lesson{
		{"Python for beginners", "Python for beginners", "https://www.youtube.com/watch?v=K5KVEU3aaeQ"},
		{"Django lessons", "Django lessons from scratch to own website", "https://www.youtube.com/watch?v=rHux0gMZ3Eg"},
		{"Django Rest Framework lessons", "DRF lessons for beginners with API", "https://www.youtube.com/watch?v=c708Nf0cHrs"},
		{"Aiogram lessons", "Create your own telegram bot with aiogram library in python", "https://www.youtube.com/watch?v=rDG09TlYSwo&list=PLt2KnIqdk1FEm4lmGuxxz9OjiX7HLnYEa"},
	}},
}

var frontendCourses = map[string]courseLang{
	"ozb": {Picked: "Siz o'zbek tilini tanladingiz", Back: backUz, Lessons: []lesson{
		{"HTML darslari", "HTML darslarini 0dan o'rganing", "https://www.youtube.com/watch?v=9dUhZq9dkHM&list=PLpDyZ4xZcDg_aAzP6pDD1PRsYCSdheveS"},
		{"CSS darslari", "CSS darslarini hamda stylelarni mukammal o'rganish", "https://www.youtube.com/watch?v=KPPhQ0F-SDY&list=PLpDyZ4xZcDg_gyII__1jtnE2FEgqpfJU8"},
		{"JavaScript darslari", "JavaScript dasrlarini hamda sayt qilishni mukammal o'rganish", "https://www.youtube.com/watch?v=q8yclECd9CY&list=PLpDyZ4xZcDg8fRiY6xgsQcDiMjNYJhNjE"},
	}},
	"rus": {Picked: "Вы выбрали русский язык", Back: backRu, Lessons: []lesson{
		{"HTML Уроки", "Изучите уроки HTML с нуля", "https://www.youtube.com/watch?v=_R5a-Kc0pRc&list=PLDyJYA6aTY1nlkG0gBj96XDmDSC4Fy1TO"},
		{"CSS Уроки", "Изучите уроки и стили CSS", "https://www.youtube.com/watch?v=hft4XYApT44&list=PLDyJYA6aTY1meZ3d08sRILB46OJ-wojF2"},
		{"JavaScript Уроки", "Подробно изучите учебные пособия по JavaScript и создание веб-сайтов", "https://www.youtube.com/watch?v=fHl7UyRjOf0&list=PLDyJYA6aTY1kJIwbYHzGOuvSMNTfqksmk"},
	}},
	"en": {Picked: "You chose English", Back: backEn, Lessons: []lesson{
		{"HTML for beginners", "Learn HTML from zero", "https://www.youtube.com/watch?v=HD13eq_Pmp8"},
		{"CSS for beginners", "Learn CSS as well style", "https://www.youtube.com/watch?v=wRNinF7YQqQ"},
		{"JavaScript for beginners", "Deep learning JavaScript and learn create website", "https://www.youtube.com/watch?v=EerdGm-ehJQ"},
	}},
}

var lessonByButton = func() map[string]lesson {
	m := make(map[string]lesson)
	for _, set := range []map[string]courseLang{backendCourses, frontendCourses} {
		for _, cl := range set {
			for _, l := range cl.Lessons {
				m[l.Button] = l
			}
		}
	}
	return m
}()

// handleCourseText обрабатывает кнопки reply-клавиатур меню курсов.
func (r *Router) handleCourseText(chatID int64, text string) bool {
	switch text {
	case btnBackend:
		r.sendKeyboard(chatID, msgChooseLang, backendLangKeyboard())
		return true
	case btnFrontend:
		r.sendKeyboard(chatID, msgChooseLang, frontendLangKeyboard())
		return true
	case btnDonate:
		r.sendKeyboard(chatID, msgDonate, donateKeyboard(r.DonateURL))
		return true
	case backUz, backRu, backEn:
		r.sendKeyboard(chatID, strings.TrimPrefix(text, "🔙 "), mainKeyboard())
		return true
	}
	if l, ok := lessonByButton[text]; ok {
		r.send(chatID, l.text())
		return true
	}
	return false
}
