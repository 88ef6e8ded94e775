package quiz

import (
	"encoding/json"
	"strings"
)

// Type — тип задания, как его отдаёт бэкенд.
type Type string

const (
	TypeShort    Type = "short"
	TypeMCQ      Type = "mcq"
	TypeCheckbox Type = "checkbox"
)

// Option — вариант ответа. Идентичность — позиция в Task.Options (с 1 в подсказках пользователю).
type Option struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// UnmarshalJSON принимает и "correct", и "is_correct".
func (o *Option) UnmarshalJSON(b []byte) error {
	var raw struct {
		Text      string `json:"text"`
		Correct   *bool  `json:"correct"`
		IsCorrect *bool  `json:"is_correct"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	o.Text = raw.Text
	switch {
	case raw.Correct != nil:
		o.Correct = *raw.Correct
	case raw.IsCorrect != nil:
		o.Correct = *raw.IsCorrect
	default:
		o.Correct = false
	}
	return nil
}

// Task — задание из GET /tasks/{id}/. Только чтение.
type Task struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Type          Type     `json:"type"`
	Options       []Option `json:"options,omitempty"`
	CorrectShort  string   `json:"correct_short,omitempty"`
	Category      string   `json:"category,omitempty"`
	ScheduledTime string   `json:"scheduled_time,omitempty"`
}

// TaskSummary — элемент списка GET /tasks/.
type TaskSummary struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Verdict — результат проверки ответа.
type Verdict struct {
	Correct     bool
	Explanation string
	// Selected — распознанные индексы вариантов (с 0), по возрастанию. Пусто для short.
	Selected []int
}

// CorrectIndexes возвращает индексы верных вариантов (с 0) в порядке следования.
func (t Task) CorrectIndexes() []int {
	var out []int
	for i, o := range t.Options {
		if o.Correct {
			out = append(out, i)
		}
	}
	return out
}

// TypeName — человекочитаемое название типа.
func (t Type) TypeName() string {
	switch t {
	case TypeShort:
		return "Qisqa javob"
	case TypeMCQ:
		return "Ko‘p tanlov"
	case TypeCheckbox:
		return "Checkbox"
	default:
		return strings.TrimSpace(string(t))
	}
}
