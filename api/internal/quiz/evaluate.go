package quiz

import (
	"sort"
	"strconv"
	"strings"
)

const (
	headCorrect   = "✅ *To‘g‘ri javob!*"
	headIncorrect = "❌ *Noto‘g‘ri javob.*"
	noOptionsText = "⚠️ Bu savol uchun variantlar topilmadi."
	emptyMark     = "—"
)

// Evaluate проверяет ответ пользователя. Никогда не паникует на мусорном вводе:
// пустой или нераспознанный ответ просто даёт Correct=false.
func Evaluate(t Task, raw string) Verdict {
	raw = strings.TrimSpace(raw)
	if t.Type == TypeShort {
		return evaluateShort(t, raw)
	}
	return evaluateOptions(t, raw)
}

func evaluateShort(t Task, raw string) Verdict {
	expected := strings.TrimSpace(t.CorrectShort)
	want := Normalize(expected)
	ok := want != "" && Normalize(raw) == want

	shown := expected
	if shown == "" {
		shown = emptyMark
	}
	head := headIncorrect
	if ok {
		head = headCorrect
	}
	var b strings.Builder
	b.WriteString(head)
	b.WriteString("\n\n📌 Sizning javobingiz: `")
	b.WriteString(inCode(raw))
	b.WriteString("`\n✅ To‘g‘ri javob: `")
	b.WriteString(inCode(shown))
	b.WriteString("`")
	return Verdict{Correct: ok, Explanation: b.String()}
}

func evaluateOptions(t Task, raw string) Verdict {
	if len(t.Options) == 0 {
		return Verdict{Correct: false, Explanation: noOptionsText}
	}

	chosen := SelectOptions(t, raw)
	want := t.CorrectIndexes()

	var ok bool
	if t.Type == TypeMCQ {
		ok = len(chosen) == 1 && sameIndexes(chosen, want)
	} else {
		ok = len(want) > 0 && sameIndexes(chosen, want)
	}

	head := headIncorrect
	if ok {
		head = headCorrect
	}
	var b strings.Builder
	b.WriteString(head)
	b.WriteString("\n\n📌 Siz tanlagan variant(lar): ")
	b.WriteString(joinTexts(t.Options, chosen))
	b.WriteString("\n✅ To‘g‘ri variant(lar): ")
	b.WriteString(joinTexts(t.Options, want))
	return Verdict{Correct: ok, Explanation: b.String(), Selected: chosen}
}

// SelectOptions разбирает ответ в набор индексов вариантов (с 0, по возрастанию).
//
// Порядок: сначала числа (1-based, вне диапазона молча отбрасываются); если
// валидных чисел нет — текстовые куски (точное совпадение или подстрока);
// для mcq в крайнем случае — точное совпадение всей строки.
func SelectOptions(t Task, raw string) []int {
	n := len(t.Options)
	if n == 0 {
		return nil
	}
	set := make(map[int]struct{})

	for _, d := range reDigits.FindAllString(raw, -1) {
		v, err := strconv.Atoi(d)
		if err != nil {
			continue
		}
		if v >= 1 && v <= n {
			set[v-1] = struct{}{}
		}
	}

	if len(set) == 0 {
		parts := splitParts(raw)
		for i, o := range t.Options {
			opt := Normalize(o.Text)
			for _, p := range parts {
				if opt == p || strings.Contains(opt, p) {
					set[i] = struct{}{}
					break
				}
			}
		}
	}

	if len(set) == 0 && t.Type == TypeMCQ {
		full := Normalize(raw)
		for i, o := range t.Options {
			if Normalize(o.Text) == full {
				set[i] = struct{}{}
				break
			}
		}
	}

	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// оба среза отсортированы по возрастанию и без повторов
func sameIndexes(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func joinTexts(opts []Option, idx []int) string {
	if len(idx) == 0 {
		return emptyMark
	}
	texts := make([]string, 0, len(idx))
	for _, i := range idx {
		texts = append(texts, escMarkdown(opts[i].Text))
	}
	return strings.Join(texts, ", ")
}
