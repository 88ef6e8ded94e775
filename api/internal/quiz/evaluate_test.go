package quiz

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func mcqTask() Task {
	return Task{ID: 7, Title: "Kim?", Type: TypeMCQ, Options: []Option{
		{Text: "Backend", Correct: false},
		{Text: "Frontend", Correct: true},
	}}
}

func checkboxTask() Task {
	return Task{ID: 8, Title: "Qaysilar?", Type: TypeCheckbox, Options: []Option{
		{Text: "Backend", Correct: true},
		{Text: "Frontend", Correct: true},
		{Text: "Design", Correct: false},
	}}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":                   "",
		"   ":                "",
		"  Django ":          "django",
		"Hello\t\n  World":   "hello world",
		"ALREADY normal":     "already normal",
		" a  b   c ":         "a b c",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEvaluateShort(t *testing.T) {
	task := Task{ID: 1, Type: TypeShort, CorrectShort: "Django"}
	cases := []struct {
		in   string
		want bool
	}{
		{"  django ", true},
		{"Django", true},
		{"DJANGO", true},
		{"\tdjango\n", true},
		{"flask", false},
		{"", false},
		{"django rest", false},
	}
	for _, c := range cases {
		v := Evaluate(task, c.in)
		if v.Correct != c.want {
			t.Errorf("Evaluate(short, %q) = %v, want %v", c.in, v.Correct, c.want)
		}
	}
}

func TestEvaluateShortInternalWhitespace(t *testing.T) {
	task := Task{Type: TypeShort, CorrectShort: "Django  Rest Framework"}
	for _, in := range []string{"django rest framework", "  DJANGO\tREST\n framework  "} {
		if v := Evaluate(task, in); !v.Correct {
			t.Errorf("Evaluate(%q) should be correct", in)
		}
	}
}

func TestEvaluateShortEmptyExpectedFailsClosed(t *testing.T) {
	for _, expected := range []string{"", "   "} {
		task := Task{Type: TypeShort, CorrectShort: expected}
		for _, in := range []string{"", " ", "anything"} {
			v := Evaluate(task, in)
			if v.Correct {
				t.Errorf("expected=%q in=%q graded correct", expected, in)
			}
			if !strings.Contains(v.Explanation, "`—`") {
				t.Errorf("explanation should show placeholder, got %q", v.Explanation)
			}
		}
	}
}

func TestEvaluateShortExplanation(t *testing.T) {
	v := Evaluate(Task{Type: TypeShort, CorrectShort: " Django "}, "  flask ")
	if !strings.HasPrefix(v.Explanation, headIncorrect) {
		t.Errorf("unexpected headline: %q", v.Explanation)
	}
	if !strings.Contains(v.Explanation, "`flask`") || !strings.Contains(v.Explanation, "`Django`") {
		t.Errorf("explanation should echo trimmed answers: %q", v.Explanation)
	}
}

func TestEvaluateMCQScenario(t *testing.T) {
	task := mcqTask()
	cases := []struct {
		in   string
		want bool
	}{
		{"2", true},
		{"frontend", true},
		{"  FRONTEND ", true},
		{"1,2", false},
		{"1", false},
		{"backend", false},
		{"", false},
		{"5", false},
		{"front", true},
		{"end", false}, // подстрока обоих вариантов
	}
	for _, c := range cases {
		v := Evaluate(task, c.in)
		if v.Correct != c.want {
			t.Errorf("Evaluate(mcq, %q) = %v, want %v (%s)", c.in, v.Correct, c.want, v.Explanation)
		}
	}
}

func TestEvaluateMCQNumeralProperty(t *testing.T) {
	opts := []Option{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}, {Text: "e"}}
	for k := range opts {
		task := Task{Type: TypeMCQ, Options: make([]Option, len(opts))}
		copy(task.Options, opts)
		task.Options[k].Correct = true
		for n := 1; n <= len(opts); n++ {
			v := Evaluate(task, fmt.Sprint(n))
			if want := n == k+1; v.Correct != want {
				t.Errorf("correct=%d input=%d: got %v want %v", k+1, n, v.Correct, want)
			}
		}
	}
}

func TestEvaluateMCQWithoutSingleCorrect(t *testing.T) {
	none := Task{Type: TypeMCQ, Options: []Option{{Text: "a"}, {Text: "b"}}}
	both := Task{Type: TypeMCQ, Options: []Option{{Text: "a", Correct: true}, {Text: "b", Correct: true}}}
	for _, in := range []string{"1", "2", "a", "1 2"} {
		if Evaluate(none, in).Correct {
			t.Errorf("no-correct mcq graded correct for %q", in)
		}
		if Evaluate(both, in).Correct {
			t.Errorf("multi-correct mcq graded correct for %q", in)
		}
	}
}

func TestEvaluateCheckboxScenario(t *testing.T) {
	task := checkboxTask()
	cases := []struct {
		in   string
		want bool
	}{
		{"1 2", true},
		{"2,1", true},
		{"2;1", true},
		{"1\n2", true},
		{"Backend, Frontend", true},
		{"Backend, Design", false},
		{"1", false},
		{"1 2 3", false},
		{"", false},
		{"1 2 9", true}, // вне диапазона — отбрасывается
	}
	for _, c := range cases {
		v := Evaluate(task, c.in)
		if v.Correct != c.want {
			t.Errorf("Evaluate(checkbox, %q) = %v, want %v (%s)", c.in, v.Correct, c.want, v.Explanation)
		}
	}
}

func TestEvaluateCheckboxSubsetSuperset(t *testing.T) {
	task := Task{Type: TypeCheckbox, Options: []Option{
		{Text: "a", Correct: true}, {Text: "b"}, {Text: "c", Correct: true}, {Text: "d"},
	}}
	for in, want := range map[string]bool{
		"1 3":     true,
		"3 1":     true,
		"3, 1":    true,
		"1":       false,
		"3":       false,
		"1 2 3":   false,
		"1 3 4":   false,
		"1 1 3 3": true,
	} {
		if got := Evaluate(task, in).Correct; got != want {
			t.Errorf("Evaluate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestEvaluateCheckboxNoCorrectNeverSatisfied(t *testing.T) {
	task := Task{Type: TypeCheckbox, Options: []Option{{Text: "a"}, {Text: "b"}}}
	for _, in := range []string{"", "1", "2", "1 2", "a", "zzz"} {
		if Evaluate(task, in).Correct {
			t.Errorf("checkbox without correct options graded correct for %q", in)
		}
	}
}

func TestEvaluateNoOptions(t *testing.T) {
	for _, typ := range []Type{TypeMCQ, TypeCheckbox} {
		for _, in := range []string{"", "1", "Backend"} {
			v := Evaluate(Task{Type: typ}, in)
			if v.Correct || v.Explanation != noOptionsText {
				t.Errorf("%s/%q: got %+v", typ, in, v)
			}
		}
	}
}

func TestNumericTakesPrecedence(t *testing.T) {
	task := Task{Type: TypeMCQ, Options: []Option{
		{Text: "Python 2", Correct: false},
		{Text: "Python 3", Correct: true},
	}}
	// "2" — индекс второго варианта, а не текст "Python 2"
	got := SelectOptions(task, "2")
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("SelectOptions(\"2\") = %v, want [1]", got)
	}
	// единственное число вне диапазона — переходим к тексту
	got = SelectOptions(task, "python 3")
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("SelectOptions(\"python 3\") = %v, want [1]", got)
	}
}

func TestSelectOptionsMCQFullStringFallback(t *testing.T) {
	task := Task{Type: TypeMCQ, Options: []Option{{Text: ""}, {Text: "b", Correct: true}}}
	got := SelectOptions(task, "  ")
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("SelectOptions = %v, want [0]", got)
	}
	cb := task
	cb.Type = TypeCheckbox
	if got := SelectOptions(cb, "  "); len(got) != 0 {
		t.Fatalf("checkbox must not use full-string fallback, got %v", got)
	}
}

func TestExplanationLists(t *testing.T) {
	v := Evaluate(checkboxTask(), "3 1")
	if v.Correct {
		t.Fatal("should be incorrect")
	}
	if !strings.Contains(v.Explanation, "Siz tanlagan variant(lar): Backend, Design") {
		t.Errorf("selection not listed in option order: %q", v.Explanation)
	}
	if !strings.Contains(v.Explanation, "To‘g‘ri variant(lar): Backend, Frontend") {
		t.Errorf("correct texts not listed: %q", v.Explanation)
	}

	v = Evaluate(checkboxTask(), "nothing here")
	if !strings.Contains(v.Explanation, "Siz tanlagan variant(lar): —") {
		t.Errorf("empty selection placeholder missing: %q", v.Explanation)
	}
}

func TestUnknownTypeUsesOptionGrading(t *testing.T) {
	task := Task{Type: "poll", Options: []Option{{Text: "x", Correct: true}, {Text: "y"}}}
	if !Evaluate(task, "1").Correct {
		t.Error("unknown type should grade like checkbox")
	}
}

func TestOptionUnmarshalAcceptsBothKeys(t *testing.T) {
	var task Task
	js := `{"id":3,"title":"t","type":"checkbox","options":[{"text":"a","correct":true},{"text":"b","is_correct":true},{"text":"c"}]}`
	if err := json.Unmarshal([]byte(js), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := task.CorrectIndexes()
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("CorrectIndexes = %v, want [0 1]", got)
	}
}
