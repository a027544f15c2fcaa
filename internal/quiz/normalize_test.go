package quiz

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestQuestionUnmarshal_ChoiceEncodings(t *testing.T) {
	// The three encodings of the same logical answer must normalize to
	// the same canonical form.
	encodings := []string{
		`1`,
		`[1]`,
		`"Paris"`,
	}

	for _, enc := range encodings {
		t.Run(enc, func(t *testing.T) {
			raw := `{
				"type": "single",
				"question": "What is the capital of France?",
				"options": ["London", "Paris", "Rome"],
				"correctAnswer": ` + enc + `,
				"explanation": "Paris is the capital of France."
			}`

			var q Question
			if err := json.Unmarshal([]byte(raw), &q); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(q.Correct.Indices) != 1 || q.Correct.Indices[0] != 1 {
				t.Errorf("Correct.Indices = %v, want [1]", q.Correct.Indices)
			}
			if !Evaluate(&q, Answer{Selected: []int{1}}) {
				t.Error("selecting index 1 should be correct")
			}
		})
	}
}

func TestQuestionUnmarshal_MultipleIndexList(t *testing.T) {
	raw := `{
		"type": "multiple",
		"question": "Which are primary colors?",
		"options": ["Red", "Green", "Blue", "Yellow"],
		"correctAnswer": [2, 0]
	}`

	var q Question
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// Normalization sorts and dedupes.
	if len(q.Correct.Indices) != 2 || q.Correct.Indices[0] != 0 || q.Correct.Indices[1] != 2 {
		t.Errorf("Correct.Indices = %v, want [0 2]", q.Correct.Indices)
	}
}

func TestQuestionUnmarshal_TrueFalse(t *testing.T) {
	for _, enc := range []string{`false`, `"false"`, `"False"`} {
		var q Question
		raw := `{"type": "true_false", "question": "Water boils at 90C.", "correctAnswer": ` + enc + `}`
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			t.Fatalf("unmarshal %s: %v", enc, err)
		}
		if q.Correct.Bool != false {
			t.Errorf("encoding %s: Correct.Bool = true, want false", enc)
		}
	}
}

func TestQuestionUnmarshal_OptionTextNotFound(t *testing.T) {
	raw := `{
		"type": "single",
		"question": "Pick one.",
		"options": ["a", "b"],
		"correctAnswer": "c"
	}`
	var q Question
	if err := json.Unmarshal([]byte(raw), &q); err == nil {
		t.Error("expected error for correct answer text missing from options")
	}
}

func TestAnswerUnmarshal_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		check func(a Answer) bool
	}{
		{"bare index", `2`, func(a Answer) bool { return len(a.Selected) == 1 && a.Selected[0] == 2 }},
		{"index list", `[0, 2]`, func(a Answer) bool { return len(a.Selected) == 2 }},
		{"boolean", `true`, func(a Answer) bool { return a.Flag != nil && *a.Flag }},
		{"free text", `"because gravity"`, func(a Answer) bool { return a.Text == "because gravity" }},
		{"garbage object stays empty", `{"x": 1}`, func(a Answer) bool {
			return a.Selected == nil && a.Flag == nil && a.Text == ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Answer
			if err := json.Unmarshal([]byte(tt.raw), &a); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !tt.check(a) {
				t.Errorf("unexpected decoded answer: %+v", a)
			}
		})
	}
}

func TestTruncatePrompt(t *testing.T) {
	if got := truncatePrompt("short prompt"); got != "short prompt" {
		t.Errorf("truncatePrompt = %q, want unchanged", got)
	}

	long := strings.Repeat("a", 50)
	if got := truncatePrompt(long); got != strings.Repeat("a", 40)+"…" {
		t.Errorf("truncatePrompt = %q, want 40 chars plus ellipsis", got)
	}

	// A multi-byte rune straddling the cut must not be split.
	straddling := strings.Repeat("a", 39) + "éxtra words beyond the limit"
	got := truncatePrompt(straddling)
	if !utf8.ValidString(got) {
		t.Errorf("truncatePrompt produced invalid UTF-8: %q", got)
	}
	if got != strings.Repeat("a", 39)+"…" {
		t.Errorf("truncatePrompt = %q, want cut before the split rune", got)
	}
}

func TestAnswerDisplay(t *testing.T) {
	q := singleQuestion(1)
	if got := (Answer{Selected: []int{1}}).Display(q); got != "Paris" {
		t.Errorf("Display = %q, want Paris", got)
	}

	tf := &Question{Type: TypeTrueFalse}
	if got := (Answer{Flag: boolPtr(false)}).Display(tf); got != "False" {
		t.Errorf("Display = %q, want False", got)
	}
	if got := (Answer{}).Display(tf); got != "" {
		t.Errorf("Display = %q, want empty for missing boolean", got)
	}

	oe := &Question{Type: TypeOpenEnded}
	if got := (Answer{Text: "  water cycle  "}).Display(oe); got != "water cycle" {
		t.Errorf("Display = %q, want trimmed text", got)
	}
}
