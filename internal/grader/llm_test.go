package grader

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/studypal/internal/llm"
)

func gradedJSON(entries ...string) json.RawMessage {
	return json.RawMessage(`{"graded": [` + strings.Join(entries, ",") + `]}`)
}

const partialEntry = `{
	"grade": "partial",
	"score": 0.5,
	"feedback": "You named the process but not the inputs.",
	"weak_areas": ["photosynthesis inputs"],
	"improvements": ["Mention sunlight, water and carbon dioxide"]
}`

const correctEntry = `{
	"grade": "correct",
	"score": 1,
	"feedback": "Exactly right.",
	"weak_areas": [],
	"improvements": []
}`

func testItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Question: "Explain photosynthesis.",
			Answer:   "Plants make food.",
			Context:  "Expected answer: Plants convert light into chemical energy.",
		}
	}
	return items
}

func TestLLMGrader_GradesBatchInOrder(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: gradedJSON(partialEntry, correctEntry),
	})
	g := NewLLMGrader(mock, DefaultConfig())

	results, err := g.GradeBatch(t.Context(), testItems(2))
	if err != nil {
		t.Fatalf("GradeBatch: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Grade != GradePartial || results[0].Score != 0.5 {
		t.Errorf("results[0] = %+v, want partial 0.5", results[0])
	}
	if results[1].Grade != GradeCorrect || results[1].Score != 1 {
		t.Errorf("results[1] = %+v, want correct 1", results[1])
	}
	if len(results[0].WeakAreas) != 1 {
		t.Errorf("results[0].WeakAreas = %v, want one tag", results[0].WeakAreas)
	}

	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want exactly 1 per batch", mock.CallCount())
	}
}

func TestLLMGrader_EmptyBatchSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewLLMGrader(mock, DefaultConfig())

	results, err := g.GradeBatch(t.Context(), nil)
	if err != nil {
		t.Fatalf("GradeBatch: %v", err)
	}
	if results != nil {
		t.Errorf("results = %v, want nil", results)
	}
	if mock.CallCount() != 0 {
		t.Error("provider should not be called for an empty batch")
	}
}

func TestLLMGrader_CardinalityMismatchIsError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: gradedJSON(correctEntry),
	})
	g := NewLLMGrader(mock, DefaultConfig())

	if _, err := g.GradeBatch(t.Context(), testItems(2)); err == nil {
		t.Error("expected error when response cardinality mismatches the batch")
	}
}

func TestLLMGrader_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("boom")},
	})
	g := NewLLMGrader(mock, DefaultConfig())

	if _, err := g.GradeBatch(t.Context(), testItems(1)); err == nil {
		t.Error("expected provider error to propagate")
	}
}

func TestLLMGrader_NormalizesHostileValues(t *testing.T) {
	entry := `{
		"grade": "brilliant",
		"score": 1.7,
		"feedback": "",
		"weak_areas": [],
		"improvements": []
	}`
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: gradedJSON(entry),
	})
	g := NewLLMGrader(mock, DefaultConfig())

	results, err := g.GradeBatch(t.Context(), testItems(1))
	if err != nil {
		t.Fatalf("GradeBatch: %v", err)
	}
	if results[0].Grade != GradeIncorrect {
		t.Errorf("unknown grade normalized to %q, want incorrect", results[0].Grade)
	}
	if results[0].Score != 1 {
		t.Errorf("score clamped to %v, want 1", results[0].Score)
	}
}

func TestBuildBatchMessage_NumbersItems(t *testing.T) {
	msg, err := buildBatchMessage(testItems(2))
	if err != nil {
		t.Fatalf("buildBatchMessage: %v", err)
	}
	for _, want := range []string{"Answer 0:", "Answer 1:", "Expected answer:"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}
