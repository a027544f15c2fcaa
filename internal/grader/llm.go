package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/studypal/internal/llm"
)

// Config holds configuration for the LLM grader.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. The token budget scales with
// batch size at request time; this is the floor.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.2,
	}
}

// LLMGrader grades free-text answers with a single schema-constrained
// LLM request per batch. One attempt means one request, no matter how
// many open-ended questions it carries.
type LLMGrader struct {
	provider llm.Provider
	cfg      Config
}

// NewLLMGrader creates an LLM-backed batch grader.
func NewLLMGrader(provider llm.Provider, cfg Config) *LLMGrader {
	return &LLMGrader{provider: provider, cfg: cfg}
}

// gradedOutput is the raw LLM response.
type gradedOutput struct {
	Graded []struct {
		Grade        string   `json:"grade"`
		Score        float64  `json:"score"`
		Feedback     string   `json:"feedback"`
		WeakAreas    []string `json:"weak_areas"`
		Improvements []string `json:"improvements"`
	} `json:"graded"`
}

// GradeBatch submits all items in one request and returns results in
// submission order. A response whose cardinality does not match the
// batch is an error: the caller cannot safely realign partial output.
func (g *LLMGrader) GradeBatch(ctx context.Context, items []Item) ([]Result, error) {
	if len(items) == 0 {
		return nil, nil
	}

	ctx = llm.WithPurpose(ctx, "answer-grading")

	userMsg, err := buildBatchMessage(items)
	if err != nil {
		return nil, fmt.Errorf("build grading prompt: %w", err)
	}

	req := llm.Request{
		System: gradingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.cfg.MaxTokens + 256*len(items),
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM grading failed: %w", err)
	}

	var raw gradedOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse grading response: %w", err)
	}

	if len(raw.Graded) != len(items) {
		return nil, fmt.Errorf("grading response has %d entries, want %d", len(raw.Graded), len(items))
	}

	results := make([]Result, len(raw.Graded))
	for i, e := range raw.Graded {
		results[i] = Result{
			Grade:        normalizeGrade(e.Grade),
			Score:        clampScore(e.Score),
			Feedback:     e.Feedback,
			WeakAreas:    e.WeakAreas,
			Improvements: e.Improvements,
		}
	}
	return results, nil
}

const gradingSystemPrompt = `You are an expert tutor grading free-text quiz answers. For each numbered answer, decide whether it is correct, partially correct, or incorrect with respect to the question and the expected answer.

Instructions:
- Grade on substance, not wording. Accept paraphrases and minor spelling mistakes.
- Award partial credit (0 < score < 1) when the answer shows real but incomplete understanding.
- An empty or off-topic answer is incorrect with score 0.
- weak_areas: short concept tags (2-4 words each) for what the learner missed or confused. Empty for correct answers.
- improvements: one concrete suggestion per gap. Empty for correct answers.
- Keep feedback to one or two sentences, addressed to the learner.
- Return exactly one graded entry per answer, in the same order as submitted.`

var batchTemplate = template.Must(template.New("grading").Parse(`Grade the following {{len .}} answer(s):
{{range $i, $item := .}}
Answer {{$i}}:
Question: {{$item.Question}}
Learner's answer: {{$item.Answer}}
{{- if $item.Context}}
{{$item.Context}}
{{- end}}
{{end}}`))

func buildBatchMessage(items []Item) (string, error) {
	var buf bytes.Buffer
	if err := batchTemplate.Execute(&buf, items); err != nil {
		return "", err
	}
	return buf.String(), nil
}
