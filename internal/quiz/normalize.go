package quiz

import (
	"encoding/json"
	"fmt"
	"strings"
)

// normalizeCorrect converts the three wire encodings of an answer key
// (single index, index list, option text) into canonical form, performed
// once at quiz-load time so evaluation never has to branch on shape.
//
// Encodings accepted per type:
//   - single/multiple: number, number array, or the literal option text
//     (resolved to its index by case-insensitive lookup in options)
//   - true_false: boolean, or the strings "true"/"false"
//   - open_ended: reference answer text
//
// Unknown types are normalized with the single rule, mirroring the
// evaluator's fallback.
func normalizeCorrect(t QuestionType, raw json.RawMessage, options []string) (CorrectAnswer, error) {
	if len(raw) == 0 {
		return CorrectAnswer{}, fmt.Errorf("missing correctAnswer")
	}

	switch t {
	case TypeTrueFalse:
		return normalizeBool(raw)
	case TypeOpenEnded:
		return normalizeText(raw)
	default:
		return normalizeChoice(raw, options)
	}
}

func normalizeChoice(raw json.RawMessage, options []string) (CorrectAnswer, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return CorrectAnswer{Indices: []int{n}}, nil
	}

	var ns []int
	if err := json.Unmarshal(raw, &ns); err == nil {
		if len(ns) == 0 {
			return CorrectAnswer{}, fmt.Errorf("empty correct index list")
		}
		return CorrectAnswer{Indices: sortedIndexSet(ns)}, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		idx, ok := findOption(s, options)
		if !ok {
			return CorrectAnswer{}, fmt.Errorf("correct answer %q not found in options", s)
		}
		return CorrectAnswer{Indices: []int{idx}}, nil
	}

	return CorrectAnswer{}, fmt.Errorf("unrecognized correctAnswer encoding: %s", raw)
}

func normalizeBool(raw json.RawMessage) (CorrectAnswer, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return CorrectAnswer{Bool: b}, nil
	}

	// Some generators stringify booleans.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true":
			return CorrectAnswer{Bool: true}, nil
		case "false":
			return CorrectAnswer{Bool: false}, nil
		}
	}

	return CorrectAnswer{}, fmt.Errorf("true_false correctAnswer must be a boolean, got %s", raw)
}

func normalizeText(raw json.RawMessage) (CorrectAnswer, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return CorrectAnswer{}, fmt.Errorf("open_ended correctAnswer must be a string, got %s", raw)
	}
	return CorrectAnswer{Text: s}, nil
}

// findOption locates text in options, case-insensitively and ignoring
// surrounding whitespace.
func findOption(text string, options []string) (int, bool) {
	for i, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(text)) {
			return i, true
		}
	}
	return 0, false
}
