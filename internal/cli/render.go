package cli

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studypal/internal/grader"
	"github.com/abhisek/studypal/internal/progress"
	"github.com/abhisek/studypal/internal/quiz"
	"github.com/abhisek/studypal/internal/scoring"
	"github.com/abhisek/studypal/internal/store"
)

// ScoreBar renders a horizontal bar for a 0-100 score.
func ScoreBar(score, width int) string {
	if width < 4 {
		width = 4
	}
	filled := width * score / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	color := Success
	switch {
	case score < 50:
		color = Error
	case score < 80:
		color = Warning
	}

	filledStr := lipgloss.NewStyle().Background(color).Render(strings.Repeat(" ", filled))
	emptyStr := lipgloss.NewStyle().Background(Border).Render(strings.Repeat(" ", width-filled))
	percent := Subtitle.Render(fmt.Sprintf("  %d/100", score))

	return filledStr + emptyStr + percent
}

// RenderOutcome renders a scored attempt: the per-question breakdown,
// the overall score, and the reconciled profile.
func RenderOutcome(outcome *progress.Outcome, questions []*quiz.Question, answers []quiz.Answer) string {
	var b strings.Builder

	for i, q := range questions {
		var answer quiz.Answer
		if i < len(answers) {
			answer = answers[i]
		}
		b.WriteString(renderQuestionLine(i, q, answer, outcome.Attempt))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Title.Render("Score") + "  " + ScoreBar(outcome.Attempt.Score, 30))
	b.WriteString("\n")

	if outcome.Profile != nil {
		b.WriteString("\n")
		b.WriteString(renderProfileBody(outcome.Profile.WeakAreas, outcome.Profile.Strengths))
	}

	return b.String()
}

func renderQuestionLine(idx int, q *quiz.Question, a quiz.Answer, attempt *scoring.AttemptScore) string {
	marker := Incorrect.Render("✗")
	detail := ""

	if q.Type.IsOpenEnded() {
		if result, ok := attempt.ResultFor(idx); ok {
			switch result.Grade {
			case grader.GradeCorrect:
				marker = Correct.Render("✓")
			case grader.GradePartial:
				marker = Partial.Render("~")
			}
			if result.Feedback != "" {
				detail = "\n   " + Hint.Render(result.Feedback)
			}
		} else {
			marker = Partial.Render("?")
			detail = "\n   " + Hint.Render("Grading unavailable; half credit applied.")
		}
	} else if scoring.IsQuestionCorrect(q, a, nil) {
		marker = Correct.Render("✓")
	}

	line := fmt.Sprintf("%s %d. %s", marker, idx+1, Body.Render(q.Prompt))
	if display := a.Display(q); display != "" {
		line += Subtitle.Render("  → " + display)
	}
	return line + detail
}

// RenderProfile renders one stored learning profile.
func RenderProfile(p *store.ProfileData) string {
	var b strings.Builder
	b.WriteString(Title.Render(p.Topic))
	b.WriteString("  " + ScoreBar(p.ProgressScore, 20))
	b.WriteString("\n")
	b.WriteString(Subtitle.Render("Updated " + p.LastUpdated.Local().Format("2006-01-02 15:04")))
	b.WriteString("\n\n")
	b.WriteString(renderProfileBody(p.WeakAreas, p.Strengths))
	return Card.Render(b.String())
}

func renderProfileBody(weakAreas, strengths []string) string {
	var b strings.Builder

	b.WriteString(Incorrect.Render("Needs work"))
	b.WriteString("\n")
	if len(weakAreas) == 0 {
		b.WriteString(Hint.Render("  (none)") + "\n")
	}
	for _, w := range weakAreas {
		b.WriteString(Body.Render("  • "+w) + "\n")
	}

	b.WriteString(Correct.Render("Strengths"))
	b.WriteString("\n")
	if len(strengths) == 0 {
		b.WriteString(Hint.Render("  (none)") + "\n")
	}
	for _, s := range strengths {
		b.WriteString(Body.Render("  • "+s) + "\n")
	}

	return b.String()
}

// RenderAttempts renders recent attempt events as a table.
func RenderAttempts(events []*store.AttemptEvent) string {
	if len(events) == 0 {
		return Hint.Render("No attempts recorded yet.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-19s  %-20s  %5s  %9s  %6s\n",
		"When", "Topic", "Score", "Questions", "Graded"))
	b.WriteString(strings.Repeat("─", 68))
	b.WriteString("\n")

	for _, e := range events {
		graded := "yes"
		if !e.Graded {
			graded = "no"
		}
		topic := e.Topic
		if len(topic) > 20 {
			topic = topic[:20]
		}
		b.WriteString(fmt.Sprintf("%-19s  %-20s  %5d  %9d  %6s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			topic,
			e.Score,
			e.TotalQuestions,
			graded,
		))
	}
	return b.String()
}
