// Package questions provides the technical question generator the wizard
// consults after the tech-stack stage. Generation is treated as a fallible
// collaborator: the LLM-backed implementation falls back to a static
// per-technology table on any failure, so callers never see an error.
package questions

import (
	"context"
	"strings"
)

const (
	// maxQuestions caps the questions returned by any generator.
	maxQuestions = 5
	// minQuestions is the minimum accepted from LLM output before the
	// static fallback kicks in.
	minQuestions = 3
	// minQuestionLength filters out fragments from LLM output.
	minQuestionLength = 10
)

// Generator produces assessment questions for a candidate's tech stack.
// Implementations must not fail: on any internal error they degrade to
// deterministic output instead.
type Generator interface {
	Generate(ctx context.Context, techStack []string) []string
}

// parseQuestionList extracts valid question lines from raw LLM output.
// A line counts as a question when it contains a question mark, is longer
// than minQuestionLength and contains at least one letter.
func parseQuestionList(raw string) []string {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		q := strings.TrimSpace(line)
		if len(q) <= minQuestionLength || !strings.Contains(q, "?") || !containsLetter(q) {
			continue
		}
		questions = append(questions, q)
		if len(questions) == maxQuestions {
			break
		}
	}
	return questions
}

func containsLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
