package report

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/jonathan/talentscout/internal/types"
	"github.com/stretchr/testify/assert"
)

func fullRecord() *types.CandidateRecord {
	r := &types.CandidateRecord{
		Name:               "Jane Doe",
		Email:              "jane@x.com",
		Phone:              "+12345678901",
		Position:           "Engineer",
		Location:           "Remote",
		TechStack:          []string{"Python", "Go"},
		TechnicalQuestions: []string{"What are goroutines?", "Explain decorators in Python?"},
		TechnicalAnswers:   "Goroutines are lightweight threads managed by the runtime.",
	}
	r.SetExperience(3)
	return r
}

func TestSummaryFullRecord(t *testing.T) {
	summary := Summary(fullRecord())

	assert.Contains(t, summary, "Full Name: Jane Doe")
	assert.Contains(t, summary, "Email: jane@x.com")
	assert.Contains(t, summary, "Experience: 3 years")
	assert.Contains(t, summary, "Tech Stack: Python, Go")
	assert.Contains(t, summary, "What are goroutines?")
	assert.Contains(t, summary, "Goroutines are lightweight threads")
	assert.NotContains(t, summary, notAvailable)
}

func TestSummaryEmptyRecordRendersNA(t *testing.T) {
	summary := Summary(&types.CandidateRecord{})

	assert.Contains(t, summary, "Full Name: N/A")
	assert.Contains(t, summary, "Email: N/A")
	assert.Contains(t, summary, "Experience: N/A years")
	assert.Contains(t, summary, "Tech Stack: N/A")
}

func TestSummaryIdempotent(t *testing.T) {
	record := fullRecord()
	assert.Equal(t, Summary(record), Summary(record), "identical records yield byte-identical output")
}

func TestSummaryFractionalExperience(t *testing.T) {
	record := fullRecord()
	record.SetExperience(2.5)
	assert.Contains(t, Summary(record), "Experience: 2.5 years")
}

func TestAssessment(t *testing.T) {
	generatedAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	assessment := Assessment(fullRecord(), generatedAt)

	assert.Contains(t, assessment, "# Candidate Assessment Report")
	assert.Contains(t, assessment, "Generated on: 2025-06-01 12:30:00")
	assert.Contains(t, assessment, "1. What are goroutines?")
	assert.Contains(t, assessment, "2. Explain decorators in Python?")
	assert.Contains(t, assessment, "## Next Steps")
	assert.NotContains(t, assessment, "Missing Information")
}

func TestAssessmentFlagsMissingFields(t *testing.T) {
	record := &types.CandidateRecord{Name: "Jane Doe"}
	assessment := Assessment(record, time.Now())

	assert.Contains(t, assessment, "Missing Information")
	assert.Contains(t, assessment, "email, phone, experience, position, location, tech_stack")
	assert.Contains(t, assessment, "No responses provided")
}

func TestMissingFields(t *testing.T) {
	assert.Len(t, MissingFields(&types.CandidateRecord{}), 7)
	assert.Empty(t, MissingFields(fullRecord()))

	// Zero years of experience is collected, not missing.
	record := &types.CandidateRecord{}
	record.SetExperience(0)
	assert.NotContains(t, MissingFields(record), "experience")
}

func TestPrinterProgress(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	state := types.NewSessionState()
	state.Record.Name = "Jane Doe"
	state.Stage = types.StageEmail
	printer.PrintProgress(state)

	out := buf.String()
	assert.Contains(t, out, "APPLICATION PROGRESS")
	assert.Contains(t, out, "Contact Details")
	assert.Contains(t, out, "Collected: name")
}

func TestPrinterQuestions(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintQuestions([]string{
		"What are goroutines?",
		strings.Repeat("x", 60) + "?",
	})

	out := buf.String()
	assert.Contains(t, out, "TECHNICAL QUESTIONS")
	assert.Contains(t, out, "1. What are goroutines?")
	assert.Contains(t, out, "...", "long questions are truncated")

	buf.Reset()
	printer.PrintQuestions(nil)
	assert.Empty(t, buf.String())
}

func TestPrinterTruncatesOnRuneBoundaries(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintQuestions([]string{strings.Repeat("é", 60) + "?"})
	out := buf.String()
	assert.True(t, utf8.ValidString(out), "truncation must not split a rune")
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, "�")

	buf.Reset()
	printer.printBox("SUMMARY", "📋 "+strings.Repeat("…", 80))
	out = buf.String()
	assert.True(t, utf8.ValidString(out), "box lines must stay valid UTF-8")
	assert.Contains(t, out, "...")
}
