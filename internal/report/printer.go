package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talentscout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes.
	boxWidth = 60
)

// Printer handles formatted output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProgress outputs the current stage and step position.
func (p *Printer) PrintProgress(state types.SessionState) {
	current, total := state.Stage.Progress()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Stage:  %s\n", state.Stage.DisplayName()))
	sb.WriteString(fmt.Sprintf("Step:   %d of %d\n", min(current+1, total), total))
	if state.ErrorCount > 0 {
		sb.WriteString(fmt.Sprintf("Retries: %d\n", state.ErrorCount))
	}

	collected := collectedFields(&state.Record)
	if len(collected) > 0 {
		sb.WriteString(fmt.Sprintf("Collected: %s", strings.Join(collected, ", ")))
	} else {
		sb.WriteString("Collected: (none yet)")
	}

	p.printBox("APPLICATION PROGRESS", sb.String())
}

// PrintQuestions outputs the generated technical questions.
func (p *Printer) PrintQuestions(questions []string) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d questions:\n\n", len(questions)))
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, truncate(q, 50)))
	}

	p.printBox("TECHNICAL QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// truncate shortens s to at most width runes, ending in "..." when cut.
// Slicing runes rather than bytes keeps multi-byte characters intact.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

func collectedFields(record *types.CandidateRecord) []string {
	all := []string{"name", "email", "phone", "experience", "position", "location", "tech_stack"}
	missing := make(map[string]struct{})
	for _, field := range MissingFields(record) {
		missing[field] = struct{}{}
	}

	var collected []string
	for _, field := range all {
		if _, absent := missing[field]; !absent {
			collected = append(collected, field)
		}
	}
	return collected
}
