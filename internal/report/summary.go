// Package report renders candidate data into human-readable output: the
// end-of-interview summary, the recruiter assessment report, and the
// box-drawing printer used by verbose CLI mode.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/talentscout/internal/types"
)

const notAvailable = "N/A"

// Summary renders the candidate summary shown when the technical
// assessment is answered. It is a pure function of the record: absent
// fields render as "N/A" and identical records produce identical output.
func Summary(record *types.CandidateRecord) string {
	var sb strings.Builder

	sb.WriteString("📋 Candidate Summary:\n")
	sb.WriteString("------------------------\n")
	sb.WriteString(fmt.Sprintf("Full Name: %s\n", orNA(record.Name)))
	sb.WriteString(fmt.Sprintf("Email: %s\n", orNA(record.Email)))
	sb.WriteString(fmt.Sprintf("Phone: %s\n", orNA(record.Phone)))
	sb.WriteString(fmt.Sprintf("Experience: %s years\n", experienceString(record)))
	sb.WriteString(fmt.Sprintf("Desired Position: %s\n", orNA(record.Position)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", orNA(record.Location)))
	sb.WriteString(fmt.Sprintf("Tech Stack: %s\n", orNA(strings.Join(record.TechStack, ", "))))
	sb.WriteString("\n🔍 Technical Assessment:\n")
	sb.WriteString("------------------------\n")
	sb.WriteString(orNA(strings.Join(record.TechnicalQuestions, "\n")))
	sb.WriteString("\n\nCandidate Responses:\n")
	sb.WriteString(orNA(record.TechnicalAnswers))
	sb.WriteString("\n\nThank you for completing the initial screening! Our team will review your information and get back to you soon.")

	return sb.String()
}

// Assessment renders the full recruiter-facing report, including missing
// field warnings and suggested next steps. The generation timestamp is a
// parameter so callers control determinism.
func Assessment(record *types.CandidateRecord, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString("# Candidate Assessment Report\n")
	sb.WriteString(fmt.Sprintf("Generated on: %s\n\n", generatedAt.Format("2006-01-02 15:04:05")))

	sb.WriteString("## Personal Information\n")
	sb.WriteString(fmt.Sprintf("- **Name**: %s\n", orNA(record.Name)))
	sb.WriteString(fmt.Sprintf("- **Email**: %s\n", orNA(record.Email)))
	sb.WriteString(fmt.Sprintf("- **Phone**: %s\n", orNA(record.Phone)))
	sb.WriteString(fmt.Sprintf("- **Location**: %s\n\n", orNA(record.Location)))

	sb.WriteString("## Professional Information\n")
	sb.WriteString(fmt.Sprintf("- **Experience**: %s years\n", experienceString(record)))
	sb.WriteString(fmt.Sprintf("- **Desired Position**: %s\n", orNA(record.Position)))
	sb.WriteString(fmt.Sprintf("- **Technical Skills**: %s\n\n", orNA(strings.Join(record.TechStack, ", "))))

	sb.WriteString("## Technical Assessment\n")
	sb.WriteString("### Questions Asked:\n")
	for i, question := range record.TechnicalQuestions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, question))
	}

	answers := record.TechnicalAnswers
	if answers == "" {
		answers = "No responses provided"
	}
	sb.WriteString(fmt.Sprintf("\n### Candidate Responses:\n%s\n", answers))

	if missing := MissingFields(record); len(missing) > 0 {
		sb.WriteString(fmt.Sprintf("\n## ⚠️ Missing Information\nThe following fields are incomplete: %s\n", strings.Join(missing, ", ")))
	}

	sb.WriteString("\n## Next Steps\n- Review technical responses\n- Schedule follow-up interview if qualified\n- Contact candidate with decision\n")

	return sb.String()
}

// MissingFields lists required intake fields not yet collected, in stage
// order.
func MissingFields(record *types.CandidateRecord) []string {
	var missing []string
	if record.Name == "" {
		missing = append(missing, "name")
	}
	if record.Email == "" {
		missing = append(missing, "email")
	}
	if record.Phone == "" {
		missing = append(missing, "phone")
	}
	if !record.HasExperience() {
		missing = append(missing, "experience")
	}
	if record.Position == "" {
		missing = append(missing, "position")
	}
	if record.Location == "" {
		missing = append(missing, "location")
	}
	if len(record.TechStack) == 0 {
		missing = append(missing, "tech_stack")
	}
	return missing
}

func experienceString(record *types.CandidateRecord) string {
	if !record.HasExperience() {
		return notAvailable
	}
	return strconv.FormatFloat(*record.ExperienceYears, 'g', -1, 64)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
