// Package export persists completed candidate records as anonymized JSON
// and CSV submission files. The raw email address never leaves the
// session: submissions carry a truncated SHA-256 digest instead.
package export

import (
	"bytes"
	"context"
	"crypto/sha256"
	_ "embed"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talentscout/internal/schemas"
	"github.com/jonathan/talentscout/internal/types"
)

//go:embed schema.json
var submissionSchema string

// emailHashLength is the number of hex characters kept from the SHA-256
// digest of the email address.
const emailHashLength = 16

var recordValidator = validator.New()

// Submission is the exported shape of a completed candidate record.
type Submission struct {
	Name               string   `json:"name"`
	EmailHash          string   `json:"email_hash"`
	Phone              string   `json:"phone"`
	Experience         float64  `json:"experience"`
	Position           string   `json:"position"`
	Location           string   `json:"location"`
	TechStack          []string `json:"tech_stack"`
	TechnicalQuestions []string `json:"technical_questions,omitempty"`
	TechnicalAnswers   string   `json:"technical_answers,omitempty"`
	SubmissionTime     string   `json:"submission_time"`
}

// IncompleteRecordError reports which intake fields are still missing
// when an export is attempted on a partial record.
type IncompleteRecordError struct {
	Fields []string
}

func (e *IncompleteRecordError) Error() string {
	return fmt.Sprintf("candidate record incomplete: missing %s", strings.Join(e.Fields, ", "))
}

// CheckComplete verifies that every required intake field has been
// collected. The check runs off the record's validate tags, so the
// export rules stay next to the type definition.
func CheckComplete(record *types.CandidateRecord) error {
	err := recordValidator.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("record validation failed: %w", err)
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, jsonFieldName(fe.StructField()))
	}
	return &IncompleteRecordError{Fields: missing}
}

// EmailHash returns the anonymized form of an email address used in
// submissions.
func EmailHash(email string) string {
	digest := sha256.Sum256([]byte(email))
	return hex.EncodeToString(digest[:])[:emailHashLength]
}

// NewSubmission converts a complete record into its export shape. The
// submission timestamp is a parameter so callers control determinism.
func NewSubmission(record *types.CandidateRecord, submittedAt time.Time) (*Submission, error) {
	if err := CheckComplete(record); err != nil {
		return nil, err
	}
	return &Submission{
		Name:               record.Name,
		EmailHash:          EmailHash(record.Email),
		Phone:              record.Phone,
		Experience:         *record.ExperienceYears,
		Position:           record.Position,
		Location:           record.Location,
		TechStack:          record.TechStack,
		TechnicalQuestions: record.TechnicalQuestions,
		TechnicalAnswers:   record.TechnicalAnswers,
		SubmissionTime:     submittedAt.Format(time.RFC3339),
	}, nil
}

// JSON renders the submission as indented JSON, validated against the
// embedded submission schema before it is returned.
func (s *Submission) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %w", err)
	}
	if err := schemas.ValidateJSONString(submissionSchema, string(data)); err != nil {
		return nil, fmt.Errorf("submission failed schema validation: %w", err)
	}
	return data, nil
}

// CSV renders the submission as a two-column Field,Value table.
func (s *Submission) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Field", "Value"},
		{"Name", s.Name},
		{"Email Hash", s.EmailHash},
		{"Phone", s.Phone},
		{"Experience (years)", strconv.FormatFloat(s.Experience, 'g', -1, 64)},
		{"Position", s.Position},
		{"Location", s.Location},
		{"Tech Stack", strings.Join(s.TechStack, ", ")},
		{"Technical Questions", strings.Join(s.TechnicalQuestions, ", ")},
		{"Technical Answers", s.TechnicalAnswers},
		{"Submission Time", s.SubmissionTime},
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename builds the submission file name for the given candidate,
// timestamp and extension, e.g. "candidate_Jane_Doe_20250601_123000.json".
func Filename(name string, submittedAt time.Time, ext string) string {
	safe := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	return fmt.Sprintf("candidate_%s_%s.%s", safe, submittedAt.Format("20060102_150405"), ext)
}

// Result holds the paths written by an export.
type Result struct {
	JSONPath string
	CSVPath  string
}

// Exporter writes submission files into a data directory.
type Exporter struct {
	dataDir string
	now     func() time.Time
}

// NewExporter creates an Exporter rooted at dataDir.
func NewExporter(dataDir string) *Exporter {
	return &Exporter{dataDir: dataDir, now: time.Now}
}

// Export writes the JSON and CSV submission files for a completed
// record. Both formats are written concurrently; if either fails the
// first error is returned.
func (e *Exporter) Export(ctx context.Context, record *types.CandidateRecord) (Result, error) {
	submittedAt := e.now()
	submission, err := NewSubmission(record, submittedAt)
	if err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(e.dataDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("failed to create data directory: %w", err)
	}

	result := Result{
		JSONPath: filepath.Join(e.dataDir, Filename(record.Name, submittedAt, "json")),
		CSVPath:  filepath.Join(e.dataDir, Filename(record.Name, submittedAt, "csv")),
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := submission.JSON()
		if err != nil {
			return err
		}
		return os.WriteFile(result.JSONPath, data, 0o600)
	})
	g.Go(func() error {
		data, err := submission.CSV()
		if err != nil {
			return err
		}
		return os.WriteFile(result.CSVPath, data, 0o600)
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return result, nil
}

// jsonFieldName maps a CandidateRecord struct field to its JSON name.
func jsonFieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Phone":
		return "phone"
	case "ExperienceYears":
		return "experience"
	case "Position":
		return "position"
	case "Location":
		return "location"
	case "TechStack":
		return "tech_stack"
	default:
		return strings.ToLower(structField)
	}
}
