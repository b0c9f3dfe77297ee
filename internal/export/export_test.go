package export

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/talentscout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeRecord() *types.CandidateRecord {
	r := &types.CandidateRecord{
		Name:               "Jane Doe",
		Email:              "jane@x.com",
		Phone:              "+12345678901",
		Position:           "Engineer",
		Location:           "Remote",
		TechStack:          []string{"Python", "Go"},
		TechnicalQuestions: []string{"What are goroutines?"},
		TechnicalAnswers:   "Lightweight threads managed by the Go runtime.",
	}
	r.SetExperience(3)
	return r
}

func TestCheckComplete(t *testing.T) {
	assert.NoError(t, CheckComplete(completeRecord()))

	record := &types.CandidateRecord{Name: "Jane Doe"}
	err := CheckComplete(record)
	require.Error(t, err)

	var incomplete *IncompleteRecordError
	require.True(t, errors.As(err, &incomplete))
	assert.Contains(t, incomplete.Fields, "email")
	assert.Contains(t, incomplete.Fields, "tech_stack")
	assert.NotContains(t, incomplete.Fields, "name")
}

func TestEmailHash(t *testing.T) {
	hash := EmailHash("jane@x.com")
	assert.Len(t, hash, emailHashLength)
	assert.Equal(t, hash, EmailHash("jane@x.com"), "hash is deterministic")
	assert.NotEqual(t, hash, EmailHash("john@x.com"))
	assert.Regexp(t, "^[0-9a-f]+$", hash)
}

func TestNewSubmission(t *testing.T) {
	submittedAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	submission, err := NewSubmission(completeRecord(), submittedAt)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", submission.Name)
	assert.Equal(t, EmailHash("jane@x.com"), submission.EmailHash)
	assert.Equal(t, 3.0, submission.Experience)
	assert.Equal(t, "2025-06-01T12:30:00Z", submission.SubmissionTime)

	_, err = NewSubmission(&types.CandidateRecord{}, submittedAt)
	assert.Error(t, err)
}

func TestSubmissionJSON(t *testing.T) {
	submission, err := NewSubmission(completeRecord(), time.Now())
	require.NoError(t, err)

	data, err := submission.JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "email", "raw email must never be exported")
	assert.Contains(t, decoded, "email_hash")
}

func TestSubmissionCSV(t *testing.T) {
	submission, err := NewSubmission(completeRecord(), time.Now())
	require.NoError(t, err)

	data, err := submission.CSV()
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "Field,Value\n"))
	assert.Contains(t, out, "Name,Jane Doe")
	assert.Contains(t, out, `Tech Stack,"Python, Go"`)
	assert.NotContains(t, out, "jane@x.com")
}

func TestFilename(t *testing.T) {
	submittedAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "candidate_Jane_Doe_20250601_123000.json", Filename("Jane Doe", submittedAt, "json"))
	assert.Equal(t, "candidate_Jane_Doe_20250601_123000.csv", Filename(" Jane Doe ", submittedAt, "csv"))
}

func TestExporterExport(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "exports")
	exporter := NewExporter(dataDir)
	exporter.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	}

	result, err := exporter.Export(context.Background(), completeRecord())
	require.NoError(t, err)

	jsonData, err := os.ReadFile(result.JSONPath)
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), `"name": "Jane Doe"`)

	csvData, err := os.ReadFile(result.CSVPath)
	require.NoError(t, err)
	assert.Contains(t, string(csvData), "Jane Doe")
}

func TestExporterExportIncomplete(t *testing.T) {
	exporter := NewExporter(t.TempDir())
	_, err := exporter.Export(context.Background(), &types.CandidateRecord{})

	var incomplete *IncompleteRecordError
	assert.True(t, errors.As(err, &incomplete))
}
