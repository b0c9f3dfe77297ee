package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageNext(t *testing.T) {
	tests := []struct {
		name     string
		stage    Stage
		expected Stage
	}{
		{"Name advances to Email", StageName, StageEmail},
		{"Email advances to Phone", StageEmail, StagePhone},
		{"Phone advances to Experience", StagePhone, StageExperience},
		{"Experience advances to Position", StageExperience, StagePosition},
		{"Position advances to Location", StagePosition, StageLocation},
		{"Location advances to TechStack", StageLocation, StageTechStack},
		{"TechStack advances to TechnicalQuestions", StageTechStack, StageTechnicalQuestions},
		{"TechnicalQuestions advances to Conclusion", StageTechnicalQuestions, StageConclusion},
		{"Conclusion is absorbing", StageConclusion, StageConclusion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stage.Next())
		})
	}
}

func TestStageStringRoundTrip(t *testing.T) {
	for s := StageName; s <= StageConclusion; s++ {
		parsed, ok := ParseStage(s.String())
		assert.True(t, ok, "stage %d should round-trip", s)
		assert.Equal(t, s, parsed)
	}

	_, ok := ParseStage("nonsense")
	assert.False(t, ok)
}

func TestStageIsTerminal(t *testing.T) {
	assert.True(t, StageConclusion.IsTerminal())
	for s := StageName; s < StageConclusion; s++ {
		assert.False(t, s.IsTerminal(), "stage %s should not be terminal", s)
	}
}

func TestStageProgress(t *testing.T) {
	current, total := StageName.Progress()
	assert.Equal(t, 0, current)
	assert.Equal(t, 8, total)

	current, total = StageConclusion.Progress()
	assert.Equal(t, total, current, "conclusion counts as fully complete")
}

func TestNewSessionState(t *testing.T) {
	state := NewSessionState()
	assert.Equal(t, StageName, state.Stage)
	assert.Equal(t, 0, state.ErrorCount)
	assert.False(t, state.ConversationStarted)
	assert.Equal(t, CandidateRecord{}, state.Record)
}

func TestSessionStateReset(t *testing.T) {
	state := NewSessionState()
	state.Stage = StageTechStack
	state.ErrorCount = 2
	state.ConversationStarted = true
	state.Record.Name = "Jane Doe"
	state.Record.SetExperience(3.5)

	reset := state.Reset()
	assert.Equal(t, NewSessionState(), reset)
}

func TestCandidateRecordExperience(t *testing.T) {
	var r CandidateRecord
	assert.False(t, r.HasExperience())

	r.SetExperience(0)
	assert.True(t, r.HasExperience(), "zero years is still a collected value")
	assert.Equal(t, 0.0, *r.ExperienceYears)
}
