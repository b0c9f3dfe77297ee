package wizard

import (
	"context"
	"strings"
	"testing"

	"github.com/jonathan/talentscout/internal/classify"
	"github.com/jonathan/talentscout/internal/questions"
	"github.com/jonathan/talentscout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDriver() *Driver {
	return NewDriver(questions.NewStatic())
}

// stateAt fast-forwards a fresh session to the given stage by replaying
// valid answers through the driver itself.
func stateAt(t *testing.T, stage types.Stage) types.SessionState {
	t.Helper()

	driver := newTestDriver()
	state := types.NewSessionState()
	answers := []string{
		"Jane Doe",
		"jane@x.com",
		"+12345678901",
		"3",
		"Engineer",
		"Remote",
		"Python, Go",
		"Goroutines are lightweight threads managed by the Go runtime.",
	}
	for _, answer := range answers {
		if state.Stage == stage {
			return state
		}
		_, state = driver.Process(context.Background(), answer, state)
	}
	require.Equal(t, stage, state.Stage, "could not reach stage %s", stage)
	return state
}

func TestProcessHappyPath(t *testing.T) {
	driver := newTestDriver()
	state := types.NewSessionState()
	ctx := context.Background()

	reply, state := driver.Process(ctx, "Jane Doe", state)
	assert.Contains(t, reply, "Nice to meet you, Jane Doe!")
	assert.Contains(t, reply, "email address")
	assert.Equal(t, types.StageEmail, state.Stage)
	assert.True(t, state.ConversationStarted)

	reply, state = driver.Process(ctx, "jane@x.com", state)
	assert.Contains(t, reply, "phone number")
	assert.Equal(t, types.StagePhone, state.Stage)

	reply, state = driver.Process(ctx, "+12345678901", state)
	assert.Contains(t, reply, "years of professional experience")
	assert.Equal(t, types.StageExperience, state.Stage)

	reply, state = driver.Process(ctx, "3", state)
	assert.Contains(t, reply, "position")
	assert.Equal(t, types.StagePosition, state.Stage)

	reply, state = driver.Process(ctx, "Engineer", state)
	assert.Contains(t, reply, "location")
	assert.Equal(t, types.StageLocation, state.Stage)

	reply, state = driver.Process(ctx, "Remote", state)
	assert.Contains(t, reply, "technologies")
	assert.Equal(t, types.StageTechStack, state.Stage)

	reply, state = driver.Process(ctx, "Python, Go", state)
	assert.Contains(t, reply, "skilled in: Python, Go")
	assert.Contains(t, reply, "technical questions")
	assert.Equal(t, types.StageTechnicalQuestions, state.Stage)
	require.GreaterOrEqual(t, len(state.Record.TechnicalQuestions), 3)
	require.LessOrEqual(t, len(state.Record.TechnicalQuestions), 5)

	reply, state = driver.Process(ctx, "Goroutines are lightweight threads managed by the Go runtime.", state)
	assert.Contains(t, reply, "Candidate Summary")
	assert.Contains(t, reply, "Full Name: Jane Doe")
	assert.Equal(t, types.StageConclusion, state.Stage)
	assert.True(t, state.Done())

	// The terminal stage absorbs all further input.
	reply, state = driver.Process(ctx, "anything else", state)
	assert.Contains(t, reply, "application has been completed")
	assert.Equal(t, types.StageConclusion, state.Stage)
}

func TestProcessRecordAccumulation(t *testing.T) {
	state := stateAt(t, types.StageConclusion)

	assert.Equal(t, "Jane Doe", state.Record.Name)
	assert.Equal(t, "jane@x.com", state.Record.Email)
	assert.Equal(t, "+12345678901", state.Record.Phone)
	require.True(t, state.Record.HasExperience())
	assert.Equal(t, 3.0, *state.Record.ExperienceYears)
	assert.Equal(t, "Engineer", state.Record.Position)
	assert.Equal(t, "Remote", state.Record.Location)
	assert.Equal(t, []string{"Python", "Go"}, state.Record.TechStack)
	assert.NotEmpty(t, state.Record.TechnicalAnswers)
}

func TestProcessStageFailureKeepsStage(t *testing.T) {
	tests := []struct {
		stage types.Stage
		input string
	}{
		{types.StageName, "J"},
		{types.StageEmail, "x@"},
		{types.StagePhone, "12"},
		{types.StageExperience, "several"},
		{types.StagePosition, "X"},
		{types.StageLocation, " "},
		{types.StageTechStack, "a"},
		{types.StageTechnicalQuestions, "short"},
	}

	driver := newTestDriver()
	for _, tt := range tests {
		t.Run(tt.stage.String(), func(t *testing.T) {
			state := stateAt(t, tt.stage)
			before := state.Record

			reply, after := driver.Process(context.Background(), tt.input, state)
			assert.Equal(t, tt.stage, after.Stage, "stage must not advance on failure")
			assert.Equal(t, state.ErrorCount+1, after.ErrorCount)
			assert.Equal(t, before, after.Record, "record must not change on failure")
			assert.NotEmpty(t, reply)
		})
	}
}

func TestProcessSuccessResetsErrorCount(t *testing.T) {
	driver := newTestDriver()
	state := types.NewSessionState()
	ctx := context.Background()

	_, state = driver.Process(ctx, "J", state)
	_, state = driver.Process(ctx, "K", state)
	require.Equal(t, 2, state.ErrorCount)

	_, state = driver.Process(ctx, "Jane Doe", state)
	assert.Equal(t, types.StageEmail, state.Stage)
	assert.Equal(t, 0, state.ErrorCount)
}

func TestProcessExitShortCircuitsEveryStage(t *testing.T) {
	stages := []types.Stage{
		types.StageName, types.StageEmail, types.StagePhone,
		types.StageExperience, types.StagePosition, types.StageLocation,
		types.StageTechStack, types.StageTechnicalQuestions, types.StageConclusion,
	}
	commands := []string{"quit", "EXIT", "  bye ", "goodbye", "end", "stop", "finish", "done"}

	driver := newTestDriver()
	for _, stage := range stages {
		state := stateAt(t, stage)
		for _, command := range commands {
			reply, after := driver.Process(context.Background(), command, state)
			assert.Equal(t, Farewell, reply)
			assert.Equal(t, state, after, "exit must not mutate state at stage %s", stage)
		}
	}
}

func TestProcessExitRequiresExactMatch(t *testing.T) {
	driver := newTestDriver()
	state := stateAt(t, types.StageLocation)

	reply, after := driver.Process(context.Background(), "stop by the office", state)
	assert.NotEqual(t, Farewell, reply)
	assert.Equal(t, types.StageTechStack, after.Stage, "a sentence containing an exit word is a normal answer")
}

func TestProcessOffTopicRedirect(t *testing.T) {
	driver := newTestDriver()
	state := types.NewSessionState()

	reply, state := driver.Process(context.Background(), "What's the weather like today?", state)
	assert.Contains(t, reply, "focus on gathering your professional information")
	assert.Equal(t, types.StageName, state.Stage)
	assert.Equal(t, 1, state.ErrorCount)
}

func TestProcessInappropriateRedirect(t *testing.T) {
	driver := newTestDriver()
	state := stateAt(t, types.StagePosition)

	reply, after := driver.Process(context.Background(), "I hate filling out forms", state)
	assert.Contains(t, reply, "professional and appropriate")
	assert.Equal(t, types.StagePosition, after.Stage)
	assert.Empty(t, after.Record.Position)
}

func TestProcessEscalationAfterRepeatedViolations(t *testing.T) {
	driver := newTestDriver()
	state := types.NewSessionState()
	ctx := context.Background()

	var reply string
	for i := 0; i < 2; i++ {
		reply, state = driver.Process(ctx, "tell me a joke", state)
		assert.NotContains(t, reply, "difficulty staying on topic")
	}

	reply, state = driver.Process(ctx, "tell me a joke", state)
	assert.Equal(t, 3, state.ErrorCount)
	assert.True(t, strings.HasPrefix(reply, escalationNotice))
}

func TestProcessStrictPromptAfterRepeatedFailures(t *testing.T) {
	driver := newTestDriver()
	state := stateAt(t, types.StageEmail)
	ctx := context.Background()

	var reply string
	for i := 0; i < 3; i++ {
		reply, state = driver.Process(ctx, "x@y", state)
	}

	assert.Equal(t, 3, state.ErrorCount)
	assert.Equal(t, correctivePrompts[types.StageEmail].strict, reply)

	// A valid address still succeeds after escalation.
	_, state = driver.Process(ctx, "jane@x.com", state)
	assert.Equal(t, types.StagePhone, state.Stage)
	assert.Equal(t, 0, state.ErrorCount)
}

func TestProcessEmailShapeCheck(t *testing.T) {
	driver := newTestDriver()
	ctx := context.Background()

	// Long input without "@" hits the shape check during the email stage.
	state := stateAt(t, types.StageEmail)
	reply, after := driver.Process(ctx, "my email address", state)
	assert.Contains(t, reply, "@ symbol")
	assert.Equal(t, types.StageEmail, after.Stage)
	assert.Equal(t, 1, after.ErrorCount)

	// The same input is fine as a location.
	state = stateAt(t, types.StageLocation)
	_, after = driver.Process(ctx, "somewhere without at signs", state)
	assert.Equal(t, types.StageTechStack, after.Stage)
}

func TestProcessCustomClassifiers(t *testing.T) {
	rejectAll := func(string) classify.Verdict {
		return classify.Verdict{Message: "no"}
	}
	driver := NewDriver(questions.NewStatic(), WithClassifiers(rejectAll))

	reply, state := driver.Process(context.Background(), "Jane Doe", types.NewSessionState())
	assert.Equal(t, "no", reply)
	assert.Equal(t, 1, state.ErrorCount)
}

func TestProcessExperienceVariants(t *testing.T) {
	driver := newTestDriver()
	ctx := context.Background()

	tests := []struct {
		input string
		want  float64
	}{
		{"2.5 years", 2.5},
		{"0", 0},
		{"10", 10},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			state := stateAt(t, types.StageExperience)
			_, after := driver.Process(ctx, tt.input, state)
			require.True(t, after.Record.HasExperience())
			assert.Equal(t, tt.want, *after.Record.ExperienceYears)
			assert.Equal(t, types.StagePosition, after.Stage)
		})
	}
}

func TestWelcomeMentionsName(t *testing.T) {
	assert.Contains(t, Welcome, "full name")
}
