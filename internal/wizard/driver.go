// Package wizard implements the staged conversation driver for the
// candidate intake interview. The driver is a pure state machine: it
// receives the candidate's message plus the current session state and
// returns the assistant's reply plus the updated state. Persistence,
// terminals and transports live in the hosting layers.
package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/talentscout/internal/classify"
	"github.com/jonathan/talentscout/internal/parsing"
	"github.com/jonathan/talentscout/internal/questions"
	"github.com/jonathan/talentscout/internal/report"
	"github.com/jonathan/talentscout/internal/types"
	"github.com/jonathan/talentscout/internal/validate"
)

const (
	// escalationThreshold is the error count at which redirects and retry
	// prompts switch to their firmer wording.
	escalationThreshold = 3

	// minNameLength is the shortest accepted full name.
	minNameLength = 2

	// minFreeTextLength is the shortest accepted position or location.
	minFreeTextLength = 2

	// minAnswerLength is the shortest accepted technical answer set.
	minAnswerLength = 10
)

// exitCommands end the interview from any stage. Matching is exact on
// the trimmed, lowercased input so that e.g. "stop by the office" is not
// treated as a farewell.
var exitCommands = map[string]struct{}{
	"quit":    {},
	"exit":    {},
	"bye":     {},
	"goodbye": {},
	"end":     {},
	"stop":    {},
	"finish":  {},
	"done":    {},
}

// IsExitCommand reports whether the input is an exit command.
func IsExitCommand(input string) bool {
	_, ok := exitCommands[strings.ToLower(strings.TrimSpace(input))]
	return ok
}

// Driver advances a session through the intake stages.
type Driver struct {
	generator   questions.Generator
	classifiers []classify.Classifier
}

// Option configures a Driver.
type Option func(*Driver)

// WithClassifiers replaces the default context classifiers.
func WithClassifiers(classifiers ...classify.Classifier) Option {
	return func(d *Driver) {
		d.classifiers = classifiers
	}
}

// NewDriver creates a Driver using the given question generator. By
// default the off-topic and inappropriate-content classifiers are
// installed; the email-shape check is always applied during the email
// stage.
func NewDriver(generator questions.Generator, opts ...Option) *Driver {
	d := &Driver{
		generator:   generator,
		classifiers: []classify.Classifier{classify.OffTopic, classify.Inappropriate},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Process handles one conversation turn. It never mutates the state it
// receives: the caller gets back a new state reflecting the turn's
// outcome. Exit commands short-circuit without touching the state at
// all, so the collected record survives an early goodbye.
func (d *Driver) Process(ctx context.Context, input string, state types.SessionState) (string, types.SessionState) {
	if IsExitCommand(input) {
		return Farewell, state
	}
	if state.Done() {
		return conclusionAck, state
	}

	// Context checks run before field validation so that off-topic or
	// inappropriate messages never reach the stage validators.
	for _, classifier := range d.classifiers {
		if verdict := classifier(input); !verdict.OK {
			return d.redirect(verdict.Message, state)
		}
	}
	if state.Stage == types.StageEmail {
		if verdict := classify.EmailShape(input); !verdict.OK {
			return d.redirect(verdict.Message, state)
		}
	}

	switch state.Stage {
	case types.StageName:
		return d.handleName(input, state)
	case types.StageEmail:
		return d.handleEmail(input, state)
	case types.StagePhone:
		return d.handlePhone(input, state)
	case types.StageExperience:
		return d.handleExperience(input, state)
	case types.StagePosition:
		return d.handlePosition(input, state)
	case types.StageLocation:
		return d.handleLocation(input, state)
	case types.StageTechStack:
		return d.handleTechStack(ctx, input, state)
	case types.StageTechnicalQuestions:
		return d.handleAnswers(input, state)
	default:
		return conclusionAck, state
	}
}

// redirect handles a context violation: the error count goes up and the
// classifier's message is returned, with the escalation notice prepended
// once the threshold is reached.
func (d *Driver) redirect(message string, state types.SessionState) (string, types.SessionState) {
	state.ErrorCount++
	if state.ErrorCount >= escalationThreshold {
		message = escalationNotice + message
	}
	return message, state
}

// retry handles a stage validation failure. The stage stays put and the
// corrective prompt is returned, switching to the firmer variant once
// the threshold is reached.
func (d *Driver) retry(state types.SessionState) (string, types.SessionState) {
	state.ErrorCount++
	return corrective(state.Stage, state.ErrorCount), state
}

// advance records a successful stage: the error count resets and the
// session moves to the next stage.
func advance(state types.SessionState) types.SessionState {
	state.ErrorCount = 0
	state.Stage = state.Stage.Next()
	return state
}

func (d *Driver) handleName(input string, state types.SessionState) (string, types.SessionState) {
	if !validate.MinLength(input, minNameLength) {
		return d.retry(state)
	}
	state.Record.Name = strings.TrimSpace(input)
	state.ConversationStarted = true
	state = advance(state)
	return fmt.Sprintf("Nice to meet you, %s! %s", state.Record.Name, stageQuestions[types.StageEmail]), state
}

func (d *Driver) handleEmail(input string, state types.SessionState) (string, types.SessionState) {
	if !validate.Email(input) {
		return d.retry(state)
	}
	state.Record.Email = strings.TrimSpace(input)
	state = advance(state)
	return stageQuestions[types.StagePhone], state
}

func (d *Driver) handlePhone(input string, state types.SessionState) (string, types.SessionState) {
	if !validate.Phone(input) {
		return d.retry(state)
	}
	state.Record.Phone = strings.TrimSpace(input)
	state = advance(state)
	return stageQuestions[types.StageExperience], state
}

func (d *Driver) handleExperience(input string, state types.SessionState) (string, types.SessionState) {
	years, ok := validate.Experience(input)
	if !ok {
		return d.retry(state)
	}
	state.Record.SetExperience(years)
	state = advance(state)
	return stageQuestions[types.StagePosition], state
}

func (d *Driver) handlePosition(input string, state types.SessionState) (string, types.SessionState) {
	if !validate.MinLength(input, minFreeTextLength) {
		return d.retry(state)
	}
	state.Record.Position = strings.TrimSpace(input)
	state = advance(state)
	return stageQuestions[types.StageLocation], state
}

func (d *Driver) handleLocation(input string, state types.SessionState) (string, types.SessionState) {
	if !validate.MinLength(input, minFreeTextLength) {
		return d.retry(state)
	}
	state.Record.Location = strings.TrimSpace(input)
	state = advance(state)
	return stageQuestions[types.StageTechStack], state
}

func (d *Driver) handleTechStack(ctx context.Context, input string, state types.SessionState) (string, types.SessionState) {
	techStack := parsing.TechStack(input)
	if len(techStack) == 0 {
		return d.retry(state)
	}
	state.Record.TechStack = techStack
	state.Record.TechnicalQuestions = d.generator.Generate(ctx, techStack)
	state = advance(state)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Excellent! I see you're skilled in: %s\n\n", strings.Join(techStack, ", ")))
	sb.WriteString("Here are some technical questions based on your expertise:\n\n")
	sb.WriteString(strings.Join(state.Record.TechnicalQuestions, "\n"))
	sb.WriteString("\n\nPlease provide your answers to these questions:")
	return sb.String(), state
}

func (d *Driver) handleAnswers(input string, state types.SessionState) (string, types.SessionState) {
	if !validate.MinLength(input, minAnswerLength) {
		return d.retry(state)
	}
	state.Record.TechnicalAnswers = strings.TrimSpace(input)
	state = advance(state)
	return report.Summary(&state.Record), state
}
