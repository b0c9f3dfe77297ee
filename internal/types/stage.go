// Package types defines the shared data model for the intake wizard:
// interview stages, the candidate record, and per-session state.
package types

// Stage is one discrete step in the fixed intake sequence.
// Stages advance strictly monotonically; the only way back is a full reset.
type Stage int

// Interview stages in order.
const (
	StageName Stage = iota
	StageEmail
	StagePhone
	StageExperience
	StagePosition
	StageLocation
	StageTechStack
	StageTechnicalQuestions
	StageConclusion
)

var stageNames = map[Stage]string{
	StageName:               "name",
	StageEmail:              "email",
	StagePhone:              "phone",
	StageExperience:         "experience",
	StagePosition:           "position",
	StageLocation:           "location",
	StageTechStack:          "tech_stack",
	StageTechnicalQuestions: "technical_questions",
	StageConclusion:         "conclusion",
}

var stageDisplayNames = map[Stage]string{
	StageName:               "Personal Information",
	StageEmail:              "Contact Details",
	StagePhone:              "Phone Number",
	StageExperience:         "Experience Level",
	StagePosition:           "Desired Position",
	StageLocation:           "Location",
	StageTechStack:          "Technical Skills",
	StageTechnicalQuestions: "Technical Assessment",
	StageConclusion:         "Complete",
}

// String returns the machine-readable stage name (used in storage and the API).
func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// DisplayName returns the human-readable stage name shown in progress output.
func (s Stage) DisplayName() string {
	if name, ok := stageDisplayNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Next returns the successor stage. StageConclusion is terminal and
// returns itself.
func (s Stage) Next() Stage {
	if s >= StageConclusion {
		return StageConclusion
	}
	return s + 1
}

// IsTerminal reports whether the stage is the absorbing final stage.
func (s Stage) IsTerminal() bool {
	return s == StageConclusion
}

// Progress returns the completed-step count and the total number of
// input-collecting steps (the conclusion stage is excluded from the total).
func (s Stage) Progress() (current, total int) {
	total = int(StageConclusion)
	current = int(s)
	if current > total {
		current = total
	}
	return current, total
}

// ParseStage converts a machine-readable stage name back to a Stage.
// Unknown names report ok == false.
func ParseStage(name string) (Stage, bool) {
	for stage, n := range stageNames {
		if n == name {
			return stage, true
		}
	}
	return StageName, false
}
