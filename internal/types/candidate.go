package types

// CandidateRecord is the accumulated answer set for one session.
// A field is populated if and only if its stage has been completed, so
// zero values mean "not collected yet" rather than "empty answer".
//
// The validate tags drive the completeness check performed before export;
// they are not used during conversation turns.
type CandidateRecord struct {
	Name               string   `json:"name,omitempty" validate:"required,min=2"`
	Email              string   `json:"email,omitempty" validate:"required,email"`
	Phone              string   `json:"phone,omitempty" validate:"required"`
	ExperienceYears    *float64 `json:"experience,omitempty" validate:"required"`
	Position           string   `json:"position,omitempty" validate:"required,min=2"`
	Location           string   `json:"location,omitempty" validate:"required,min=2"`
	TechStack          []string `json:"tech_stack,omitempty" validate:"required,min=1,max=10"`
	TechnicalQuestions []string `json:"technical_questions,omitempty"`
	TechnicalAnswers   string   `json:"technical_answers,omitempty"`
}

// HasExperience reports whether the experience stage has been completed.
// A pointer is used so that a recorded "0 years" is distinguishable from
// an uncollected field.
func (r *CandidateRecord) HasExperience() bool {
	return r.ExperienceYears != nil
}

// SetExperience records the validated experience value.
func (r *CandidateRecord) SetExperience(years float64) {
	r.ExperienceYears = &years
}
