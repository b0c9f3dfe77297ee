package wizard

import "github.com/jonathan/talentscout/internal/types"

// Welcome is shown when a session starts, before any input is processed.
const Welcome = `Welcome to TalentScout! 👋
I'm your AI Hiring Assistant, and I'll be helping you with the initial screening process.
I'll collect some information about you and ask relevant technical questions based on your expertise.
Let's get started! Could you please tell me your full name?`

// Farewell is returned when the candidate uses an exit command.
const Farewell = "Thank you for your time! We appreciate you taking the time to speak with us. Our team will review your information and get back to you soon. Have a great day! 👋"

// escalationNotice is prepended to context redirects after repeated
// violations in the same stage.
const escalationNotice = "I notice we're having some difficulty staying on topic. Let's focus on completing your application. "

// conclusionAck is the fixed response for any input in the terminal stage.
const conclusionAck = "Thank you! Your application has been completed. Is there anything else you'd like to add or any questions about the next steps?"

// stageQuestions holds the question asked when a stage is entered.
var stageQuestions = map[types.Stage]string{
	types.StageEmail:      "Great! Could you please provide your email address?",
	types.StagePhone:      "Thank you! What's the best phone number to reach you?",
	types.StageExperience: "How many years of professional experience do you have?",
	types.StagePosition:   "What position(s) are you interested in?",
	types.StageLocation:   "What is your current location?",
	types.StageTechStack:  "Please list the technologies you're proficient in (programming languages, frameworks, databases, tools, etc.):",
}

// correctivePrompt holds the normal and strict retry prompts per stage.
// The strict variant is used once the candidate has failed the same stage
// three times.
type correctivePrompt struct {
	normal string
	strict string
}

var correctivePrompts = map[types.Stage]correctivePrompt{
	types.StageName: {
		normal: "Please provide your full name (at least 2 characters).",
		strict: "I still need your name to continue. Please type your full name, for example: 'Jane Doe'.",
	},
	types.StageEmail: {
		normal: "Please provide a valid email address (e.g., john.doe@email.com).",
		strict: "I'm having trouble with the email format. Please provide a valid email address like: example@company.com",
	},
	types.StagePhone: {
		normal: "Please provide a valid phone number (e.g., +1234567890 or 1234567890).",
		strict: "Please provide a valid phone number with 10-15 digits. You can include country code if needed (e.g., +1234567890).",
	},
	types.StageExperience: {
		normal: "Please provide your experience in years as a number (e.g., 5, 2.5, or 0 for entry level).",
		strict: "Please provide your experience as a number (e.g., '3' for 3 years, '2.5' for 2.5 years, or '0' for entry level).",
	},
	types.StagePosition: {
		normal: "Please provide the position you're interested in (e.g., Software Developer, Data Scientist).",
		strict: "I still need the role you're applying for. A couple of words is enough, for example: 'Backend Engineer'.",
	},
	types.StageLocation: {
		normal: "Please provide your current location (e.g., New York, NY or Remote).",
		strict: "I still need your location to continue. A city name or 'Remote' works fine.",
	},
	types.StageTechStack: {
		normal: "Please provide at least one technology you're proficient in (e.g., Python, JavaScript, React).",
		strict: "Please list at least one technology you know. For example: 'Python, JavaScript' or 'React, Node.js, MongoDB'.",
	},
	types.StageTechnicalQuestions: {
		normal: "Please provide more detailed answers to the technical questions.",
		strict: "Your answers are still too brief for our reviewers. Please write at least a sentence or two per question.",
	},
}

// corrective returns the retry prompt for a stage, choosing the strict
// variant when the error count has reached the escalation threshold.
func corrective(stage types.Stage, errorCount int) string {
	p, ok := correctivePrompts[stage]
	if !ok {
		return conclusionAck
	}
	if errorCount >= escalationThreshold {
		return p.strict
	}
	return p.normal
}
