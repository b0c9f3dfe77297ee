// Package classify provides pure text classifiers used as the context
// validation layer of the conversation driver. Each classifier inspects
// one user message and returns a verdict; the driver composes them and
// owns the retry/escalation behavior.
package classify

import "strings"

// Verdict is the result of running a classifier over one message.
// When OK is false, Message carries the redirect text to show the user.
type Verdict struct {
	OK      bool
	Message string
}

// Classifier inspects raw user input in the context of the current stage
// name and decides whether the message should reach stage validation.
type Classifier func(input string) Verdict

var offTopicKeywords = []string{
	"weather", "sports", "politics", "food", "movie", "music",
	"game", "celebrity", "news", "joke", "story",
}

var inappropriateKeywords = []string{"hate", "violence", "illegal", "drugs"}

// OffTopic rejects messages that drift away from the application, such as
// questions about the weather or requests for jokes.
func OffTopic(input string) Verdict {
	if containsAny(strings.ToLower(strings.TrimSpace(input)), offTopicKeywords) {
		return Verdict{Message: "I'm here to help with your job application. Let's focus on gathering your professional information."}
	}
	return Verdict{OK: true}
}

// Inappropriate rejects messages containing disallowed content.
func Inappropriate(input string) Verdict {
	if containsAny(strings.ToLower(strings.TrimSpace(input)), inappropriateKeywords) {
		return Verdict{Message: "Please keep our conversation professional and appropriate."}
	}
	return Verdict{OK: true}
}

// EmailShape rejects inputs that are clearly not email-shaped: longer than
// five characters without an "@". It runs only during the email stage and
// fires before the stricter field validator, so a malformed address burns
// a context attempt rather than a stage attempt.
func EmailShape(input string) Verdict {
	if len(input) > 5 && !strings.Contains(input, "@") {
		return Verdict{Message: "Please provide a valid email address with @ symbol."}
	}
	return Verdict{OK: true}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
