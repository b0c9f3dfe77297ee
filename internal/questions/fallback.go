package questions

import (
	"context"
	"fmt"
	"strings"
)

// fallbackTable maps lower-cased technology names to canned questions.
// At most two questions per technology are used.
var fallbackTable = map[string][]string{
	"python": {
		"What are the key differences between lists and tuples in Python?",
		"How do you handle exceptions in Python and why is it important?",
		"Explain the concept of decorators in Python with an example.",
		"What is the difference between '==' and 'is' operators in Python?",
	},
	"javascript": {
		"What is the difference between 'let', 'const', and 'var' in JavaScript?",
		"How do you handle asynchronous operations in JavaScript?",
		"Explain event bubbling and event capturing in JavaScript.",
		"What are closures in JavaScript and how are they useful?",
	},
	"react": {
		"What is the difference between state and props in React?",
		"How do you optimize React component performance?",
		"Explain the React component lifecycle methods.",
		"What are React Hooks and why were they introduced?",
	},
	"node.js": {
		"What is the event loop in Node.js and how does it work?",
		"How do you handle file operations in Node.js?",
		"What are the differences between Node.js and browser JavaScript?",
		"How do you manage dependencies in a Node.js project?",
	},
	"sql": {
		"What is the difference between INNER JOIN and LEFT JOIN?",
		"How do you optimize a slow-performing SQL query?",
		"Explain the concept of database normalization.",
		"What are indexes and how do they improve query performance?",
	},
	"java": {
		"What is the difference between abstract classes and interfaces in Java?",
		"How does garbage collection work in Java?",
		"Explain the concept of polymorphism in Java.",
		"What are the main principles of Object-Oriented Programming?",
	},
	"aws": {
		"What are the main differences between EC2, ECS, and Lambda?",
		"How do you secure data in AWS S3 buckets?",
		"Explain the concept of Auto Scaling in AWS.",
		"What is the difference between RDS and DynamoDB?",
	},
	"docker": {
		"What is the difference between a Docker image and a container?",
		"How do you optimize Docker image size?",
		"Explain the purpose of a Dockerfile.",
		"What are the benefits of using Docker in development?",
	},
}

// Static is the deterministic generator backed by the fallback table.
// It is both the no-API-key variant selected at construction time and the
// degradation path of the LLM-backed generator.
type Static struct{}

// NewStatic returns the static table-backed generator.
func NewStatic() *Static {
	return &Static{}
}

// Generate looks up canned questions for the first three technologies,
// two per technology. When the table yields fewer than three questions
// the list is topped up with generic ones, so the 3-5 bound holds for
// any tech stack. The result is capped at five questions.
func (s *Static) Generate(_ context.Context, techStack []string) []string {
	var questions []string

	limit := min(len(techStack), 3)
	for _, tech := range techStack[:limit] {
		canned := fallbackTable[strings.ToLower(tech)]
		questions = append(questions, canned[:min(len(canned), 2)]...)
	}

	if len(questions) < minQuestions {
		first := "your primary technology"
		if len(techStack) > 0 {
			first = techStack[0]
		}
		questions = append(questions,
			fmt.Sprintf("Can you explain your experience with %s?", first),
			fmt.Sprintf("What projects have you worked on using %s?", first),
			"Describe a challenging technical problem you've solved recently.",
			"How do you stay updated with new technologies in your field?",
		)
	}

	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}
