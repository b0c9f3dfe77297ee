package questions

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/jonathan/talentscout/internal/llm"
	"github.com/jonathan/talentscout/internal/prompts"
)

// DefaultTimeout bounds one generation call so the wizard never stalls a
// turn waiting for the model.
const DefaultTimeout = 20 * time.Second

// LLMGenerator produces tailored questions through an LLM client and
// degrades to the static table when the call fails, times out, or returns
// fewer than three usable questions.
type LLMGenerator struct {
	client   llm.Client
	fallback *Static
	timeout  time.Duration
	tier     llm.ModelTier
}

// NewLLMGenerator wraps an LLM client. A zero timeout uses DefaultTimeout.
func NewLLMGenerator(client llm.Client, timeout time.Duration) *LLMGenerator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &LLMGenerator{
		client:   client,
		fallback: NewStatic(),
		timeout:  timeout,
		tier:     llm.TierStandard,
	}
}

// Generate asks the model for 4-5 assessment questions. Any failure path
// is absorbed here; the caller always gets a usable list.
func (g *LLMGenerator) Generate(ctx context.Context, techStack []string) []string {
	if g.client == nil {
		return g.fallback.Generate(ctx, techStack)
	}

	system := prompts.MustGet("questions.json", "system")
	prompt := prompts.Format(
		prompts.MustGet("questions.json", "tech_assessment"),
		map[string]string{"TechStack": strings.Join(techStack, ", ")},
	)

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.client.GenerateContent(callCtx, system, prompt, g.tier)
	if err != nil {
		log.Printf("question generation failed, using fallback table: %v", err)
		return g.fallback.Generate(ctx, techStack)
	}

	questions := parseQuestionList(raw)
	if len(questions) < minQuestions {
		log.Printf("question generation returned %d usable questions, using fallback table", len(questions))
		return g.fallback.Generate(ctx, techStack)
	}
	return questions
}
