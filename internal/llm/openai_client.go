package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/midori-health/condition-tracker/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical wellbeing assistant.

You receive a readiness snapshot, a short list of behavioral advice, and recent derived daily signals for a single user. You must base your conclusions only on the provided data.

Your goals:
- Describe the user's recent condition in clear, neutral language.
- Highlight patterns in mood, sleep, steps, and stress.
- Explain what the readiness tier means for the user in plain words.
- Restate the advice items in an encouraging, concrete way.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (sleep schedule, daily movement, stress habits).
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the user's recent condition and data maturity.",
  "observations": [
    "3-6 bullet points about patterns in mood, sleep, steps, and stress.",
    "At least one item about how complete the recent logging has been."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Echo the provided advice items where present."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's wellbeing data.

- "readiness" describes how much logged history exists and whether outputs are unlocked.
- "advice" is the current list of comparative behavioral recommendations.
- "recent_days" contains derived daily signals, newest last; null fields mean the input was not logged.

Use:
- "readiness" to frame how much confidence the data supports,
- "advice" as the backbone of the guidance section,
- "recent_days" to describe short-term patterns.

JSON:

%s

Based on this data, respond in the required JSON format.`

// SummaryLLM is the interface for generating wellbeing summaries using an LLM.
type SummaryLLM interface {
	// GenerateSummary takes a context object and returns an LLM-generated narrative.
	GenerateSummary(ctx context.Context, conditionCtx *domain.ConditionContext) (*domain.SummaryOutput, error)
}

// OpenAIClient implements SummaryLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating summaries.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateSummary calls OpenAI to generate a wellbeing narrative.
func (c *OpenAIClient) GenerateSummary(ctx context.Context, conditionCtx *domain.ConditionContext) (*domain.SummaryOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(conditionCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var output domain.SummaryOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
