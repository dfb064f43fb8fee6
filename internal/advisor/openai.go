package advisor

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	systemRole    = "You are a quantitative trading strategy expert."
	DefaultPrompt = "Suggest improvements to the following RSI + Bollinger band entry strategy."

	// Returned when no API key is configured; the service is then never called.
	placeholder = "(an OpenAI API key is required for strategy suggestions)"
)

// Advisor consults an external text-generation service for strategy
// suggestions. The output is opaque and only forwarded to the notifier.
type Advisor struct {
	client *openai.Client
	model  string
}

// New creates an Advisor. With an empty API key the advisor stays offline and
// Improve returns a fixed placeholder.
func New(apiKey, model string) *Advisor {
	if model == "" {
		model = openai.GPT4
	}
	a := &Advisor{model: model}
	if apiKey != "" {
		a.client = openai.NewClient(apiKey)
	}
	return a
}

// Improve asks the advisory service for strategy text.
func (a *Advisor) Improve(ctx context.Context, prompt string) (string, error) {
	if a.client == nil {
		return placeholder, nil
	}
	if prompt == "" {
		prompt = DefaultPrompt
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemRole},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("advisory request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("advisory service returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
