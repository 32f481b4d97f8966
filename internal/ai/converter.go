// Package ai turns a natural-language website description into a validated
// WebsiteSpec by calling the OpenAI chat completion API.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"sitegen_ai_server/internal/ai/prompts"
	"sitegen_ai_server/internal/metrics"
	"sitegen_ai_server/internal/spec"
)

// Converter holds the AI client and model choice. The credential is injected
// at construction; there is no process-global configuration.
type Converter struct {
	client *openai.Client
	model  string
}

func NewConverter(apiKey, model string) *Converter {
	if model == "" {
		model = openai.GPT4o
	}
	return &Converter{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Convert sends the prompt to the model and parses the reply into a
// validated spec. Exactly one call is made per invocation; transport and
// malformed-reply failures come back as *ExternalServiceError, schema
// failures as *spec.ValidationError. The caller decides whether to retry.
func (c *Converter) Convert(ctx context.Context, promptText string) (*spec.WebsiteSpec, error) {
	metrics.IncLLMRequest(c.model)

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: prompts.GetSpecSystemInstruction()},
				{Role: openai.ChatMessageRoleUser, Content: promptText},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return nil, classifyServiceError(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenAI usage for empty response: %+v", resp.Usage)
		return nil, &ExternalServiceError{Kind: KindBadPayload, Err: errors.New("model returned empty response")}
	}

	return ParseSpecResponse(resp.Choices[0].Message.Content)
}

// ParseSpecResponse turns a raw model reply into a normalized, validated
// spec. Split out from Convert so reply handling is testable offline.
func ParseSpecResponse(raw string) (*spec.WebsiteSpec, error) {
	cleaned := stripCodeFences(raw)

	var ws spec.WebsiteSpec
	if err := json.Unmarshal([]byte(cleaned), &ws); err != nil {
		return nil, &ExternalServiceError{Kind: KindBadPayload, Err: err}
	}

	// Some models wrap the spec in an envelope object; unwrap common keys.
	if len(ws.Pages) == 0 {
		if inner, ok := unwrapSpec(cleaned); ok {
			ws = *inner
		}
	}

	spec.Normalize(&ws)
	if err := spec.Validate(&ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

func unwrapSpec(cleaned string) (*spec.WebsiteSpec, bool) {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &wrapper); err != nil {
		return nil, false
	}
	for _, key := range []string{"spec", "result", "data", "output"} {
		inner, ok := wrapper[key]
		if !ok {
			continue
		}
		var ws spec.WebsiteSpec
		if err := json.Unmarshal(inner, &ws); err == nil && len(ws.Pages) > 0 {
			log.Printf("Parsed model output assuming wrapped spec under key %q", key)
			return &ws, true
		}
	}
	return nil, false
}

// stripCodeFences removes a leading ```json / trailing ``` pair when the
// model ignores the no-fences instruction.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
