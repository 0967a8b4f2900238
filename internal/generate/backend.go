// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Backend abstracts the completion endpoint so tests can supply a mock.
// Each call submits one rendered prompt and returns the raw response text.
type Backend interface {
	GenerateQuestions(ctx context.Context, prompt string) (string, error)
}

// systemInstruction fixes the response to JSON containing a questions array.
const systemInstruction = "You are a helpful teaching assistant that generates exam questions " +
	"based on lecture content. Always respond with valid JSON format containing a 'questions' array."

// OpenAIBackend calls the OpenAI chat completion API.
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackend builds a backend for the given credential and model
// identifier.
func NewOpenAIBackend(apiKey, model string) *OpenAIBackend {
	return &OpenAIBackend{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// GenerateQuestions submits a single chat completion request with the fixed
// system instruction and the rendered prompt as the user turn. Temperature
// is fixed at 1.0 for answer diversity and the structured-JSON response mode
// is requested. The call is best-effort-once: no retries are attempted.
func (b *OpenAIBackend) GenerateQuestions(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemInstruction,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 1.0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("calling completion API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion API returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
