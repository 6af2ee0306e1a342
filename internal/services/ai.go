package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ClauseSummarizer produces a condensed version of a contract clause.
// Implemented by AIService; tests substitute their own.
type ClauseSummarizer interface {
	SummarizeClause(ctx context.Context, clauseText string) (string, error)
}

const summarySystemPrompt = "You are helpful legal assistant that summarizes legal contract clauses."

type AIService struct {
	client *openai.Client
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// SummarizeClause sends the clause text to OpenAI and returns the generated
// summary. A single synchronous call: no retries, failures surface to the
// caller immediately.
func (s *AIService) SummarizeClause(ctx context.Context, clauseText string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: summarySystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: clauseText,
				},
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	return text, nil
}
