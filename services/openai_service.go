package services

import (
	"CaptionRelay/config/environment"
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIService generates text through any OpenAI-compatible chat completions API.
type OpenAIService struct {
	client *openai.Client
	Model  string
}

// NewOpenAIService creates a new instance of OpenAIService. An empty baseURL
// keeps the library default.
func NewOpenAIService(apiKey, baseURL, model string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAIService{
		client: openai.NewClientWithConfig(config),
		Model:  model,
	}
}

func (s *OpenAIService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", &ProviderError{Provider: environment.ProviderOpenAI, StatusCode: openAIStatusCode(err), Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: environment.ProviderOpenAI, Err: ErrEmptyCompletion}
	}
	return resp.Choices[0].Message.Content, nil
}

func openAIStatusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
