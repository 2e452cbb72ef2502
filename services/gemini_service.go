package services

import (
	"CaptionRelay/config/environment"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
)

// GeminiService generates text with the Google Generative Language API.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiService creates the client once; it is reused for every request.
// Extra options are passed to the client after the API key.
func NewGeminiService(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*GeminiService, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating gemini client: %w", err)
	}

	return &GeminiService{
		client: client,
		model:  client.GenerativeModel(model),
	}, nil
}

func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &ProviderError{Provider: environment.ProviderGemini, StatusCode: geminiStatusCode(err), Err: err}
	}

	text, err := geminiResponseText(resp)
	if err != nil {
		return "", &ProviderError{Provider: environment.ProviderGemini, Err: err}
	}
	return text, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

// geminiResponseText joins the text parts of the first candidate.
func geminiResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			return "", fmt.Errorf("%w: prompt blocked (%s)", ErrEmptyCompletion, resp.PromptFeedback.BlockReason)
		}
		return "", ErrEmptyCompletion
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", ErrEmptyCompletion
	}

	var sb strings.Builder
	found := false
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
			found = true
		}
	}
	if !found {
		return "", ErrEmptyCompletion
	}
	return sb.String(), nil
}

// geminiStatusCode extracts the HTTP status from the errors returned by the
// Google client libraries, mapping gRPC codes when no HTTP code is present.
// Gemini answers a bad key with 400 INVALID_ARGUMENT, so the error reason is
// checked first.
func geminiStatusCode(err error) int {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Reason() == "API_KEY_INVALID" {
			return http.StatusUnauthorized
		}
		if code := apiErr.HTTPCode(); code > 0 {
			return code
		}
		switch apiErr.GRPCStatus().Code() {
		case codes.Unauthenticated:
			return http.StatusUnauthorized
		case codes.PermissionDenied:
			return http.StatusForbidden
		case codes.ResourceExhausted:
			return http.StatusTooManyRequests
		case codes.InvalidArgument:
			return http.StatusBadRequest
		case codes.Unavailable:
			return http.StatusServiceUnavailable
		}
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		// A bare googleapi.Error keeps the raw body; parse it for the reason.
		if parsed, ok := apierror.FromError(gErr); ok && parsed.Reason() == "API_KEY_INVALID" {
			return http.StatusUnauthorized
		}
		return gErr.Code
	}
	return 0
}
