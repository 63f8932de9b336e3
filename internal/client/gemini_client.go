package client

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ContentGenerator is the upstream model as seen by the proxy service.
type ContentGenerator interface {
	GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error)
	DescribeImage(ctx context.Context, data []byte, mimeType, instruction string) (string, error)
}

// GeneratorFactory builds a ContentGenerator for one request. The proxy reads
// the credential per request, so clients are not shared.
type GeneratorFactory func(ctx context.Context, apiKey string) (ContentGenerator, error)

// GeminiClient wraps the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini API client for model.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// NewGeminiFactory returns a GeneratorFactory bound to model.
func NewGeminiFactory(model string) GeneratorFactory {
	return func(ctx context.Context, apiKey string) (ContentGenerator, error) {
		return NewGeminiClient(ctx, apiKey, model)
	}
}

// GenerateText sends a single text prompt with a system instruction.
func (c *GeminiClient) GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractText(resp), nil
}

// DescribeImage sends the image inline, followed by the instruction text.
func (c *GeminiClient) DescribeImage(ctx context.Context, data []byte, mimeType, instruction string) (string, error) {
	parts := []*genai.Part{
		{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
		genai.NewPartFromText(instruction),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to describe image: %w", err)
	}

	return extractText(resp), nil
}

// extractText returns the text of the first candidate, or "" for no response.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Text()
}
