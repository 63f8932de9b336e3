package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/remastershadhi/api/internal/client"
	"github.com/remastershadhi/api/internal/metrics"
	"github.com/remastershadhi/api/internal/model"
)

// Instructions sent to the model alongside the caller's input.
const (
	LyricistSystemInstruction   = "You are a creative, professional, and versatile lyricist capable of writing in multiple languages and adapting complex lyrical structures."
	ImageDescriptionInstruction = "Describe this image in a way that could inspire a song. Focus on the mood, emotions, and potential stories within the scene. Be poetic and evocative."
)

// ErrAPIKeyMissing is returned when no upstream credential is available.
var ErrAPIKeyMissing = errors.New("API key is not configured")

// UpstreamError wraps any failure between accepting a valid request and
// receiving the model's answer.
type UpstreamError struct {
	Action model.Action
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Action, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// LyricsService dispatches validated proxy requests to the Gemini API.
type LyricsService struct {
	newGenerator client.GeneratorFactory
}

// NewLyricsService creates a lyrics service that builds an upstream client
// per request with factory.
func NewLyricsService(factory client.GeneratorFactory) *LyricsService {
	return &LyricsService{
		newGenerator: factory,
	}
}

// Dispatch performs the action in req with apiKey and returns the model text.
// The text may be empty when the model produced nothing.
func (s *LyricsService) Dispatch(ctx context.Context, apiKey string, req *model.ProxyRequest) (string, error) {
	if apiKey == "" {
		return "", ErrAPIKeyMissing
	}

	start := time.Now()
	text, err := s.dispatch(ctx, apiKey, req)

	outcome := metrics.OutcomeSuccess
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case text == "":
		outcome = metrics.OutcomeEmpty
	}
	metrics.ObserveUpstream(string(req.Action), outcome, start)

	if err != nil {
		return "", &UpstreamError{Action: req.Action, Err: err}
	}
	return text, nil
}

func (s *LyricsService) dispatch(ctx context.Context, apiKey string, req *model.ProxyRequest) (string, error) {
	generator, err := s.newGenerator(ctx, apiKey)
	if err != nil {
		return "", err
	}

	switch req.Action {
	case model.ActionGenerateLyrics:
		return generator.GenerateText(ctx, LyricistSystemInstruction, req.Prompt)

	case model.ActionGenerateImageDescription:
		if req.File == nil {
			return "", errors.New("missing file")
		}
		data, err := base64.StdEncoding.DecodeString(req.File.Data)
		if err != nil {
			return "", fmt.Errorf("failed to decode file data: %w", err)
		}
		return generator.DescribeImage(ctx, data, req.File.MIMEType, ImageDescriptionInstruction)

	default:
		return "", fmt.Errorf("unsupported action %q", req.Action)
	}
}
