package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/remastershadhi/api/internal/config"
	"github.com/remastershadhi/api/internal/ingest"
	"github.com/remastershadhi/api/internal/model"
)

// Fallback messages used when the proxy gives no usable error text.
const (
	MsgLyricsFailed      = "Failed to generate lyrics via proxy."
	MsgLyricsEmpty       = "The model did not return any lyrics. Please try again with a different theme."
	MsgDescriptionFailed = "Failed to generate image description via proxy."
	MsgDescriptionEmpty  = "The model could not describe the image."
)

// GatewayClient talks to the proxy endpoint. Each call is exactly one POST;
// nothing is retried.
type GatewayClient struct {
	httpClient *http.Client
	endpoint   string
}

// NewGatewayClient creates a client for the proxy at cfg.Endpoint. A zero
// timeout leaves cancellation entirely to the caller's context.
func NewGatewayClient(cfg *config.ClientConfig) *GatewayClient {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = config.DefaultEndpoint
	}
	return &GatewayClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		endpoint: endpoint,
	}
}

// Endpoint returns the proxy URL this client posts to.
func (c *GatewayClient) Endpoint() string {
	return c.endpoint
}

// RequestLyrics asks the proxy to generate lyrics for prompt.
func (c *GatewayClient) RequestLyrics(ctx context.Context, prompt string) (string, error) {
	req := &model.ProxyRequest{
		Action: model.ActionGenerateLyrics,
		Prompt: prompt,
	}
	return c.do(ctx, req, MsgLyricsFailed, MsgLyricsEmpty)
}

// RequestImageDescription reads f, base64 encodes it and asks the proxy to
// describe it. A read failure is an EncodingError and nothing is sent.
func (c *GatewayClient) RequestImageDescription(ctx context.Context, f *ingest.File) (string, error) {
	data, err := f.ReadAll(ctx)
	if err != nil {
		return "", &EncodingError{Name: f.Name, Err: err}
	}

	req := &model.ProxyRequest{
		Action: model.ActionGenerateImageDescription,
		File: &model.InlineFile{
			Data:     base64.StdEncoding.EncodeToString(data),
			MIMEType: f.MIMEType,
		},
	}
	return c.do(ctx, req, MsgDescriptionFailed, MsgDescriptionEmpty)
}

func (c *GatewayClient) do(ctx context.Context, body *model.ProxyRequest, failedMsg, emptyMsg string) (string, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return "", &GatewayError{Message: failedMsg, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", &GatewayError{Message: failedMsg, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &GatewayError{Message: failedMsg, Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GatewayError{Message: failedMsg, Status: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	var proxyResp model.ProxyResponse
	parseErr := json.Unmarshal(respBody, &proxyResp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := failedMsg
		if parseErr == nil && proxyResp.Error != "" {
			msg = proxyResp.Error
		}
		return "", &GatewayError{Message: msg, Status: resp.StatusCode, Err: fmt.Errorf("proxy error (status %d)", resp.StatusCode)}
	}

	if parseErr != nil {
		return "", &GatewayError{Message: failedMsg, Status: resp.StatusCode, Err: fmt.Errorf("failed to unmarshal response: %w", parseErr)}
	}

	if proxyResp.Result == "" {
		return "", &GatewayError{Message: emptyMsg, Status: resp.StatusCode}
	}

	return proxyResp.Result, nil
}
