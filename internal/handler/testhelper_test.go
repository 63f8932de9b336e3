package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/remastershadhi/api/internal/client"
	"github.com/remastershadhi/api/internal/config"
	"github.com/remastershadhi/api/internal/service"
)

const proxyPath = config.DefaultProxyPath

// echoGenerator answers like a model that repeats its input.
type echoGenerator struct {
	mu    sync.Mutex
	calls int
	text  *string
	err   error
}

func (g *echoGenerator) GenerateText(_ context.Context, _, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	if g.text != nil {
		return *g.text, nil
	}
	return "echo:" + prompt, nil
}

func (g *echoGenerator) DescribeImage(_ context.Context, data []byte, mimeType, _ string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	if g.text != nil {
		return *g.text, nil
	}
	return "image:" + mimeType + ":" + string(data), nil
}

// testApp holds all components needed for testing
type testApp struct {
	app    *fiber.App
	gen    *echoGenerator
	apiKey string
}

// setupApp creates a Fiber app wired like main.go, with a fake upstream model
// and unconfigured storage so export links use the mock fallback.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	ta := &testApp{gen: &echoGenerator{}, apiKey: "test-key"}

	validate := validator.New()

	lyricsService := service.NewLyricsService(func(context.Context, string) (client.ContentGenerator, error) {
		return ta.gen, nil
	})
	exportService := service.NewExportService(nil, 0)

	proxyHandler := NewProxyHandler(lyricsService, validate, func() string { return ta.apiKey })
	exportHandler := NewExportHandler(exportService, validate)

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.All(proxyPath, proxyHandler.Handle)

	api := app.Group("/api")
	api.Post("/export", exportHandler.Download)
	api.Post("/export/link", exportHandler.Link)

	ta.app = app
	return ta
}

// doRequest is a helper to perform HTTP requests against the test app.
func doRequest(app *fiber.App, method, path string, body string, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, path, bodyReader)
	if err != nil {
		return nil, err
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.Test(req, -1)
}

// readBody reads and returns the response body as a string.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(b)
}

// parseJSON parses response body into a map.
func parseJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	body := readBody(t, resp)
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, body)
	}
	return result
}

// assertStatus checks the HTTP status code.
func assertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("expected status %d, got %d", expected, resp.StatusCode)
	}
}

// assertError checks the flat error envelope.
func assertError(t *testing.T, resp *http.Response, status int, message string) {
	t.Helper()
	assertStatus(t, resp, status)
	body := parseJSON(t, resp)
	if body["error"] != message {
		t.Errorf("expected error %q, got %v", message, body["error"])
	}
}
