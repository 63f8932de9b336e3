package handler

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/remastershadhi/api/pkg/response"
)

func TestProxy_MethodNotAllowed(t *testing.T) {
	ta := setupApp(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		resp, err := doRequest(ta.app, method, proxyPath, "", nil)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}

		assertStatus(t, resp, http.StatusMethodNotAllowed)
		if body := readBody(t, resp); body != "Method Not Allowed" {
			t.Errorf("%s: expected plain text body, got %q", method, body)
		}
	}
}

func TestProxy_MethodCheckedBeforeKey(t *testing.T) {
	ta := setupApp(t)
	ta.apiKey = ""

	resp, err := doRequest(ta.app, http.MethodGet, proxyPath, "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusMethodNotAllowed)
}

func TestProxy_MissingAPIKey(t *testing.T) {
	ta := setupApp(t)
	ta.apiKey = ""

	resp, err := doRequest(ta.app, http.MethodPost, proxyPath, `{"action":"generateLyrics","prompt":"x"}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertError(t, resp, http.StatusInternalServerError, response.MsgAPIKeyMissing)
	if ta.gen.calls != 0 {
		t.Errorf("expected no upstream calls, got %d", ta.gen.calls)
	}
}

func TestProxy_KeyReadPerRequest(t *testing.T) {
	ta := setupApp(t)
	body := `{"action":"generateLyrics","prompt":"x"}`

	ta.apiKey = ""
	resp, _ := doRequest(ta.app, http.MethodPost, proxyPath, body, nil)
	assertStatus(t, resp, http.StatusInternalServerError)

	ta.apiKey = "rotated"
	resp, _ = doRequest(ta.app, http.MethodPost, proxyPath, body, nil)
	assertStatus(t, resp, http.StatusOK)
}

func TestProxy_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"empty body", "", response.MsgInvalidAction},
		{"empty object", `{}`, response.MsgInvalidAction},
		{"malformed json", `{"action":`, response.MsgInvalidAction},
		{"json null", `null`, response.MsgInvalidAction},
		{"unknown action", `{"action":"deleteEverything","prompt":"x"}`, response.MsgInvalidAction},
		{"action wrong type", `{"action":42}`, response.MsgInvalidAction},
		{"lyrics without prompt", `{"action":"generateLyrics"}`, response.MsgPromptRequired},
		{"lyrics with empty prompt", `{"action":"generateLyrics","prompt":""}`, response.MsgPromptRequired},
		{"description without file", `{"action":"generateImageDescription"}`, response.MsgFileDataRequired},
		{"description without data", `{"action":"generateImageDescription","file":{"mimeType":"image/png"}}`, response.MsgFileDataRequired},
		{"description without mime", `{"action":"generateImageDescription","file":{"data":"aGk="}}`, response.MsgFileDataRequired},
		{"description with prompt only", `{"action":"generateImageDescription","prompt":"x"}`, response.MsgFileDataRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := setupApp(t)

			resp, err := doRequest(ta.app, http.MethodPost, proxyPath, tt.body, nil)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}

			assertError(t, resp, http.StatusBadRequest, tt.message)
			if ta.gen.calls != 0 {
				t.Errorf("expected no upstream calls, got %d", ta.gen.calls)
			}
		})
	}
}

func TestProxy_GenerateLyrics(t *testing.T) {
	ta := setupApp(t)

	resp, err := doRequest(ta.app, http.MethodPost, proxyPath, `{"action":"generateLyrics","prompt":"hello"}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)
	body := parseJSON(t, resp)
	if body["result"] != "echo:hello" {
		t.Errorf("expected result 'echo:hello', got %v", body["result"])
	}
	if _, ok := body["error"]; ok {
		t.Error("unexpected 'error' field in success response")
	}
}

func TestProxy_GenerateLyricsIgnoresFile(t *testing.T) {
	ta := setupApp(t)

	resp, err := doRequest(ta.app, http.MethodPost, proxyPath, `{"action":"generateLyrics","prompt":"hello","file":{}}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)
}

func TestProxy_GenerateImageDescription(t *testing.T) {
	ta := setupApp(t)
	data := base64.StdEncoding.EncodeToString([]byte("PIXELS"))

	resp, err := doRequest(ta.app, http.MethodPost, proxyPath, `{"action":"generateImageDescription","file":{"data":"`+data+`","mimeType":"image/webp"}}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)
	body := parseJSON(t, resp)
	if body["result"] != "image:image/webp:PIXELS" {
		t.Errorf("unexpected result %v", body["result"])
	}
}

func TestProxy_EmptyModelText(t *testing.T) {
	ta := setupApp(t)
	empty := ""
	ta.gen.text = &empty

	resp, err := doRequest(ta.app, http.MethodPost, proxyPath, `{"action":"generateLyrics","prompt":"x"}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)
	body := parseJSON(t, resp)
	if body["result"] != "" {
		t.Errorf("expected empty result, got %v", body["result"])
	}
}

func TestProxy_UpstreamFailureHidesCause(t *testing.T) {
	ta := setupApp(t)
	ta.gen.err = errors.New("quota exceeded for project secret-project-42")

	resp, err := doRequest(ta.app, http.MethodPost, proxyPath, `{"action":"generateLyrics","prompt":"x"}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusInternalServerError)
	body := readBody(t, resp)
	if strings.Contains(body, "secret-project-42") || strings.Contains(body, "quota") {
		t.Errorf("upstream detail leaked: %s", body)
	}
	if !strings.Contains(body, response.MsgUpstreamFailure) {
		t.Errorf("expected generic upstream message, got %s", body)
	}
}

func TestProxy_InvalidBase64IsUpstreamFailure(t *testing.T) {
	ta := setupApp(t)

	resp, err := doRequest(ta.app, http.MethodPost, proxyPath, `{"action":"generateImageDescription","file":{"data":"@@@","mimeType":"image/png"}}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertError(t, resp, http.StatusInternalServerError, response.MsgUpstreamFailure)
}
