package host

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kavirubc/openai-completions/internal/completion"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "openai key",
			input: "key is sk-abcdefghijklmnopqrstuvwxyz123456",
			want:  "key is " + RedactedPlaceholder,
		},
		{
			name:  "project key",
			input: "sk-proj-abcdefghijklmnopqrstuv_wxyz",
			want:  RedactedPlaceholder,
		},
		{
			name:  "bearer header",
			input: "Authorization: Bearer abc.def-ghi",
			want:  "Authorization: " + RedactedPlaceholder,
		},
		{
			name:  "plain text",
			input: "Model: gpt-4o",
			want:  "Model: gpt-4o",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Redact(tt.input); got != tt.want {
				t.Errorf("Redact(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func newTestRuntime(values map[string]string, level completion.Level) (*Runtime, *bytes.Buffer) {
	var buf bytes.Buffer
	r := NewRuntime(values, WithLogger(log.New(&buf, "", 0)), WithLevel(level))
	return r, &buf
}

func TestRuntime_Log_Level(t *testing.T) {
	r, buf := newTestRuntime(nil, completion.LevelWarn)

	r.Log(completion.LevelError, "failed")
	r.Log(completion.LevelWarn, "careful")
	r.Log(completion.LevelInfo, "chatty")
	r.Log(completion.LevelDebug, "noisy")

	out := buf.String()
	if !strings.Contains(out, "[error] failed") || !strings.Contains(out, "[warn] careful") {
		t.Errorf("missing expected log lines: %q", out)
	}
	if strings.Contains(out, "chatty") || strings.Contains(out, "noisy") {
		t.Errorf("log contains lines above configured level: %q", out)
	}
}

func TestRuntime_Log_Off(t *testing.T) {
	r, buf := newTestRuntime(nil, completion.LevelOff)

	r.Log(completion.LevelError, "failed")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestRuntime_Log_RedactsConfiguredKey(t *testing.T) {
	r, buf := newTestRuntime(map[string]string{completion.KeyAPIKey: "short-key"}, completion.LevelDebug)

	r.Log(completion.LevelDebug, "using short-key")

	if strings.Contains(buf.String(), "short-key") {
		t.Errorf("log leaks configured key: %q", buf.String())
	}
}

func TestRuntime_Config(t *testing.T) {
	values := map[string]string{completion.KeyModel: "4o"}
	r := NewRuntime(values)
	values[completion.KeyModel] = "mutated"

	if got, ok := r.Config(completion.KeyModel); !ok || got != "4o" {
		t.Errorf("Config(model) = %q, %v, want 4o, true", got, ok)
	}
	if _, ok := r.Config(completion.KeyRole); ok {
		t.Error("Config(role) should be unset")
	}

	r.Set(completion.KeyModel, "")
	if got, _ := r.Config(completion.KeyModel); got != "4o" {
		t.Errorf("empty Set overrode value: %q", got)
	}
	r.Set(completion.KeyModel, "35t")
	if got, _ := r.Config(completion.KeyModel); got != "35t" {
		t.Errorf("Config(model) = %q, want 35t", got)
	}
}

// rewriteTransport sends every request to a test server, keeping the path
type rewriteTransport struct {
	target string
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	u := *req.URL
	u.Scheme = "http"
	u.Host = strings.TrimPrefix(t.target, "http://")
	out.URL = &u
	out.Host = u.Host
	return http.DefaultTransport.RoundTrip(out)
}

func TestRuntime_Complete_EndToEnd(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		io.Copy(io.Discard, r.Body) //nolint:errcheck
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`) //nolint:errcheck
	}))
	defer srv.Close()

	client := &http.Client{Transport: rewriteTransport{target: srv.URL}}
	r, buf := newTestRuntime(map[string]string{completion.KeyAPIKey: "sk-end-to-end-secret-key-value"}, completion.LevelDebug)
	r.client = client

	got, err := completion.New(r).Complete(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "hello\n" {
		t.Errorf("Complete() = %q, want %q", got, "hello\n")
	}
	if gotAuth != "Bearer sk-end-to-end-secret-key-value" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotPath != "/v1/chat/completions" {
		t.Errorf("path = %q, want /v1/chat/completions", gotPath)
	}
	if strings.Contains(buf.String(), "sk-end-to-end-secret-key-value") {
		t.Errorf("log leaks api key: %q", buf.String())
	}
}
