package openaicompat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-assistant/pkg/openaicompat"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		last := body.Messages[len(body.Messages)-1]
		if last.Content == "call_tool" {
			w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"m","choices":[{"index":0,"finish_reason":"tool_calls","message":{"role":"assistant","content":null,"tool_calls":[{"id":"call_1","type":"function","function":{"name":"date_tool","arguments":"{\"date\":\"today\"}"}}]}}],"usage":{"prompt_tokens":3,"completion_tokens":2,"total_tokens":5}}`))
			return
		}
		w.Write([]byte(`{"id":"c2","object":"chat.completion","created":1,"model":"m","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"hi from ` + body.Model + `"}}],"usage":{"prompt_tokens":3,"completion_tokens":2,"total_tokens":5}}`))
	}))
}

func TestNew_Validation(t *testing.T) {
	_, err := openaicompat.New(openaicompat.Config{})
	assert.Error(t, err)

	c, err := openaicompat.New(openaicompat.Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, openaicompat.DefaultModel, c.Model())
}

func TestGenerateContent(t *testing.T) {
	ts := newServer(t)
	defer ts.Close()

	c, err := openaicompat.New(openaicompat.Config{APIKey: "test-key", Model: "deepseek-chat", BaseURL: ts.URL + "/"})
	require.NoError(t, err)

	resp, err := c.GenerateContent(context.Background(), &openaicompat.Request{
		System:   "be brief",
		Messages: []openaicompat.Message{{Role: openaicompat.RoleUser, Content: "hello"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "hi from deepseek-chat", resp.Content)
	assert.Equal(t, 5, resp.Usage.TotalTokens)

	resp, err = c.GenerateContent(context.Background(), &openaicompat.Request{
		Messages: []openaicompat.Message{{Role: openaicompat.RoleUser, Content: "call_tool"}},
		Tools:    []openaicompat.Tool{{Name: "date_tool", Description: "dates", Parameters: map[string]interface{}{"type": "object"}}},
	})
	require.NoError(t, err)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "call_1", resp.ToolCalls[0].ID)
	assert.Equal(t, "date_tool", resp.ToolCalls[0].Name)
	assert.JSONEq(t, `{"date":"today"}`, resp.ToolCalls[0].Arguments)
}

func TestGenerateContent_Error(t *testing.T) {
	ts := newServer(t)
	defer ts.Close()

	c, err := openaicompat.New(openaicompat.Config{APIKey: "wrong", BaseURL: ts.URL + "/"})
	require.NoError(t, err)

	_, err = c.GenerateContent(context.Background(), &openaicompat.Request{
		Messages: []openaicompat.Message{{Role: openaicompat.RoleUser, Content: "hello"}},
	})
	assert.Error(t, err)
}
