package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momorit/mein-formularprojekt/internal/config"
	"github.com/momorit/mein-formularprojekt/internal/entity"
)

func groqTestConfig(baseURL string) config.GroqConfig {
	return config.GroqConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "llama3-8b-8192",
		Timeout: 5 * time.Second,
	}
}

func TestGroqProviderGenerate(t *testing.T) {
	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "Das Baujahr finden Sie im Grundbuchauszug."},
				"finish_reason": "stop"
			}]
		}`))
	}))
	defer srv.Close()

	p := NewGroqProvider(groqTestConfig(srv.URL))
	result, err := p.Generate(context.Background(), &entity.GenerationRequest{
		Prompt:  "Wo finde ich das Baujahr?",
		Context: "Feld: Baujahr",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SourceGroq, result.Source)
	assert.Equal(t, "Das Baujahr finden Sie im Grundbuchauszug.", result.Text)

	assert.Equal(t, "llama3-8b-8192", gotBody.Model)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
	assert.Contains(t, gotBody.Messages[1].Content, "Kontext: Feld: Baujahr")
	assert.Contains(t, gotBody.Messages[1].Content, "Aufgabe: Wo finde ich das Baujahr?")
}

func TestGroqProviderServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limit"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewGroqProvider(groqTestConfig(srv.URL))
	_, err := p.Generate(context.Background(), &entity.GenerationRequest{Prompt: "Baujahr?"})

	require.Error(t, err)
}

func TestGroqProviderEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`))
	}))
	defer srv.Close()

	p := NewGroqProvider(groqTestConfig(srv.URL))
	_, err := p.Generate(context.Background(), &entity.GenerationRequest{Prompt: "Baujahr?"})

	require.ErrorIs(t, err, entity.ErrEmptyResponse)
}
