package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adeyemio/kobo/internal/common"
	"github.com/adeyemio/kobo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() model.Snapshot {
	u := model.NewUser("ada", "pw")
	return u.Snapshot()
}

func TestTogetherClientRequiresAPIKey(t *testing.T) {
	_, err := newTogetherClient(Config{Provider: "together"})
	require.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestTogetherClientAdvise(t *testing.T) {
	var gotRequest map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "[Summary]\nYou have $100 left."}},
			},
		})
	}))
	defer server.Close()

	client, err := newTogetherClient(Config{
		Provider: "together",
		APIKey:   "test-key",
		BaseURL:  server.URL,
		Model:    "test-model",
	})
	require.NoError(t, err)

	text, err := client.Advise(context.Background(), testSnapshot())
	require.NoError(t, err)
	assert.Equal(t, "[Summary]\nYou have ₦100 left.", text, "currency symbols are normalized")

	assert.Equal(t, "test-model", gotRequest["model"])
	messages, ok := gotRequest["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)

	system, ok := messages[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "system", system["role"])

	user, ok := messages[1].(map[string]any)
	require.True(t, ok)
	prompt, _ := user["content"].(string)
	assert.Contains(t, prompt, `"username": "ada"`, "the prompt embeds the serialized snapshot")
	assert.Contains(t, prompt, "[Summary]")
	assert.Contains(t, prompt, "[Budget Recommendations]")
}

func TestTogetherClientRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := newTogetherClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Advise(context.Background(), testSnapshot())
	require.ErrorIs(t, err, common.ErrRateLimit)
}

func TestTogetherClientServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := newTogetherClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Advise(context.Background(), testSnapshot())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestTogetherClientEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client, err := newTogetherClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Advise(context.Background(), testSnapshot())
	require.Error(t, err)
}
