package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatBody(content string) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	raw, _ := json.Marshal(resp)
	return string(raw)
}

func TestAnalyze(t *testing.T) {
	scoresJSON := `{"overall":84,"potential":96,"jawline":78,"symmetry":82,"skinQuality":75,"cheekbones":80,"strengths":["s1","s2","s3"],"weaknesses":["w1","w2","w3"],"tips":["t1","t2","t3"]}`

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantOK  bool
	}{
		{
			name:   "чистый JSON в содержимом",
			status: http.StatusOK,
			body:   chatBody(scoresJSON),
			wantOK: true,
		},
		{
			name:   "JSON обёрнут в markdown",
			status: http.StatusOK,
			body:   chatBody("```json\n" + scoresJSON + "\n```"),
			wantOK: true,
		},
		{
			name:    "429 от шлюза",
			status:  http.StatusTooManyRequests,
			body:    `{"error":"rate limit"}`,
			wantErr: ErrRateLimited,
		},
		{
			name:    "402 от шлюза",
			status:  http.StatusPaymentRequired,
			body:    `{"error":"no credits"}`,
			wantErr: ErrCreditsExhausted,
		},
		{
			name:    "пустой список choices",
			status:  http.StatusOK,
			body:    `{"choices":[]}`,
			wantErr: ErrEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer gw-key", r.Header.Get("Authorization"))

				var req chatRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "google/gemini-2.5-flash", req.Model)
				require.Len(t, req.Messages, 2)
				assert.Equal(t, "system", req.Messages[0].Role)
				assert.Equal(t, "user", req.Messages[1].Role)

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "gw-key", "google/gemini-2.5-flash", 5*time.Second)
			raw, err := client.Analyze(context.Background(), "aW1hZ2U=")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, raw.Overall)
			assert.Equal(t, 84, *raw.Overall)
			assert.Equal(t, []string{"s1", "s2", "s3"}, raw.Strengths)
		})
	}
}

// Raw base64 оборачивается в data-URL, готовый data-URL передаётся как есть.
func TestAnalyze_ImagePayload(t *testing.T) {
	var gotURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Content json.RawMessage `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		var parts []contentPart
		require.NoError(t, json.Unmarshal(req.Messages[1].Content, &parts))
		require.Len(t, parts, 2)
		require.NotNil(t, parts[1].ImageURL)
		gotURL = parts[1].ImageURL.URL

		_, _ = w.Write([]byte(chatBody(`{"overall":70}`)))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key", "m", time.Second)

	_, err := client.Analyze(context.Background(), "aW1hZ2U=")
	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,aW1hZ2U=", gotURL)

	_, err = client.Analyze(context.Background(), "data:image/png;base64,aW1hZ2U=")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,aW1hZ2U=", gotURL)
}

func TestExtractJSON_Malformed(t *testing.T) {
	_, err := extractJSON("sem json nenhum")
	assert.Error(t, err)
}
