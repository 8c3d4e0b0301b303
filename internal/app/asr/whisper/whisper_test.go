package whisper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lokgeet/internal/app/asr"
)

func writeTestAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF fake wav"), 0o644))
	return path
}

func newMockServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			t.Error("missing Authorization header")
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestRemoteTranscriber_Transcribe(t *testing.T) {
	tests := []struct {
		name           string
		mockResponse   string
		mockStatus     int
		wantTranscript string
		wantLanguage   string
		wantSegments   int
		expectError    bool
	}{
		{
			name: "transcript with segments and language",
			mockResponse: `{"task":"transcribe","language":"hi","duration":2.5,` +
				`"segments":[{"id":0,"seek":0,"start":0.0,"end":2.5,"text":" राम राम"}],` +
				`"text":"राम राम"}`,
			mockStatus:     http.StatusOK,
			wantTranscript: "राम राम",
			wantLanguage:   "hi",
			wantSegments:   1,
		},
		{
			name: "transcript assembled from segments when text is empty",
			mockResponse: `{"task":"transcribe","language":"hi","duration":4.0,` +
				`"segments":[{"id":0,"start":0.0,"end":2.0,"text":" पहला"},` +
				`{"id":1,"start":2.0,"end":4.0,"text":" दूसरा"}],"text":""}`,
			mockStatus:     http.StatusOK,
			wantTranscript: "पहला दूसरा",
			wantLanguage:   "hi",
			wantSegments:   2,
		},
		{
			name:           "empty transcription",
			mockResponse:   `{"task":"transcribe","language":"","duration":0,"segments":[],"text":""}`,
			mockStatus:     http.StatusOK,
			wantTranscript: "",
		},
		{
			name:         "API error - unauthorized",
			mockResponse: `{"error":{"message":"Invalid API key","type":"invalid_request_error"}}`,
			mockStatus:   http.StatusUnauthorized,
			expectError:  true,
		},
		{
			name:         "API error - server error",
			mockResponse: `{"error":{"message":"Internal server error","type":"server_error"}}`,
			mockStatus:   http.StatusInternalServerError,
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newMockServer(t, tt.mockStatus, tt.mockResponse)
			defer server.Close()

			rt := NewRemoteTranscriber("sk-test", server.URL+"/v1")
			res, err := rt.Transcribe(context.Background(), writeTestAudio(t), asr.ModelSmall)

			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTranscript, res.Transcript)
			assert.Equal(t, tt.wantLanguage, res.Language)
			assert.Len(t, res.Segments, tt.wantSegments)
		})
	}
}

func TestRemoteTranscriber_ModelSelection(t *testing.T) {
	hosted := NewRemoteTranscriber("sk-test", "")
	assert.Equal(t, "whisper-1", hosted.model(asr.ModelSmall))

	selfHosted := NewRemoteTranscriber("", "http://localhost:8080/v1")
	assert.Equal(t, "medium", selfHosted.model(asr.ModelMedium))
}

func TestResolve(t *testing.T) {
	assert.False(t, Resolve("", "").Ok())
	assert.True(t, Resolve("sk-test", "").Ok())
	assert.True(t, Resolve("", "http://localhost:8080/v1").Ok())
}
