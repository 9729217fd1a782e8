package whisper

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"batch-transcriber/internal/app/api/provider"
	apperrors "batch-transcriber/internal/app/errors"
	"batch-transcriber/internal/app/testutil"
)

const testAPIKey = "sk-test-0123456789abcdefghij"

type capturedRequest struct {
	path     string
	auth     string
	model    string
	format   string
	language string
	filename string
}

func newTestTranscriber(t *testing.T, status int, body string) (*RemoteTranscriber, *capturedRequest) {
	t.Helper()
	got := &capturedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.path = r.URL.Path
		got.auth = r.Header.Get("Authorization")
		if err := r.ParseMultipartForm(10 << 20); err == nil {
			got.model = r.FormValue("model")
			got.format = r.FormValue("response_format")
			got.language = r.FormValue("language")
			if _, header, err := r.FormFile("file"); err == nil {
				got.filename = header.Filename
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	rt := NewRemoteTranscriber(provider.Settings{
		APIKey:  testAPIKey,
		BaseURL: server.URL + "/v1",
		Options: provider.DefaultOptions(),
	})
	return rt, got
}

func verboseJSON(t *testing.T, text string, segments ...string) string {
	t.Helper()
	segs := make([]map[string]interface{}, 0, len(segments))
	for i, s := range segments {
		segs = append(segs, map[string]interface{}{
			"id":    i,
			"start": float64(i),
			"end":   float64(i + 1),
			"text":  s,
		})
	}
	data, err := json.Marshal(map[string]interface{}{
		"task":     "transcribe",
		"language": "english",
		"duration": float64(len(segments)),
		"text":     text,
		"segments": segs,
	})
	require.NoError(t, err)
	return string(data)
}

func TestRemoteTranscriber_Transcribe(t *testing.T) {
	rt, got := newTestTranscriber(t, http.StatusOK,
		verboseJSON(t, " Hello world. How are you?", " Hello world.", " How are you?"))

	result, err := rt.Transcribe(context.Background(), testutil.WriteAudioFile(t, t.TempDir(), "a.mp3"))
	require.NoError(t, err)

	assert.Equal(t, "/v1/audio/transcriptions", got.path)
	assert.Equal(t, "Bearer "+testAPIKey, got.auth)
	assert.Equal(t, "whisper-1", got.model)
	assert.Equal(t, "verbose_json", got.format)
	assert.Equal(t, "en", got.language)
	assert.Equal(t, "a.mp3", got.filename)

	require.Len(t, result.Paragraphs, 1)
	require.Len(t, result.Paragraphs[0].Sentences, 2)
	assert.Equal(t, "Hello world.", result.Paragraphs[0].Sentences[0].Text)
	assert.Equal(t, "How are you?", result.Paragraphs[0].Sentences[1].Text)
}

func TestRemoteTranscriber_TextFallback(t *testing.T) {
	rt, _ := newTestTranscriber(t, http.StatusOK, verboseJSON(t, "Only text."))

	result, err := rt.Transcribe(context.Background(), testutil.WriteAudioFile(t, t.TempDir(), "a.mp3"))
	require.NoError(t, err)
	require.Len(t, result.Paragraphs, 1)
	assert.Equal(t, "Only text.", result.Paragraphs[0].Sentences[0].Text)
}

func TestRemoteTranscriber_Silence(t *testing.T) {
	rt, _ := newTestTranscriber(t, http.StatusOK, verboseJSON(t, ""))

	result, err := rt.Transcribe(context.Background(), testutil.WriteAudioFile(t, t.TempDir(), "a.mp3"))
	require.NoError(t, err)
	assert.Empty(t, result.Paragraphs)
}

func TestRemoteTranscriber_APIErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, code: "authentication_failed"},
		{name: "rate limited", status: http.StatusTooManyRequests, code: "rate_limit_exceeded"},
		{name: "server error", status: http.StatusInternalServerError, code: "server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, _ := newTestTranscriber(t, tt.status,
				`{"error":{"message":"nope","type":"invalid_request_error"}}`)

			_, err := rt.Transcribe(context.Background(), testutil.WriteAudioFile(t, t.TempDir(), "a.mp3"))
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrRequestFailed)

			var te *provider.TranscriptionError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tt.code, te.Code)
			assert.Equal(t, tt.status, te.StatusCode)
		})
	}
}

func TestRemoteTranscriber_MissingFile(t *testing.T) {
	rt, _ := newTestTranscriber(t, http.StatusOK, "{}")

	file := testutil.WriteAudioFile(t, t.TempDir(), "a.mp3")
	file.FullPath += ".gone"

	_, err := rt.Transcribe(context.Background(), file)
	assert.ErrorIs(t, err, apperrors.ErrFileOpenFailed)
}

func TestValidateConfiguration(t *testing.T) {
	assert.NoError(t, NewRemoteTranscriber(provider.Settings{APIKey: testAPIKey}).ValidateConfiguration())

	err := NewRemoteTranscriber(provider.Settings{APIKey: "not-openai-key-format"}).ValidateConfiguration()
	assert.ErrorIs(t, err, apperrors.ErrInvalidAPIKey)
}

func TestIsoLanguage(t *testing.T) {
	assert.Equal(t, "en", isoLanguage("en-US"))
	assert.Equal(t, "de", isoLanguage("DE"))
	assert.Equal(t, "", isoLanguage(""))
}

func TestRegisteredWithProviderRegistry(t *testing.T) {
	p, err := provider.NewProvider("openai", provider.Settings{APIKey: testAPIKey})
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
}
