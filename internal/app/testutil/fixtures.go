package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"batch-transcriber/internal/app/model"
)

// PlaceholderAudio is written into fixture files; nothing in the tests decodes it.
var PlaceholderAudio = []byte("ID3\x03\x00\x00\x00\x00\x00\x00fake-audio")

// DeepgramResponse renders a pre-recorded /listen response body whose
// paragraphs contain the given sentences.
func DeepgramResponse(paragraphs ...[]string) string {
	type sentence struct {
		Text  string  `json:"text"`
		Start float64 `json:"start"`
		End   float64 `json:"end"`
	}
	type paragraph struct {
		Sentences []sentence `json:"sentences"`
		NumWords  int        `json:"num_words"`
	}

	paras := make([]paragraph, 0, len(paragraphs))
	var start float64
	for _, texts := range paragraphs {
		p := paragraph{Sentences: make([]sentence, 0, len(texts))}
		for _, text := range texts {
			p.Sentences = append(p.Sentences, sentence{Text: text, Start: start, End: start + 1.5})
			start += 1.5
		}
		paras = append(paras, p)
	}

	body := map[string]interface{}{
		"metadata": map[string]interface{}{
			"request_id": "00000000-0000-0000-0000-000000000000",
			"duration":   start,
			"channels":   1,
		},
		"results": map[string]interface{}{
			"channels": []interface{}{
				map[string]interface{}{
					"alternatives": []interface{}{
						map[string]interface{}{
							"transcript": "",
							"confidence": 0.99,
							"paragraphs": map[string]interface{}{
								"transcript": "",
								"paragraphs": paras,
							},
						},
					},
				},
			},
		},
	}

	data, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// WriteFile creates dir/name with content and returns the path.
func WriteFile(t testing.TB, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

// WriteAudioFile creates a placeholder audio file and returns its directory entry.
func WriteAudioFile(t testing.TB, dir, name string) model.AudioFile {
	t.Helper()
	WriteFile(t, dir, name, PlaceholderAudio)
	return model.NewAudioFile(dir, name)
}

// CaptureLogger returns a logger whose entries at or above level are recorded.
func CaptureLogger(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}
