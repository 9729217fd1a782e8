package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "batch-transcriber/internal/app/errors"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaultBatchConfig(t *testing.T) {
	config := DefaultBatchConfig()

	assert.Equal(t, "./input/", config.InputDirectory)
	assert.Equal(t, "./output/", config.OutputDirectory)
	assert.Equal(t, []string{".mp3", ".wav", ".m4a"}, config.AcceptedExtensions)
	assert.InDelta(t, 0.0043, config.CostPerMinute, 1e-12)
	assert.Equal(t, "deepgram", config.Provider)
	assert.Equal(t, "en-US", config.Language)
	assert.Empty(t, config.Model)
	assert.NoError(t, config.Validate())
}

func TestLoadBatchConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcribe.yaml")
	yamlContent := `
input_directory: /data/in
accepted_extensions: [".flac", ".ogg"]
cost_per_minute: 0.0125
model: nova-2
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	config, err := LoadBatchConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/in", config.InputDirectory)
	assert.Equal(t, "./output/", config.OutputDirectory, "unset fields keep defaults")
	assert.Equal(t, []string{".flac", ".ogg"}, config.AcceptedExtensions)
	assert.InDelta(t, 0.0125, config.CostPerMinute, 1e-12)
	assert.Equal(t, "nova-2", config.Model)
	assert.Equal(t, "deepgram", config.Provider)
}

func TestLoadBatchConfigErrors(t *testing.T) {
	_, err := LoadBatchConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConfig, apperrors.KindOf(err))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("accepted_extensions: {not: [a list"), 0644))
	_, err = LoadBatchConfig(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestSaveBatchConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "transcribe.yaml")
	original := DefaultBatchConfig()
	original.MetricsTextfile = "/var/lib/node_exporter/transcribe.prom"

	require.NoError(t, SaveBatchConfig(original, path))

	loaded, err := LoadBatchConfig(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestApplyEnv(t *testing.T) {
	config := DefaultBatchConfig()

	err := config.ApplyEnv(lookupFrom(map[string]string{
		"TRANSCRIBE_INPUT_DIR":        "/srv/audio",
		"TRANSCRIBE_EXTENSIONS":       "mp3, .FLAC ,,",
		"TRANSCRIBE_COST_PER_MINUTE":  "0.006",
		"TRANSCRIBE_PROVIDER":         " OpenAI ",
		"TRANSCRIBE_TIMEOUT_SEC":      "90",
		"TRANSCRIBE_METRICS_TEXTFILE": "run.prom",
		"TRANSCRIBE_REPORT_FILE":      "run.xlsx",
		"TRANSCRIBE_OUTPUT_DIR":       "",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/srv/audio", config.InputDirectory)
	assert.Equal(t, "./output/", config.OutputDirectory, "empty values do not override")
	assert.Equal(t, []string{".mp3", ".FLAC"}, config.AcceptedExtensions)
	assert.InDelta(t, 0.006, config.CostPerMinute, 1e-12)
	assert.Equal(t, "openai", config.Provider)
	assert.Equal(t, 90, config.TimeoutSec)
	assert.Equal(t, "run.prom", config.MetricsTextfile)
	assert.Equal(t, "run.xlsx", config.ReportFile)
}

func TestApplyEnvInvalidNumbers(t *testing.T) {
	config := DefaultBatchConfig()
	err := config.ApplyEnv(lookupFrom(map[string]string{"TRANSCRIBE_COST_PER_MINUTE": "cheap"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRANSCRIBE_COST_PER_MINUTE")

	err = config.ApplyEnv(lookupFrom(map[string]string{"TRANSCRIBE_TIMEOUT_SEC": "soon"}))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConfig, apperrors.KindOf(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(c *BatchConfig)
		errorContains string
	}{
		{name: "missing input dir", mutate: func(c *BatchConfig) { c.InputDirectory = "" }, errorContains: "InputDirectory"},
		{name: "no extensions", mutate: func(c *BatchConfig) { c.AcceptedExtensions = []string{} }, errorContains: "AcceptedExtensions"},
		{name: "extension without dot", mutate: func(c *BatchConfig) { c.AcceptedExtensions = []string{"mp3"} }, errorContains: "AcceptedExtensions[0]"},
		{name: "negative rate", mutate: func(c *BatchConfig) { c.CostPerMinute = -1 }, errorContains: "CostPerMinute"},
		{name: "bad base url", mutate: func(c *BatchConfig) { c.BaseURL = "not a url" }, errorContains: "BaseURL"},
		{name: "negative timeout", mutate: func(c *BatchConfig) { c.TimeoutSec = -5 }, errorContains: "TimeoutSec"},
		{name: "unknown provider", mutate: func(c *BatchConfig) { c.Provider = "whisper_cpp" }, errorContains: "Provider"},
		{name: "report not xlsx", mutate: func(c *BatchConfig) { c.ReportFile = "report.csv" }, errorContains: "ReportFile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultBatchConfig()
			tt.mutate(config)

			err := config.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestResolvePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_directory: from-file\noutput_directory: out-file\n"), 0644))
	t.Setenv("TRANSCRIBE_OUTPUT_DIR", "out-env")

	config, err := Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", config.InputDirectory)
	assert.Equal(t, "out-env", config.OutputDirectory)
	assert.InDelta(t, 0.0043, config.CostPerMinute, 1e-12)
}

func TestResolveWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	config, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBatchConfig(), config)

	_, err = Resolve("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestIsAccepted(t *testing.T) {
	config := DefaultBatchConfig()

	assert.True(t, config.IsAccepted(".mp3"))
	assert.False(t, config.IsAccepted(".MP3"))
	assert.False(t, config.IsAccepted(".Wav"))
	assert.False(t, config.IsAccepted(".txt"))
	assert.False(t, config.IsAccepted(""))

	config.AcceptedExtensions = append(config.AcceptedExtensions, ".MP3")
	assert.True(t, config.IsAccepted(".MP3"))
}
