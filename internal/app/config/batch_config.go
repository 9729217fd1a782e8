package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	apperrors "batch-transcriber/internal/app/errors"
	envconfig "batch-transcriber/internal/config"
)

// DefaultConfigFile is read when present and no --config path is given.
const DefaultConfigFile = "transcribe.yaml"

// BatchConfig holds every recognized option of a batch run.
type BatchConfig struct {
	InputDirectory     string   `yaml:"input_directory" validate:"required"`
	OutputDirectory    string   `yaml:"output_directory" validate:"required"`
	AcceptedExtensions []string `yaml:"accepted_extensions" validate:"required,min=1,dive,startswith=."`
	CostPerMinute      float64  `yaml:"cost_per_minute" validate:"gte=0"`

	Provider string `yaml:"provider" validate:"required,oneof=deepgram openai"`
	// Model is the provider-specific model id; empty selects the provider default.
	Model      string `yaml:"model,omitempty"`
	Language   string `yaml:"language" validate:"required"`
	BaseURL    string `yaml:"base_url,omitempty" validate:"omitempty,url"`
	TimeoutSec int    `yaml:"timeout_sec,omitempty" validate:"gte=0"`

	// MetricsTextfile, when set, receives the run counters in Prometheus text format.
	MetricsTextfile string `yaml:"metrics_textfile,omitempty"`
	// ReportFile, when set, receives a per-file cost report as an .xlsx workbook.
	ReportFile string `yaml:"report_file,omitempty" validate:"omitempty,endswith=.xlsx"`
}

// DefaultBatchConfig returns the built-in configuration.
func DefaultBatchConfig() *BatchConfig {
	return &BatchConfig{
		InputDirectory:     "./input/",
		OutputDirectory:    "./output/",
		AcceptedExtensions: []string{".mp3", ".wav", ".m4a"},
		CostPerMinute:      envconfig.DefaultCostPerMinute,
		Provider:           envconfig.DefaultProvider,
		Language:           envconfig.DefaultLanguage,
	}
}

// LoadBatchConfig reads a YAML file on top of the defaults. Fields absent from the file keep
// their default values.
func LoadBatchConfig(configPath string) (*BatchConfig, error) {
	config := DefaultBatchConfig()

	configPath = os.ExpandEnv(configPath)
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.KindConfig, "failed to read config file %s", configPath)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.KindConfig, "failed to parse YAML in %s", configPath)
	}

	return config, nil
}

// SaveBatchConfig writes the configuration as YAML, creating parent directories.
func SaveBatchConfig(config *BatchConfig, configPath string) error {
	configPath = os.ExpandEnv(configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.Wrap(err, apperrors.KindIO, "failed to create config directory")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindConfig, "failed to marshal config to YAML")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return apperrors.Wrap(err, apperrors.KindIO, "failed to write config file")
	}

	return nil
}

// ApplyEnv overrides fields from TRANSCRIBE_* variables returned by lookup.
func (c *BatchConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("TRANSCRIBE_INPUT_DIR"); ok && v != "" {
		c.InputDirectory = v
	}
	if v, ok := lookup("TRANSCRIBE_OUTPUT_DIR"); ok && v != "" {
		c.OutputDirectory = v
	}
	if v, ok := lookup("TRANSCRIBE_EXTENSIONS"); ok && v != "" {
		c.AcceptedExtensions = splitExtensions(v)
	}
	if v, ok := lookup("TRANSCRIBE_COST_PER_MINUTE"); ok && v != "" {
		rate, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return apperrors.InvalidField("TRANSCRIBE_COST_PER_MINUTE", err.Error())
		}
		c.CostPerMinute = rate
	}
	if v, ok := lookup("TRANSCRIBE_PROVIDER"); ok && v != "" {
		c.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup("TRANSCRIBE_MODEL"); ok && v != "" {
		c.Model = v
	}
	if v, ok := lookup("TRANSCRIBE_LANGUAGE"); ok && v != "" {
		c.Language = v
	}
	if v, ok := lookup("TRANSCRIBE_BASE_URL"); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := lookup("TRANSCRIBE_TIMEOUT_SEC"); ok && v != "" {
		sec, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return apperrors.InvalidField("TRANSCRIBE_TIMEOUT_SEC", err.Error())
		}
		c.TimeoutSec = sec
	}
	if v, ok := lookup("TRANSCRIBE_METRICS_TEXTFILE"); ok && v != "" {
		c.MetricsTextfile = v
	}
	if v, ok := lookup("TRANSCRIBE_REPORT_FILE"); ok && v != "" {
		c.ReportFile = v
	}
	return nil
}

// Validate checks struct tags and returns a config-kind error listing every failing field.
func (c *BatchConfig) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.ErrInvalidConfig.WithCause(err)
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s'", fe.Namespace(), fe.Tag()))
	}
	return apperrors.ErrInvalidConfig.WithCause(fmt.Errorf("%s", strings.Join(msgs, "; ")))
}

// Resolve builds the effective configuration: defaults, then the YAML file, then the environment.
// An explicit path must exist; the default path is read only when present.
func Resolve(configPath string) (*BatchConfig, error) {
	var (
		config *BatchConfig
		err    error
	)

	switch {
	case configPath != "":
		config, err = LoadBatchConfig(configPath)
	case fileExists(DefaultConfigFile):
		config, err = LoadBatchConfig(DefaultConfigFile)
	default:
		config = DefaultBatchConfig()
	}
	if err != nil {
		return nil, err
	}

	if err := config.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// IsAccepted reports whether ext (with leading dot) is in AcceptedExtensions. Matching is
// exact, so ".MP3" needs its own entry.
func (c *BatchConfig) IsAccepted(ext string) bool {
	return lo.Contains(c.AcceptedExtensions, ext)
}

func splitExtensions(v string) []string {
	var exts []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		exts = append(exts, part)
	}
	return exts
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
