package audio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	apperrors "batch-transcriber/internal/app/errors"
	"batch-transcriber/internal/app/model"
)

// DurationReader returns the playable length of an audio file in seconds.
type DurationReader interface {
	Duration(filePath string) (float64, error)
}

// FFProbeReader reads container metadata with the ffprobe binary.
type FFProbeReader struct {
	Binary string
}

func NewFFProbeReader() *FFProbeReader {
	return &FFProbeReader{Binary: "ffprobe"}
}

// Duration runs ffprobe against filePath and parses format.duration.
func (r *FFProbeReader) Duration(filePath string) (float64, error) {
	binary := r.Binary
	if binary == "" {
		binary = "ffprobe"
	}

	cmd := exec.Command(binary, "-v", "error", "-show_entries", "format=duration", "-of", "json", filePath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return 0, apperrors.ErrDurationUnavailable.WithCause(
			fmt.Errorf("ffprobe %s: %v, stderr: %s", filePath, err, strings.TrimSpace(stderr.String())))
	}

	duration, err := ParseFFProbeDuration(output)
	if err != nil {
		return 0, apperrors.ErrDurationUnavailable.WithCause(fmt.Errorf("%s: %w", filePath, err))
	}
	return duration, nil
}

// ParseFFProbeDuration extracts format.duration (seconds) from ffprobe JSON output.
func ParseFFProbeDuration(output []byte) (float64, error) {
	var probeOutput model.FFProbeOutput
	if err := json.Unmarshal(output, &probeOutput); err != nil {
		return 0, fmt.Errorf("decode ffprobe output: %w", err)
	}

	raw := strings.TrimSpace(probeOutput.Format.Duration)
	if raw == "" || raw == "N/A" {
		return 0, fmt.Errorf("no duration in ffprobe output")
	}

	duration, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", raw, err)
	}
	if duration < 0 {
		return 0, fmt.Errorf("negative duration %v", duration)
	}
	return duration, nil
}

// DurationMinutes converts a reader result to minutes.
func DurationMinutes(reader DurationReader, filePath string) (float64, error) {
	seconds, err := reader.Duration(filePath)
	if err != nil {
		return 0, err
	}
	return seconds / 60, nil
}
