package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "transcribe"

// RunMetrics holds the counters for a single batch run on a private registry.
type RunMetrics struct {
	registry *prometheus.Registry

	Files          prometheus.Counter
	Skipped        prometheus.Counter
	CostDollars    prometheus.Counter
	RequestSeconds prometheus.Counter
	AudioMinutes   prometheus.Counter
}

// NewRunMetrics creates and registers the run counters.
func NewRunMetrics() *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		Files: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_total",
			Help:      "Audio files transcribed and saved.",
		}),
		Skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_total",
			Help:      "Directory entries skipped for an unsupported extension.",
		}),
		CostDollars: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cost_dollars_total",
			Help:      "Estimated transcription cost in dollars.",
		}),
		RequestSeconds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_seconds_total",
			Help:      "Wall-clock seconds spent waiting on the transcription service.",
		}),
		AudioMinutes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audio_minutes_total",
			Help:      "Minutes of audio submitted for transcription.",
		}),
	}

	m.registry.MustRegister(m.Files, m.Skipped, m.CostDollars, m.RequestSeconds, m.AudioMinutes)
	return m
}

// ObserveTranscription records one saved transcript.
func (m *RunMetrics) ObserveTranscription(cost, requestSeconds, audioMinutes float64) {
	if m == nil {
		return
	}
	m.Files.Inc()
	m.CostDollars.Add(cost)
	m.RequestSeconds.Add(requestSeconds)
	m.AudioMinutes.Add(audioMinutes)
}

// ObserveSkip records one skipped entry.
func (m *RunMetrics) ObserveSkip() {
	if m == nil {
		return
	}
	m.Skipped.Inc()
}

// Registry exposes the run registry as a Gatherer.
func (m *RunMetrics) Registry() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the registry in node_exporter textfile collector format.
// An empty path disables the export.
func (m *RunMetrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
