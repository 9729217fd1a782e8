package testutil

import (
	"context"
	"path/filepath"

	"github.com/stretchr/testify/mock"

	"batch-transcriber/internal/app/model"
)

// MockTranscriber is a testify mock of the api.Transcriber interface.
type MockTranscriber struct {
	mock.Mock
}

// NewMockTranscriber creates an empty MockTranscriber
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// Transcribe implements the api.Transcriber interface
func (m *MockTranscriber) Transcribe(ctx context.Context, file model.AudioFile) (*model.Transcription, error) {
	args := m.Called(ctx, file)
	var result *model.Transcription
	if v := args.Get(0); v != nil {
		result = v.(*model.Transcription)
	}
	return result, args.Error(1)
}

// ExpectTranscript makes the mock return the given paragraphs once for the named file.
func (m *MockTranscriber) ExpectTranscript(name string, paragraphs ...[]string) *mock.Call {
	return m.On("Transcribe", mock.Anything, fileNamed(name)).
		Return(model.NewTranscription(paragraphs...), nil).
		Once()
}

// ExpectError makes the mock fail once for the named file.
func (m *MockTranscriber) ExpectError(name string, err error) *mock.Call {
	return m.On("Transcribe", mock.Anything, fileNamed(name)).
		Return(nil, err).
		Once()
}

// MockDurationReader is a testify mock of the audio.DurationReader interface.
type MockDurationReader struct {
	mock.Mock
}

// NewMockDurationReader creates an empty MockDurationReader
func NewMockDurationReader() *MockDurationReader {
	return &MockDurationReader{}
}

// Duration implements audio.DurationReader
func (m *MockDurationReader) Duration(path string) (float64, error) {
	args := m.Called(path)
	return args.Get(0).(float64), args.Error(1)
}

// ExpectDuration makes the mock report seconds for any path ending in name.
func (m *MockDurationReader) ExpectDuration(name string, seconds float64) *mock.Call {
	return m.On("Duration", pathNamed(name)).Return(seconds, nil)
}

// ExpectError makes the mock fail for any path ending in name.
func (m *MockDurationReader) ExpectError(name string, err error) *mock.Call {
	return m.On("Duration", pathNamed(name)).Return(float64(0), err)
}

func fileNamed(name string) interface{} {
	return mock.MatchedBy(func(f model.AudioFile) bool {
		return f.Name == name
	})
}

func pathNamed(name string) interface{} {
	return mock.MatchedBy(func(path string) bool {
		return filepath.Base(path) == name
	})
}
