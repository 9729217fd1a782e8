// Package testutil provides shared test doubles and fixtures for the batch transcriber.
//
// It contains two components:
//
// 1. Mocks (mock_transcriber.go):
//   - MockTranscriber: testify mock of api.Transcriber, with helpers for canned transcripts
//   - MockDurationReader: testify mock of audio.DurationReader
//
// 2. Fixtures (fixtures.go):
//   - DeepgramResponse: builds a pre-recorded response body with paragraphs enabled
//   - WriteAudioFile / WriteFile: create placeholder input files in a temp directory
//   - CaptureLogger: a zap logger backed by an observer for asserting log output
//
// # Usage Examples
//
//	transcriber := testutil.NewMockTranscriber()
//	transcriber.ExpectTranscript("a.mp3", []string{"Hello world."})
//
//	durations := testutil.NewMockDurationReader()
//	durations.ExpectDuration("a.mp3", 120)
//
//	file := testutil.WriteAudioFile(t, dir, "a.mp3")
package testutil
