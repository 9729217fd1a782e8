package files

import (
	"fmt"
	"os"
	"path/filepath"

	apperrors "batch-transcriber/internal/app/errors"
	"batch-transcriber/internal/app/model"
)

// TranscriptSuffix is appended to the input base name to form the output file name.
const TranscriptSuffix = "_transcript.txt"

// CheckAndCreateDirectory creates dir (and parents) when it does not exist yet.
func CheckAndCreateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return apperrors.ErrDirectoryFailed.WithCause(fmt.Errorf("%s exists and is not a directory", dir))
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return apperrors.ErrDirectoryFailed.WithCause(err)
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return apperrors.ErrDirectoryFailed.WithCause(err)
	}
	return nil
}

// ListDirectory returns every entry of inputDir as an AudioFile, in the order os.ReadDir
// yields them (sorted by file name).
func ListDirectory(inputDir string) ([]model.AudioFile, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, apperrors.ErrDirectoryFailed.WithCause(err)
	}

	fileInfos := make([]model.AudioFile, 0, len(entries))
	for _, entry := range entries {
		f := model.NewAudioFile(inputDir, entry.Name())
		f.IsDir = entry.IsDir()
		if info, err := entry.Info(); err == nil {
			f.ModTime = info.ModTime()
		}
		fileInfos = append(fileInfos, f)
	}
	return fileInfos, nil
}

// TranscriptPath returns <outputDir>/<base name>_transcript.txt for file.
func TranscriptPath(outputDir string, file model.AudioFile) string {
	return filepath.Join(outputDir, file.BaseName+TranscriptSuffix)
}

// AppendToFile appends text to path, creating the file when absent. The handle is closed
// before returning.
func AppendToFile(path string, text string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return apperrors.ErrFileWriteFailed.WithCause(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = apperrors.ErrFileWriteFailed.WithCause(cerr)
		}
	}()

	if _, err := f.WriteString(text); err != nil {
		return apperrors.ErrFileWriteFailed.WithCause(err)
	}
	return nil
}

// GetAbsolutePath resolves path against the working directory.
func GetAbsolutePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", apperrors.ErrDirectoryFailed.WithCause(err)
	}
	return abs, nil
}

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", apperrors.ErrFileOpenFailed.WithCause(err)
	}
	return string(content), nil
}
