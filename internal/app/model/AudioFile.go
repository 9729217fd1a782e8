package model

import (
	"path/filepath"
	"strings"
	"time"
)

// AudioFile is a single entry from the input directory listing.
type AudioFile struct {
	FullPath  string
	Name      string
	Extension string
	BaseName  string
	ModTime   time.Time
	IsDir     bool
}

// NewAudioFile derives the extension and base name from a directory entry name.
func NewAudioFile(dir string, name string) AudioFile {
	ext := filepath.Ext(name)
	return AudioFile{
		FullPath:  filepath.Join(dir, name),
		Name:      name,
		Extension: ext,
		BaseName:  strings.TrimSuffix(name, ext),
	}
}

// MimeType returns "audio/<ext>" with the leading dot removed.
func (f AudioFile) MimeType() string {
	return "audio/" + strings.TrimPrefix(strings.ToLower(f.Extension), ".")
}
