package assetpack

import (
	"io"
	"path/filepath"
	"strings"
)

// TypeFilter selects which resource entries a scan yields.
type TypeFilter int

const (
	// TypeAudio yields entries with a recognized audio extension.
	TypeAudio TypeFilter = iota
	// TypeAny yields every regular entry in the container.
	TypeAny
)

// audioExtensions are the clip formats game asset extractors emit.
var audioExtensions = map[string]bool{
	".wav":  true,
	".ogg":  true,
	".mp3":  true,
	".flac": true,
	".aiff": true,
}

// Entry is one resource listed in a container's index.
type Entry struct {
	// Name is the raw resource name, including any extension.
	Name string
	// Path is the handle the encoder uses to address the byte stream.
	Path string
}

// RawAsset is a scanned resource with its probed stream properties.
type RawAsset struct {
	Name string
	Path string
	// Duration is the clip length in seconds; zero when probing could
	// not determine it.
	Duration float64
	// SampleRate is the clip sample rate in Hz; zero when unknown.
	SampleRate int
}

// Container is an open asset container.
type Container interface {
	// Entries lists the container index, filtered by resource type.
	// The listing is a single pass; callers must not assume any order.
	Entries(filter TypeFilter) ([]Entry, error)
	// Open returns the byte stream for a previously listed entry.
	Open(path string) (io.ReadCloser, error)
}

func matchesFilter(name string, filter TypeFilter) bool {
	if filter == TypeAny {
		return true
	}
	return audioExtensions[strings.ToLower(filepath.Ext(name))]
}
