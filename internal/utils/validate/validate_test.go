package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAbsoluteHTTPURL(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "httpsLink",
			text:     "https://drive.google.com/file/d/abc123/view",
			expected: true,
		},
		{
			name:     "httpLink",
			text:     "http://example.com/a",
			expected: true,
		},
		{
			name:     "upperCaseScheme",
			text:     "HTTPS://example.com",
			expected: true,
		},
		{
			name:     "leadingWhitespace",
			text:     "  https://example.com",
			expected: true,
		},
		{
			name:     "plainText",
			text:     "hello world",
			expected: false,
		},
		{
			name:     "relativePath",
			text:     "/file/d/abc123",
			expected: false,
		},
		{
			name:     "malformedScheme",
			text:     "htps://example.com",
			expected: false,
		},
		{
			name:     "ftpScheme",
			text:     "ftp://example.com/file.mp3",
			expected: false,
		},
		{
			name:     "empty",
			text:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAbsoluteHTTPURL(tt.text))
		})
	}
}

func TestHasAudioExtension(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected bool
	}{
		{
			name:     "mp3FileName",
			values:   []string{"narration.mp3"},
			expected: true,
		},
		{
			name:     "upperCase",
			values:   []string{"NARRATION.MP3"},
			expected: true,
		},
		{
			name:     "extensionInsideURL",
			values:   []string{"", "https://example.com/audio.flac?dl=1"},
			expected: true,
		},
		{
			name:     "secondValueMatches",
			values:   []string{"scan.png", "https://example.com/song.ogg"},
			expected: true,
		},
		{
			name:     "noAudioExtension",
			values:   []string{"report.pdf", "https://example.com/doc"},
			expected: false,
		},
		{
			name:     "emptyValues",
			values:   []string{"", ""},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasAudioExtension(tt.values...))
		})
	}
}

func TestAudioMimeType(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		expected string
	}{
		{
			name:     "mp3",
			fileName: "song.mp3",
			expected: "audio/mpeg",
		},
		{
			name:     "wav",
			fileName: "take01.WAV",
			expected: "audio/wav",
		},
		{
			name:     "m4a",
			fileName: "memo.m4a",
			expected: "audio/mp4",
		},
		{
			name:     "wma",
			fileName: "old-recording.wma",
			expected: "audio/x-ms-wma",
		},
		{
			name:     "unknownFallsBack",
			fileName: "notes.txt",
			expected: DefaultAudioMimeType,
		},
		{
			name:     "emptyFallsBack",
			fileName: "",
			expected: DefaultAudioMimeType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AudioMimeType(tt.fileName))
		})
	}
}
