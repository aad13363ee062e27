package validate

import "strings"

// AudioExtensions is the fixed whitelist used by the audio heuristic.
var AudioExtensions = []string{".mp3", ".wav", ".m4a", ".aac", ".ogg", ".flac", ".wma"}

var audioMimeTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".wma":  "audio/x-ms-wma",
}

const DefaultAudioMimeType = "audio/mpeg"

// IsAbsoluteHTTPURL reports whether the decoded payload looks like a usable
// absolute link. It is a shallow gate before the network call, not a full
// URL parser.
func IsAbsoluteHTTPURL(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// HasAudioExtension reports whether any of the given values contains one of
// the known audio extensions, case-insensitively. Empty values are skipped.
func HasAudioExtension(values ...string) bool {
	for _, value := range values {
		if value == "" {
			continue
		}
		lower := strings.ToLower(value)
		for _, ext := range AudioExtensions {
			if strings.Contains(lower, ext) {
				return true
			}
		}
	}
	return false
}

// AudioMimeType maps the first recognized audio extension in name to its MIME
// type, falling back to DefaultAudioMimeType.
func AudioMimeType(name string) string {
	lower := strings.ToLower(name)
	for _, ext := range AudioExtensions {
		if strings.Contains(lower, ext) {
			return audioMimeTypes[ext]
		}
	}
	return DefaultAudioMimeType
}
