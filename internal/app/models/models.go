package models

import "time"

type ResultStatus string

const (
	StatusPending    ResultStatus = "pending"
	StatusProcessing ResultStatus = "processing"
	StatusSuccess    ResultStatus = "success"
	StatusError      ResultStatus = "error"
)

// IsTerminal reports whether no further transition is allowed for s.
func (s ResultStatus) IsTerminal() bool {
	return s == StatusSuccess || s == StatusError
}

// ScanResult is the per-image record the rest of the application renders.
// It accumulates fields as the pipeline advances: Link may be set even on an
// error record, Audio only ever on a success record.
type ScanResult struct {
	ID               string       `json:"id"`
	FileName         string       `json:"file_name"`
	Status           ResultStatus `json:"status"`
	PreviewURL       string       `json:"preview_url"`
	ProcessedAt      time.Time    `json:"processed_at"`
	Link             string       `json:"link,omitempty"`
	Title            string       `json:"title,omitempty"`
	ExtractionMethod string       `json:"extraction_method,omitempty"`
	FileID           string       `json:"file_id,omitempty"`
	Audio            *AudioInfo   `json:"audio,omitempty"`
	ErrorMessage     string       `json:"error_message,omitempty"`
}

// AudioInfo describes a playable audio resource attached to a success record.
// DurationSeconds is never known at resolution time and stays nil.
type AudioInfo struct {
	URL             string   `json:"url"`
	MimeType        string   `json:"mime_type"`
	DurationSeconds *float64 `json:"duration_seconds"`
	DownloadURL     string   `json:"download_url,omitempty"`
}

// ResultPatch carries the fields Patch merges into an existing record.
// Nil pointers leave the corresponding field untouched.
type ResultPatch struct {
	Status           *ResultStatus
	Link             *string
	Title            *string
	ExtractionMethod *string
	FileID           *string
	Audio            *AudioInfo
	ErrorMessage     *string
}

// BatchImage is one submitted image: its original name and raw bytes.
type BatchImage struct {
	FileName string
	Data     []byte
}

// BatchSummary is the informational success/error tally for one batch.
type BatchSummary struct {
	Submitted    int `json:"submitted"`
	SuccessCount int `json:"success_count"`
	ErrorCount   int `json:"error_count"`
}

// DriveAudio mirrors the audio descriptor of the extraction service payload.
type DriveAudio struct {
	IsAudio     bool    `json:"isAudio"`
	ProxyPath   *string `json:"proxyPath"`
	DownloadURL *string `json:"downloadUrl"`
	MimeType    *string `json:"mimeType"`
}

// DriveMetadata is the structured metadata the extraction service returns.
type DriveMetadata struct {
	FileID *string    `json:"fileId"`
	Title  string     `json:"title"`
	Method string     `json:"method"`
	Audio  DriveAudio `json:"audio"`
}

type ExtractRequest struct {
	URL string `json:"url"`
}
