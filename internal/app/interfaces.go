package app

import (
	"context"
	"io"

	"github.com/mgsouza/driveqr/internal/app/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go

// ResultRepository is the incrementally-updated store of per-image records.
type ResultRepository interface {
	Insert(ctx context.Context, result *models.ScanResult) error
	Get(ctx context.Context, id string) (*models.ScanResult, error)
	Patch(ctx context.Context, id string, patch models.ResultPatch) error
	List(ctx context.Context) ([]*models.ScanResult, error)
	ReplaceAll(ctx context.Context, results []*models.ScanResult) error
	Clear(ctx context.Context) error
	Count(ctx context.Context) int
}

// PreviewManager owns the locally-scoped preview handles for submitted images.
type PreviewManager interface {
	Acquire(itemID string, data []byte) (string, error)
	Open(itemID string) (io.ReadCloser, error)
	Release(itemID string)
	ReleaseAll()
	ActiveCount() int
}

// Decoder extracts the QR payload from raw image bytes; ok is false when the
// image carries no readable code.
type Decoder interface {
	Decode(data []byte) (string, bool)
}

// MetadataResolver resolves a validated link against the remote extraction
// service under a bounded deadline.
type MetadataResolver interface {
	Resolve(ctx context.Context, url string) (*models.DriveMetadata, error)
}

// TitleExtractor is the service-side half of the metadata contract.
type TitleExtractor interface {
	Extract(ctx context.Context, url string) (*models.DriveMetadata, error)
}

// TerminalObserver is notified every time a record reaches a terminal state.
// Presentation code decides what to show; the pipeline only reports.
type TerminalObserver interface {
	ResultTerminal(result *models.ScanResult)
}

type ScanUsecase interface {
	ProcessBatch(ctx context.Context, images []models.BatchImage) (*models.BatchSummary, error)
	ListResults(ctx context.Context) ([]*models.ScanResult, error)
	ClearResults(ctx context.Context) error
	OpenPreview(itemID string) (io.ReadCloser, error)
	MaxBatchSize() int
}
