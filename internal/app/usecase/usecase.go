package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/mgsouza/driveqr/internal/app"
	"github.com/mgsouza/driveqr/internal/app/models"
	"github.com/mgsouza/driveqr/internal/drive"
	"github.com/mgsouza/driveqr/internal/utils/errs"
	"github.com/mgsouza/driveqr/internal/utils/logger"
	"github.com/mgsouza/driveqr/internal/utils/validate"
	"go.uber.org/zap"
)

const (
	// MsgDecodeFailed is attached when no QR code could be read from an image.
	MsgDecodeFailed = "could not read the code in this image"
	// MsgInvalidLink is attached when the decoded payload is not an absolute link.
	MsgInvalidLink = "the code does not contain a valid link"
	// MsgUnexpected is attached when an item fails outside the known outcomes.
	MsgUnexpected = "unexpected failure while processing this image"

	DefaultMaxBatchSize = 20
)

// ScanUsecase orchestrates one batch: it drives each image through decode,
// link validation, metadata resolution and audio classification, mutating the
// result store as each step completes. Items are processed strictly one at a
// time; one failed item never aborts the batch.
type ScanUsecase struct {
	results      app.ResultRepository
	previews     app.PreviewManager
	decoder      app.Decoder
	resolver     app.MetadataResolver
	observer     app.TerminalObserver
	maxBatchSize int
}

func CreateScanUsecase(
	results app.ResultRepository,
	previews app.PreviewManager,
	decoder app.Decoder,
	resolver app.MetadataResolver,
	maxBatchSize int,
) *ScanUsecase {
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}
	return &ScanUsecase{
		results:      results,
		previews:     previews,
		decoder:      decoder,
		resolver:     resolver,
		maxBatchSize: maxBatchSize,
	}
}

// SetTerminalObserver registers the observer notified on every terminal
// transition. Passing nil removes it.
func (u *ScanUsecase) SetTerminalObserver(observer app.TerminalObserver) {
	u.observer = observer
}

func (u *ScanUsecase) MaxBatchSize() int {
	return u.maxBatchSize
}

// ProcessBatch processes the submitted images in order and returns the
// success/error tally once every item is terminal. An empty batch is a no-op.
func (u *ScanUsecase) ProcessBatch(ctx context.Context, images []models.BatchImage) (*models.BatchSummary, error) {
	const funcName = "ScanUsecase.ProcessBatch"

	if len(images) == 0 {
		return &models.BatchSummary{}, nil
	}
	if len(images) > u.maxBatchSize {
		logger.Warn("batch too large",
			zap.String("function", funcName),
			zap.Int("submitted", len(images)),
			zap.Int("max", u.maxBatchSize),
		)
		return nil, errs.ErrBatchTooLarge
	}

	logger.Info("starting batch",
		zap.String("function", funcName),
		zap.Int("images", len(images)),
	)

	summary := &models.BatchSummary{Submitted: len(images)}
	for _, image := range images {
		if u.processImage(ctx, image) == models.StatusSuccess {
			summary.SuccessCount++
		} else {
			summary.ErrorCount++
		}
	}

	logger.Info("batch finished",
		zap.String("function", funcName),
		zap.Int("success_count", summary.SuccessCount),
		zap.Int("error_count", summary.ErrorCount),
	)

	return summary, nil
}

// processImage runs the per-item state machine and always leaves exactly one
// terminal record behind, whatever happens on the way.
func (u *ScanUsecase) processImage(ctx context.Context, image models.BatchImage) models.ResultStatus {
	const funcName = "ScanUsecase.processImage"

	id := uuid.NewString()

	previewURL, err := u.previews.Acquire(id, image.Data)
	if err != nil {
		logger.Warn("preview could not be acquired",
			zap.String("function", funcName),
			zap.String("result_id", id),
			zap.String("file_name", image.FileName),
			zap.Error(err),
		)
		previewURL = ""
	}

	record := &models.ScanResult{
		ID:          id,
		FileName:    image.FileName,
		Status:      models.StatusProcessing,
		PreviewURL:  previewURL,
		ProcessedAt: time.Now(),
	}
	if err := u.results.Insert(ctx, record); err != nil {
		logger.Error("failed to insert record",
			zap.String("function", funcName),
			zap.String("result_id", id),
			zap.Error(err),
		)
		u.previews.Release(id)
		return models.StatusError
	}

	return u.advance(ctx, id, image)
}

// advance runs decode, validation, resolution and classification for one
// inserted record. Panics are contained at this boundary and converted into
// a terminal error record.
func (u *ScanUsecase) advance(ctx context.Context, id string, image models.BatchImage) (status models.ResultStatus) {
	const funcName = "ScanUsecase.advance"

	defer func() {
		if r := recover(); r != nil {
			logger.Error("item processing panicked",
				zap.String("function", funcName),
				zap.String("result_id", id),
				zap.Any("panic", r),
			)
			u.finishError(ctx, id, nil, MsgUnexpected)
			status = models.StatusError
		}
	}()

	text, ok := u.decoder.Decode(image.Data)
	if !ok {
		u.finishError(ctx, id, nil, MsgDecodeFailed)
		return models.StatusError
	}

	if !validate.IsAbsoluteHTTPURL(text) {
		u.finishError(ctx, id, &text, MsgInvalidLink)
		return models.StatusError
	}

	metadata, err := u.resolver.Resolve(ctx, text)
	if err != nil {
		message := drive.GenericResolveFailure
		var resolveErr *drive.ResolveError
		if errors.As(err, &resolveErr) {
			message = resolveErr.Error()
		}
		u.finishError(ctx, id, &text, message)
		return models.StatusError
	}

	u.finishSuccess(ctx, id, text, image.FileName, metadata)
	return models.StatusSuccess
}

func (u *ScanUsecase) finishSuccess(ctx context.Context, id, link, fileName string, metadata *models.DriveMetadata) {
	const funcName = "ScanUsecase.finishSuccess"

	terminal := models.StatusSuccess
	patch := models.ResultPatch{
		Status:           &terminal,
		Link:             &link,
		Title:            &metadata.Title,
		ExtractionMethod: &metadata.Method,
		Audio:            buildAudioInfo(fileName, link, metadata),
	}
	if metadata.FileID != nil {
		patch.FileID = metadata.FileID
	}

	if err := u.results.Patch(ctx, id, patch); err != nil {
		logger.Error("failed to patch success record",
			zap.String("function", funcName),
			zap.String("result_id", id),
			zap.Error(err),
		)
		return
	}

	u.notifyTerminal(ctx, id)
}

func (u *ScanUsecase) finishError(ctx context.Context, id string, link *string, message string) {
	const funcName = "ScanUsecase.finishError"

	terminal := models.StatusError
	patch := models.ResultPatch{
		Status:       &terminal,
		ErrorMessage: &message,
		Link:         link,
	}

	if err := u.results.Patch(ctx, id, patch); err != nil {
		logger.Error("failed to patch error record",
			zap.String("function", funcName),
			zap.String("result_id", id),
			zap.Error(err),
		)
		return
	}

	u.notifyTerminal(ctx, id)
}

func (u *ScanUsecase) notifyTerminal(ctx context.Context, id string) {
	if u.observer == nil {
		return
	}
	record, err := u.results.Get(ctx, id)
	if err != nil {
		return
	}
	u.observer.ResultTerminal(record)
}

// buildAudioInfo populates the playable descriptor when the resource is
// audio and a playable source exists, preferring the proxied path over the
// direct download.
func buildAudioInfo(fileName, link string, metadata *models.DriveMetadata) *models.AudioInfo {
	isAudio := metadata.Audio.IsAudio || validate.HasAudioExtension(fileName, link)
	if !isAudio {
		return nil
	}

	var source string
	switch {
	case metadata.Audio.ProxyPath != nil && *metadata.Audio.ProxyPath != "":
		source = *metadata.Audio.ProxyPath
	case metadata.Audio.DownloadURL != nil && *metadata.Audio.DownloadURL != "":
		source = *metadata.Audio.DownloadURL
	default:
		return nil
	}

	mimeType := validate.DefaultAudioMimeType
	if metadata.Audio.MimeType != nil && *metadata.Audio.MimeType != "" {
		mimeType = *metadata.Audio.MimeType
	}

	info := &models.AudioInfo{
		URL:      source,
		MimeType: mimeType,
	}
	if metadata.Audio.DownloadURL != nil {
		info.DownloadURL = *metadata.Audio.DownloadURL
	}
	return info
}

// ClearResults empties the result store and releases every preview handle in
// one operation, so callers never observe records without previews.
func (u *ScanUsecase) ClearResults(ctx context.Context) error {
	const funcName = "ScanUsecase.ClearResults"
	logger.Info("clearing results",
		zap.String("function", funcName),
		zap.Int("records", u.results.Count(ctx)),
		zap.Int("previews", u.previews.ActiveCount()),
	)

	u.previews.ReleaseAll()
	return u.results.Clear(ctx)
}

func (u *ScanUsecase) ListResults(ctx context.Context) ([]*models.ScanResult, error) {
	return u.results.List(ctx)
}

func (u *ScanUsecase) OpenPreview(itemID string) (io.ReadCloser, error) {
	return u.previews.Open(itemID)
}
