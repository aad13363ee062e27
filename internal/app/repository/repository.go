package repository

import (
	"context"
	"sync"

	"github.com/mgsouza/driveqr/internal/app/models"
	"github.com/mgsouza/driveqr/internal/utils/errs"
	"github.com/mgsouza/driveqr/internal/utils/logger"
	"go.uber.org/zap"
)

// ResultRepository is the in-memory result store. Records keep their
// insertion order, which is the submission order of the batch.
type ResultRepository struct {
	results map[string]*models.ScanResult
	order   []string
	mu      sync.Mutex
}

func CreateResultRepository() *ResultRepository {
	return &ResultRepository{
		results: make(map[string]*models.ScanResult),
		order:   make([]string, 0),
	}
}

func (r *ResultRepository) Insert(ctx context.Context, result *models.ScanResult) error {
	const funcName = "ResultRepository.Insert"
	logger.Debug("inserting result",
		zap.String("function", funcName),
		zap.String("result_id", result.ID),
		zap.String("file_name", result.FileName),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.results[result.ID]; exists {
		logger.Warn("result id already present",
			zap.String("function", funcName),
			zap.String("result_id", result.ID),
		)
		return errs.ErrDuplicateResult
	}

	stored := *result
	r.results[result.ID] = &stored
	r.order = append(r.order, result.ID)

	return nil
}

func (r *ResultRepository) Get(ctx context.Context, id string) (*models.ScanResult, error) {
	const funcName = "ResultRepository.Get"

	r.mu.Lock()
	defer r.mu.Unlock()

	result, exists := r.results[id]
	if !exists {
		logger.Warn("result not found",
			zap.String("function", funcName),
			zap.String("result_id", id),
		)
		return nil, errs.ErrResultNotFound
	}

	copied := *result
	return &copied, nil
}

// Patch merges the set fields of patch into the record matching id. The id
// itself is not patchable, and a record that reached a terminal state is
// frozen: any further patch is rejected.
func (r *ResultRepository) Patch(ctx context.Context, id string, patch models.ResultPatch) error {
	const funcName = "ResultRepository.Patch"
	logger.Debug("patching result",
		zap.String("function", funcName),
		zap.String("result_id", id),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	result, exists := r.results[id]
	if !exists {
		logger.Warn("result not found when patching",
			zap.String("function", funcName),
			zap.String("result_id", id),
		)
		return errs.ErrResultNotFound
	}

	if result.Status.IsTerminal() {
		logger.Warn("refusing to patch terminal result",
			zap.String("function", funcName),
			zap.String("result_id", id),
			zap.String("status", string(result.Status)),
		)
		return errs.ErrTerminalResult
	}

	if patch.Status != nil {
		result.Status = *patch.Status
	}
	if patch.Link != nil {
		result.Link = *patch.Link
	}
	if patch.Title != nil {
		result.Title = *patch.Title
	}
	if patch.ExtractionMethod != nil {
		result.ExtractionMethod = *patch.ExtractionMethod
	}
	if patch.FileID != nil {
		result.FileID = *patch.FileID
	}
	if patch.Audio != nil {
		result.Audio = patch.Audio
	}
	if patch.ErrorMessage != nil {
		result.ErrorMessage = *patch.ErrorMessage
	}

	return nil
}

// List returns copies of all records in insertion order.
func (r *ResultRepository) List(ctx context.Context) ([]*models.ScanResult, error) {
	const funcName = "ResultRepository.List"

	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]*models.ScanResult, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.results[id]
		results = append(results, &copied)
	}

	logger.Debug("listed results",
		zap.String("function", funcName),
		zap.Int("count", len(results)),
	)

	return results, nil
}

func (r *ResultRepository) ReplaceAll(ctx context.Context, results []*models.ScanResult) error {
	const funcName = "ResultRepository.ReplaceAll"
	logger.Debug("replacing all results",
		zap.String("function", funcName),
		zap.Int("count", len(results)),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.results = make(map[string]*models.ScanResult, len(results))
	r.order = make([]string, 0, len(results))
	for _, result := range results {
		stored := *result
		r.results[result.ID] = &stored
		r.order = append(r.order, result.ID)
	}

	return nil
}

func (r *ResultRepository) Clear(ctx context.Context) error {
	const funcName = "ResultRepository.Clear"

	r.mu.Lock()
	defer r.mu.Unlock()

	cleared := len(r.results)
	r.results = make(map[string]*models.ScanResult)
	r.order = r.order[:0]

	logger.Info("results cleared",
		zap.String("function", funcName),
		zap.Int("cleared", cleared),
	)

	return nil
}

func (r *ResultRepository) Count(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}
