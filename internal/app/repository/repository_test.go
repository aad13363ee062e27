package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mgsouza/driveqr/internal/app/models"
	"github.com/mgsouza/driveqr/internal/utils/errs"
	"github.com/mgsouza/driveqr/internal/utils/logger"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func newResult(id, fileName string) *models.ScanResult {
	return &models.ScanResult{
		ID:          id,
		FileName:    fileName,
		Status:      models.StatusProcessing,
		PreviewURL:  "/previews/" + id,
		ProcessedAt: time.Now(),
	}
}

func statusPtr(s models.ResultStatus) *models.ResultStatus { return &s }
func strPtr(s string) *string                              { return &s }

func TestResultRepository_InsertAndGet(t *testing.T) {
	repo := CreateResultRepository()
	ctx := context.Background()

	err := repo.Insert(ctx, newResult("a", "one.png"))
	assert.NoError(t, err)

	got, err := repo.Get(ctx, "a")
	assert.NoError(t, err)
	assert.Equal(t, "one.png", got.FileName)
	assert.Equal(t, models.StatusProcessing, got.Status)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrResultNotFound)

	err = repo.Insert(ctx, newResult("a", "dup.png"))
	assert.ErrorIs(t, err, errs.ErrDuplicateResult)
}

func TestResultRepository_ListKeepsInsertionOrder(t *testing.T) {
	repo := CreateResultRepository()
	ctx := context.Background()

	ids := []string{"c", "a", "b"}
	for _, id := range ids {
		assert.NoError(t, repo.Insert(ctx, newResult(id, id+".png")))
	}

	results, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, results, 3)
	for i, id := range ids {
		assert.Equal(t, id, results[i].ID)
	}
}

func TestResultRepository_Patch(t *testing.T) {
	tests := []struct {
		name          string
		seed          func(*ResultRepository)
		patchID       string
		patch         models.ResultPatch
		expectedError error
		check         func(*testing.T, *ResultRepository)
	}{
		{
			name: "MergesFields",
			seed: func(r *ResultRepository) {
				_ = r.Insert(context.Background(), newResult("a", "one.png"))
			},
			patchID: "a",
			patch: models.ResultPatch{
				Status: statusPtr(models.StatusSuccess),
				Link:   strPtr("https://drive.example.com/file/abc"),
				Title:  strPtr("Q3 Report.pdf"),
			},
			check: func(t *testing.T, r *ResultRepository) {
				got, err := r.Get(context.Background(), "a")
				assert.NoError(t, err)
				assert.Equal(t, models.StatusSuccess, got.Status)
				assert.Equal(t, "https://drive.example.com/file/abc", got.Link)
				assert.Equal(t, "Q3 Report.pdf", got.Title)
				assert.Equal(t, "one.png", got.FileName)
			},
		},
		{
			name:          "NotFound",
			seed:          func(r *ResultRepository) {},
			patchID:       "ghost",
			patch:         models.ResultPatch{Status: statusPtr(models.StatusError)},
			expectedError: errs.ErrResultNotFound,
		},
		{
			name: "TerminalRecordIsFrozen",
			seed: func(r *ResultRepository) {
				_ = r.Insert(context.Background(), newResult("a", "one.png"))
				_ = r.Patch(context.Background(), "a", models.ResultPatch{
					Status:       statusPtr(models.StatusError),
					ErrorMessage: strPtr("boom"),
				})
			},
			patchID:       "a",
			patch:         models.ResultPatch{Status: statusPtr(models.StatusProcessing)},
			expectedError: errs.ErrTerminalResult,
			check: func(t *testing.T, r *ResultRepository) {
				got, err := r.Get(context.Background(), "a")
				assert.NoError(t, err)
				assert.Equal(t, models.StatusError, got.Status)
				assert.Equal(t, "boom", got.ErrorMessage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := CreateResultRepository()
			tt.seed(repo)

			err := repo.Patch(context.Background(), tt.patchID, tt.patch)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			if tt.check != nil {
				tt.check(t, repo)
			}
		})
	}
}

func TestResultRepository_PatchDoesNotLeakSharedState(t *testing.T) {
	repo := CreateResultRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, newResult("a", "one.png")))

	before, _ := repo.Get(ctx, "a")
	before.FileName = "mutated.png"

	after, _ := repo.Get(ctx, "a")
	assert.Equal(t, "one.png", after.FileName)
}

func TestResultRepository_ClearIsIdempotent(t *testing.T) {
	repo := CreateResultRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, newResult("a", "one.png")))
	assert.NoError(t, repo.Insert(ctx, newResult("b", "two.png")))
	assert.Equal(t, 2, repo.Count(ctx))

	assert.NoError(t, repo.Clear(ctx))
	assert.Equal(t, 0, repo.Count(ctx))

	assert.NoError(t, repo.Clear(ctx))
	assert.Equal(t, 0, repo.Count(ctx))

	results, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestResultRepository_ReplaceAll(t *testing.T) {
	repo := CreateResultRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, newResult("old", "old.png")))

	err := repo.ReplaceAll(ctx, []*models.ScanResult{
		newResult("n1", "n1.png"),
		newResult("n2", "n2.png"),
	})
	assert.NoError(t, err)

	results, _ := repo.List(ctx)
	assert.Len(t, results, 2)
	assert.Equal(t, "n1", results[0].ID)
	assert.Equal(t, "n2", results[1].ID)

	_, err = repo.Get(ctx, "old")
	assert.ErrorIs(t, err, errs.ErrResultNotFound)
}
