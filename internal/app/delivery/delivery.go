package delivery

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mgsouza/driveqr/internal/app"
	"github.com/mgsouza/driveqr/internal/app/models"
	"github.com/mgsouza/driveqr/internal/drive"
	"github.com/mgsouza/driveqr/internal/utils/errs"
	"github.com/mgsouza/driveqr/internal/utils/logger"
	"github.com/mgsouza/driveqr/internal/utils/responses"
	"github.com/mgsouza/driveqr/internal/utils/validate"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxUploadBytes = 32 << 20

type ScanDelivery struct {
	scanUsecase app.ScanUsecase
	extractor   app.TitleExtractor
	audioClient *http.Client
}

func CreateScanDelivery(scanUsecase app.ScanUsecase, extractor app.TitleExtractor) *ScanDelivery {
	return &ScanDelivery{
		scanUsecase: scanUsecase,
		extractor:   extractor,
		audioClient: &http.Client{},
	}
}

type batchResponse struct {
	Summary *models.BatchSummary `json:"summary"`
	Results []*models.ScanResult `json:"results"`
}

// ProcessBatch accepts a multipart batch under the "images" field, runs the
// pipeline to completion and returns the summary plus every terminal record.
func (d *ScanDelivery) ProcessBatch(w http.ResponseWriter, r *http.Request) {
	const funcName = "ScanDelivery.ProcessBatch"
	logger.Debug("processing scan batch", zap.String("function", funcName))

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		responses.ResponseErrorAndLog(w, errs.ErrEmptyBatch, funcName)
		return
	}
	if len(files) > d.scanUsecase.MaxBatchSize() {
		responses.ResponseErrorAndLog(w, errs.ErrBatchTooLarge, funcName)
		return
	}

	// Reading the parts may interleave; the batch itself keeps submission order.
	images := make([]models.BatchImage, len(files))
	g, ctx := errgroup.WithContext(r.Context())
	for i, header := range files {
		i, header := i, header
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := header.Open()
			if err != nil {
				return err
			}
			defer file.Close()

			data, err := io.ReadAll(file)
			if err != nil {
				return err
			}

			images[i] = models.BatchImage{FileName: header.Filename, Data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("failed to read uploaded images",
			zap.String("function", funcName),
			zap.Error(err),
		)
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "could not read uploaded images")
		return
	}

	summary, err := d.scanUsecase.ProcessBatch(r.Context(), images)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	results, err := d.scanUsecase.ListResults(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, batchResponse{Summary: summary, Results: results}, http.StatusOK)
}

func (d *ScanDelivery) GetResults(w http.ResponseWriter, r *http.Request) {
	const funcName = "ScanDelivery.GetResults"

	results, err := d.scanUsecase.ListResults(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{
		"count":   len(results),
		"results": results,
	}, http.StatusOK)
}

// ClearResults empties the result store and releases every preview handle.
func (d *ScanDelivery) ClearResults(w http.ResponseWriter, r *http.Request) {
	const funcName = "ScanDelivery.ClearResults"

	if err := d.scanUsecase.ClearResults(r.Context()); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{"cleared": true}, http.StatusOK)
}

// GetPreview streams the stored preview image for one result.
func (d *ScanDelivery) GetPreview(w http.ResponseWriter, r *http.Request) {
	const funcName = "ScanDelivery.GetPreview"

	itemID := mux.Vars(r)["id"]
	reader, err := d.scanUsecase.OpenPreview(itemID)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}
	defer reader.Close()

	sniff := make([]byte, 512)
	n, _ := io.ReadFull(reader, sniff)
	w.Header().Set("Content-Type", http.DetectContentType(sniff[:n]))
	w.Header().Set("Cache-Control", "no-store")

	if _, err := w.Write(sniff[:n]); err != nil {
		return
	}
	if _, err := io.Copy(w, reader); err != nil {
		logger.Warn("failed to stream preview",
			zap.String("function", funcName),
			zap.String("item_id", itemID),
			zap.Error(err),
		)
	}
}

type driveError struct {
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type driveEnvelope struct {
	Success bool                  `json:"success"`
	Data    *models.DriveMetadata `json:"data,omitempty"`
	Error   *driveError           `json:"error,omitempty"`
}

// ExtractTitle implements the extraction endpoint of the metadata contract.
// Business failures come back as success:false envelopes so the caller can
// surface the message and reason code.
func (d *ScanDelivery) ExtractTitle(w http.ResponseWriter, r *http.Request) {
	const funcName = "ScanDelivery.ExtractTitle"

	var req models.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoJSONResponse(w, driveEnvelope{
			Success: false,
			Error:   &driveError{Message: "invalid request body"},
		}, http.StatusBadRequest)
		return
	}

	if !validate.IsAbsoluteHTTPURL(req.URL) {
		responses.DoJSONResponse(w, driveEnvelope{
			Success: false,
			Error: &driveError{
				Message: "url must be an absolute http(s) link",
				Details: map[string]any{"reason": "invalid-url"},
			},
		}, http.StatusBadRequest)
		return
	}

	metadata, err := d.extractor.Extract(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidFileID) {
			responses.DoJSONResponse(w, driveEnvelope{
				Success: false,
				Error: &driveError{
					Message: "no file id found in the link",
					Details: map[string]any{"reason": "missing-id"},
				},
			}, http.StatusOK)
			return
		}
		logger.Error("title extraction failed",
			zap.String("function", funcName),
			zap.String("url", req.URL),
			zap.Error(err),
		)
		responses.DoJSONResponse(w, driveEnvelope{
			Success: false,
			Error:   &driveError{Message: "could not extract metadata"},
		}, http.StatusInternalServerError)
		return
	}

	responses.DoJSONResponse(w, driveEnvelope{Success: true, Data: metadata}, http.StatusOK)
}

// ProxyAudio streams the Drive file behind fileId so the browser can play it
// without hitting Drive's cross-origin limits. Range requests pass through.
func (d *ScanDelivery) ProxyAudio(w http.ResponseWriter, r *http.Request) {
	const funcName = "ScanDelivery.ProxyAudio"

	fileID := mux.Vars(r)["fileId"]

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, drive.DownloadURL(fileID), nil)
	if err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid file id")
		return
	}
	if rangeHeader := r.Header.Get("Range"); rangeHeader != "" {
		req.Header.Set("Range", rangeHeader)
	}

	resp, err := d.audioClient.Do(req)
	if err != nil {
		logger.Warn("audio upstream unreachable",
			zap.String("function", funcName),
			zap.String("file_id", fileID),
			zap.Error(err),
		)
		responses.DoBadResponseAndLog(w, http.StatusBadGateway, "audio source unreachable")
		return
	}
	defer resp.Body.Close()

	for _, header := range []string{"Content-Type", "Content-Length", "Content-Range", "Accept-Ranges", "Content-Disposition"} {
		if value := resp.Header.Get(header); value != "" {
			w.Header().Set(header, value)
		}
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		logger.Warn("failed to stream audio",
			zap.String("function", funcName),
			zap.String("file_id", fileID),
			zap.Error(err),
		)
	}
}
