package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mgsouza/driveqr/internal/app/models"
	"github.com/mgsouza/driveqr/internal/utils/logger"
	"go.uber.org/zap"
)

// GenericResolveFailure is the message shown when the extraction service
// cannot be reached or answers with a non-success HTTP status.
const GenericResolveFailure = "could not reach the metadata service"

const DefaultResolveTimeout = 10 * time.Second

// ResolveError is the typed failure of one metadata resolution. Remote is
// true when the service itself reported the failure; its message (and reason
// code, when present) is surfaced to the user verbatim.
type ResolveError struct {
	Message string
	Reason  string
	Remote  bool
}

func (e *ResolveError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Reason)
	}
	return e.Message
}

type extractEnvelope struct {
	Success bool                  `json:"success"`
	Data    *models.DriveMetadata `json:"data"`
	Error   *struct {
		Message string `json:"message"`
		Details struct {
			Reason string `json:"reason"`
		} `json:"details"`
	} `json:"error"`
}

// Resolver calls the remote extraction service, one request per invocation,
// bounded by a deadline. It never caches and never retries.
type Resolver struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
}

func CreateResolver(endpoint string, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultResolveTimeout
	}
	return &Resolver{
		endpoint: endpoint,
		timeout:  timeout,
		client:   &http.Client{},
	}
}

// Resolve posts url to the extraction endpoint and returns the structured
// metadata, or a *ResolveError. Expiry of the deadline abandons the call and
// is reported like any other transport failure.
func (r *Resolver) Resolve(ctx context.Context, url string) (*models.DriveMetadata, error) {
	const funcName = "drive.Resolver.Resolve"
	logger.Debug("resolving metadata",
		zap.String("function", funcName),
		zap.String("url", url),
	)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	body, err := json.Marshal(models.ExtractRequest{URL: url})
	if err != nil {
		return nil, fmt.Errorf("marshal extract request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build extract request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		logger.Warn("extraction service unreachable",
			zap.String("function", funcName),
			zap.String("url", url),
			zap.Error(err),
		)
		return nil, &ResolveError{Message: GenericResolveFailure}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warn("extraction service returned non-success status",
			zap.String("function", funcName),
			zap.String("url", url),
			zap.Int("status_code", resp.StatusCode),
		)
		return nil, &ResolveError{Message: GenericResolveFailure}
	}

	var envelope extractEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		logger.Warn("extraction service returned malformed body",
			zap.String("function", funcName),
			zap.String("url", url),
			zap.Error(err),
		)
		return nil, &ResolveError{Message: GenericResolveFailure}
	}

	if !envelope.Success {
		failure := &ResolveError{Message: GenericResolveFailure, Remote: true}
		if envelope.Error != nil && envelope.Error.Message != "" {
			failure.Message = envelope.Error.Message
			failure.Reason = envelope.Error.Details.Reason
		}
		logger.Warn("extraction service reported failure",
			zap.String("function", funcName),
			zap.String("url", url),
			zap.String("message", failure.Message),
			zap.String("reason", failure.Reason),
		)
		return nil, failure
	}

	if envelope.Data == nil {
		return nil, &ResolveError{Message: GenericResolveFailure}
	}

	return envelope.Data, nil
}
