package errs

import "errors"

var (
	ErrResultNotFound  = errors.New("result not found")
	ErrDuplicateResult = errors.New("result id already present")
	ErrEmptyBatch      = errors.New("batch contains no images")
	ErrBatchTooLarge   = errors.New("too many images in one batch")
	ErrTerminalResult  = errors.New("result already in a terminal state")
	ErrPreviewNotFound = errors.New("preview not found")
	ErrPreviewExists   = errors.New("preview already acquired for this id")
	ErrInvalidFileID   = errors.New("no file id found in the link")
)
