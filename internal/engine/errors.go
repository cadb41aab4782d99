package engine

import "errors"

var (
	ErrEngineUnavailable     = errors.New("container engine unavailable")
	ErrEngineOperationFailed = errors.New("container engine operation failed")
	ErrContainerNotFound     = errors.New("container not found")
	ErrImageNotFound         = errors.New("image not found")
)
