package data

import "errors"

var (
	ErrFilesystem     = errors.New("filesystem error")
	ErrDataDirLocked  = errors.New("data directory is in use by another runner")
	ErrNotADirectory  = errors.New("not a directory")
	ErrDataDirMissing = errors.New("data directory path is empty")
)
