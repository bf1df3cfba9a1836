package rag

import "errors"

var (
	ErrFileNotFound       = errors.New("file not found")
	ErrReadFailure        = errors.New("failed to read file")
	ErrInvalidChunkConfig = errors.New("invalid chunk configuration")
	ErrNoChunks           = errors.New("no content to search")
)
