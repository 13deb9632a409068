package repository

import "errors"

var (
	ErrFailedToGet  = errors.New("failed to get record")
	ErrFailedToLoad = errors.New("failed to load records")
	ErrEmptyFilter  = errors.New("empty filter")
)
