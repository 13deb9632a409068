package usecase

import "errors"

var (
	errNoGenerator     = errors.New("no generator configured")
	errEmptyGeneration = errors.New("generator returned blank text")
	errGeneratorPanic  = errors.New("generator panicked")
)
