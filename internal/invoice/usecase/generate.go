package usecase

import (
	"context"
	"fmt"
	"strings"
)

type generation struct {
	text string
	err  error
}

// generate calls the generator under uc.timeout. The deadline holds even when the
// generator ignores ctx, and a generator panic comes back as an error.
func (uc *implUseCase) generate(ctx context.Context, prompt string) (string, error) {
	if uc.generator == nil {
		return "", errNoGenerator
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	done := make(chan generation, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- generation{err: fmt.Errorf("%w: %v", errGeneratorPanic, r)}
			}
		}()
		text, err := uc.generator.Generate(ctx, prompt, uc.timeout)
		done <- generation{text: strings.TrimSpace(text), err: err}
	}()

	select {
	case g := <-done:
		return g.text, g.err
	case <-ctx.Done():
		return "", fmt.Errorf("generation timed out after %s: %w", uc.timeout, ctx.Err())
	}
}
