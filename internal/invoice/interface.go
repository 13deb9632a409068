package invoice

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Answer replies to one chat message about an invoice.
	// The only error it returns is an input validation error.
	Answer(ctx context.Context, input AnswerInput) (AnswerOutput, error)
}
