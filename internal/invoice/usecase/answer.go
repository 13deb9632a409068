package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"invoice-assistant/internal/invoice"
	"invoice-assistant/internal/nlu"
)

// Answer replies to one message. Only a too-short message is an error; lookup misses
// and generation failures still produce an answer.
func (uc *implUseCase) Answer(ctx context.Context, input invoice.AnswerInput) (invoice.AnswerOutput, error) {
	message := strings.TrimSpace(input.Message)
	if utf8.RuneCountInString(message) < uc.minMessageLength {
		return invoice.AnswerOutput{}, invoice.ErrMessageTooShort
	}

	lang := nlu.DetectLanguage(message)
	identifier, ok := nlu.ExtractIdentifier(message)
	intent := nlu.ClassifyIntent(message)

	var out invoice.AnswerOutput
	if !ok {
		out = uc.answerGeneral(ctx, message, lang)
	} else {
		out = uc.answerLookup(ctx, message, identifier, intent, lang)
	}
	out.Language = lang
	out.Intent = intent

	uc.l.Infof(ctx, "%s lang=%s intent=%s identifier=%q found=%t source=%s",
		LogPrefixAnswer, out.Language, out.Intent, out.Identifier, out.Found, out.Source)
	return out, nil
}

func (uc *implUseCase) answerGeneral(ctx context.Context, message string, lang nlu.Language) invoice.AnswerOutput {
	fallback := uc.composer.Greeting(lang)
	response, source := uc.refine(ctx, buildGeneralPrompt(message), fallback)
	return invoice.AnswerOutput{Response: response, Source: source}
}

func (uc *implUseCase) answerLookup(ctx context.Context, message, identifier string, intent nlu.Intent, lang nlu.Language) invoice.AnswerOutput {
	actx := invoice.AnswerContext{Identifier: identifier, Intent: intent}
	if inv, found := uc.resolveInvoice(ctx, identifier); found {
		actx.Found = true
		actx.Invoice = &inv
	}

	fallback := uc.composer.Compose(actx, lang)
	out := invoice.AnswerOutput{
		Response:   fallback,
		Identifier: identifier,
		Found:      actx.Found,
		Source:     invoice.SourceFallback,
	}

	prompt, err := uc.buildDataPrompt(message, actx)
	if err != nil {
		uc.l.Errorf(ctx, "%s buildDataPrompt: %v", LogPrefixAnswer, err)
		return out
	}

	out.Response, out.Source = uc.refine(ctx, prompt, fallback)
	return out
}

// refine makes the single generative attempt. Anything but non-blank text yields
// fallback unchanged.
func (uc *implUseCase) refine(ctx context.Context, prompt, fallback string) (string, invoice.Source) {
	start := time.Now()

	text, err := uc.generate(ctx, prompt)
	if err == nil && text == "" {
		err = errEmptyGeneration
	}
	if err != nil {
		uc.observer.GenerationFailed(ctx, err, time.Since(start))
		return fallback, invoice.SourceFallback
	}

	uc.observer.GenerationSucceeded(ctx, time.Since(start))
	return text, invoice.SourceGenerated
}
