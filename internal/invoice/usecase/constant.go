package usecase

import "time"

const (
	LogPrefixAnswer   = "[invoice.Answer]"
	LogPrefixResolve  = "[invoice.resolveInvoice]"
	LogPrefixGenerate = "[invoice.refine]"

	DefaultGenerationTimeout = 8 * time.Second
	DefaultMinMessageLength  = 2

	promptDateFormat = "2006-01-02"
)
