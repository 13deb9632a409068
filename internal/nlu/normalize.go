package nlu

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// fold composes the text to NFC and lowercases it. A decomposed "é" (e + U+0301)
// would otherwise miss every accented keyword.
// A Caser keeps state between calls, so each call builds its own.
func fold(text string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(text))
}
