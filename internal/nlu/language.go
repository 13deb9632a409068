package nlu

import "strings"

// Language is the display language of a message.
type Language string

const (
	LanguageFR Language = "fr"
	LanguageEN Language = "en"
)

const frenchAccents = "éèêàâîôûùç"

var frenchKeywords = []string{"bonjour", "facture", "statut", "échéance", "echeance"}

// DetectLanguage returns LanguageFR when the text carries a French accent or one of
// the French domain keywords, LanguageEN otherwise.
func DetectLanguage(text string) Language {
	t := fold(text)
	if strings.ContainsAny(t, frenchAccents) {
		return LanguageFR
	}
	if containsAny(t, frenchKeywords) {
		return LanguageFR
	}
	return LanguageEN
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
