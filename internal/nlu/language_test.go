package nlu

import "testing"

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		text string
		want Language
	}{
		{"Bonjour", LanguageFR},
		{"Statut facture #F123", LanguageFR},
		{"ÉCHÉANCE 456", LanguageFR},
		{"echeance 456", LanguageFR},
		{"échéance", LanguageFR},
		{"ça marche ?", LanguageFR},
		{"Amount invoice #INV-789", LanguageEN},
		{"Hello there", LanguageEN},
		{"", LanguageEN},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := DetectLanguage(tt.text); got != tt.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
