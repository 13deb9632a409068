package nlu

import "regexp"

// Rule names an identifier extraction rule.
type Rule string

const (
	RuleNone      Rule = ""
	RuleMarker    Rule = "marker"
	RuleKeyword   Rule = "keyword"
	RuleBareToken Rule = "bare_token"
)

type identifierRule struct {
	name    Rule
	pattern *regexp.Regexp
}

// identifierRules is evaluated top to bottom and the first match wins.
// The bare token rule also catches incidental numbers ("123 items"); it stays last
// so it never shadows an explicit reference.
var identifierRules = []identifierRule{
	{
		name:    RuleMarker,
		pattern: regexp.MustCompile(`#\s*([A-Za-z0-9-]+)`),
	},
	{
		name:    RuleKeyword,
		pattern: regexp.MustCompile(`(?i)\b(?:invoice|facture|fact|inv|n°|num(?:[ée]ro)?(?:\s+de)?\s+facture)\b\s*#?\s*([A-Za-z0-9-]+)`),
	},
	{
		name:    RuleBareToken,
		pattern: regexp.MustCompile(`\b([A-Z]{1,4}-?\d{2,6}|\d{2,6})\b`),
	},
}

// ExtractIdentifier returns the invoice identifier referenced by message, if any.
func ExtractIdentifier(message string) (string, bool) {
	id, rule := ExtractIdentifierWithRule(message)
	return id, rule != RuleNone
}

// ExtractIdentifierWithRule is ExtractIdentifier that also reports which rule matched.
func ExtractIdentifierWithRule(message string) (string, Rule) {
	for _, r := range identifierRules {
		if id, ok := r.match(message); ok {
			return id, r.name
		}
	}
	return "", RuleNone
}

// MatchRule applies a single rule to message, ignoring the others.
func MatchRule(rule Rule, message string) (string, bool) {
	for _, r := range identifierRules {
		if r.name == rule {
			return r.match(message)
		}
	}
	return "", false
}

func (r identifierRule) match(message string) (string, bool) {
	m := r.pattern.FindStringSubmatch(message)
	if len(m) < 2 || m[1] == "" {
		return "", false
	}
	return m[1], true
}
