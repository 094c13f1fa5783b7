package archive

import "regexp"

// anonymizationRules run in fixed order before any anonymized hash is
// computed. The name rule fires before the address rule, so a street like
// "Main Street" is already rewritten to [NAME] when the address rule runs.
var anonymizationRules = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`), "[EMAIL]"},
	{regexp.MustCompile(`\b\d{3}-\d{3}-\d{4}\b`), "[PHONE]"},
	{regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`), "[NAME]"},
	{regexp.MustCompile(`\b\d{1,5} [A-Za-z ]+ (Street|St|Avenue|Ave|Road|Rd|Drive|Dr)\b`), "[ADDRESS]"},
}

// Anonymize replaces common personal identifiers (emails, US phone numbers,
// capitalized full names, street addresses) with placeholder tokens. The name
// rule is broad: any capitalized two-word phrase matches.
func Anonymize(text string) string {
	for _, rule := range anonymizationRules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return text
}
