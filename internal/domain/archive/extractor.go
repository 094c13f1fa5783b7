package archive

import "strings"

// All matching below is plain case-insensitive substring containment, not
// tokenization: "manipulate" also matches inside a longer word.

// themeLexicon maps each recognized theme to the keywords that signal it in
// user messages. Slice order fixes the order themes appear in the extracted
// bundle.
var themeLexicon = []struct {
	theme    string
	keywords []string
}{
	{"spiritual_growth", []string{"spiritual", "awakening", "consciousness", "enlightenment", "soul"}},
	{"relationships", []string{"relationship", "love", "partner", "family", "friend"}},
	{"career_purpose", []string{"career", "job", "purpose", "calling", "work"}},
	{"healing", []string{"healing", "trauma", "pain", "recovery", "therapy"}},
	{"creativity", []string{"creative", "art", "music", "writing", "expression"}},
	{"decision_making", []string{"decision", "choice", "confused", "uncertain", "direction"}},
	{"personal_growth", []string{"growth", "development", "improvement", "change", "transformation"}},
	{"meaning_purpose", []string{"meaning", "purpose", "why", "point", "significance"}},
}

// GuidanceTypeInformational is the fallback when no guidance keywords match.
const GuidanceTypeInformational = "informational"

// guidanceLexicon classifies the response text; checks run in order and the
// first matching type wins.
var guidanceLexicon = []struct {
	guidanceType string
	keywords     []string
}{
	{"reflective", []string{"reflect", "consider", "explore", "examine"}},
	{"actionable", []string{"action", "step", "do", "try", "practice"}},
	{"perspective_shift", []string{"perspective", "view", "see", "understand"}},
	{"emotional_support", []string{"feel", "emotion", "heart", "compassion"}},
}

// personaLexicon counts affinity signals for each responder in the user text.
var personaLexicon = struct {
	steven []string
	sarah  []string
	both   []string
}{
	steven: []string{"logic", "reason", "structure", "system", "chaos", "order", "transformation"},
	sarah:  []string{"feel", "emotion", "heart", "healing", "relationship", "love", "gentle"},
	both:   []string{"complex", "confused", "multiple", "perspective", "help", "guidance"},
}

// toneLexicon drives the user-tone label and supportiveness counts. The
// neutral list is part of the recorded vocabulary; the neutral label itself is
// the fallback when neither positive nor negative wins.
var toneLexicon = struct {
	positive   []string
	negative   []string
	neutral    []string
	supportive []string
}{
	positive:   []string{"happy", "joy", "love", "grateful", "excited", "hopeful", "peaceful"},
	negative:   []string{"sad", "angry", "frustrated", "worried", "anxious", "depressed", "lost"},
	neutral:    []string{"thinking", "wondering", "considering", "curious", "question"},
	supportive: []string{"understand", "support", "compassion", "gentle"},
}

// Tone labels attached to the emotional-tone bundle.
const (
	ToneLabelPositive = "positive"
	ToneLabelNegative = "negative"
	ToneLabelNeutral  = "neutral"
)

// transformationLexicon flags independent indicators; integration_guidance is
// the only one scanned against the response instead of the user message.
var transformationLexicon = []struct {
	indicator    string
	keywords     []string
	scanResponse bool
}{
	{"breakthrough_moment", []string{"breakthrough", "realization", "understand", "clarity"}, false},
	{"growth_readiness", []string{"ready", "change", "grow", "transform"}, false},
	{"resistance_present", []string{"stuck", "can't", "impossible", "hopeless"}, false},
	{"integration_guidance", []string{"integrate", "embody", "practice", "apply"}, true},
}

// ExtractPatterns derives the analysis bundle for one exchange. Empty inputs
// degrade to empty themes and zero counts, never an error.
func ExtractPatterns(userMessage, aiResponse string) *ExtractedPatterns {
	userLower := strings.ToLower(userMessage)
	responseLower := strings.ToLower(aiResponse)

	themes := make([]string, 0)
	for _, entry := range themeLexicon {
		if containsAny(userLower, entry.keywords) {
			themes = append(themes, entry.theme)
		}
	}

	guidanceType := GuidanceTypeInformational
	for _, entry := range guidanceLexicon {
		if containsAny(responseLower, entry.keywords) {
			guidanceType = entry.guidanceType
			break
		}
	}

	positiveCount := countPresent(userLower, toneLexicon.positive)
	negativeCount := countPresent(userLower, toneLexicon.negative)
	userTone := ToneLabelNeutral
	if positiveCount > negativeCount {
		userTone = ToneLabelPositive
	} else if negativeCount > 0 {
		userTone = ToneLabelNegative
	}

	supportiveness := countPresent(responseLower, toneLexicon.supportive)
	shiftPotential := countPresent(responseLower, toneLexicon.positive) + supportiveness

	indicators := make([]string, 0)
	for _, entry := range transformationLexicon {
		scanned := userLower
		if entry.scanResponse {
			scanned = responseLower
		}
		if containsAny(scanned, entry.keywords) {
			indicators = append(indicators, entry.indicator)
		}
	}

	return &ExtractedPatterns{
		Themes:       themes,
		GuidanceType: guidanceType,
		PersonaEffectiveness: PersonaIndicators{
			StevenIndicators: countPresent(userLower, personaLexicon.steven),
			SarahIndicators:  countPresent(userLower, personaLexicon.sarah),
			BothIndicators:   countPresent(userLower, personaLexicon.both),
		},
		EmotionalTone: EmotionalTone{
			UserTone:                userTone,
			ResponseSupportiveness:  supportiveness,
			EmotionalShiftPotential: shiftPotential,
		},
		TransformationIndicators: indicators,
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// countPresent counts how many keywords appear at least once; repeated
// occurrences of the same keyword count once.
func countPresent(text string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			count++
		}
	}
	return count
}
