package persona

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

// Sarah persona modes.
const (
	SarahModeGentleMirror = "gentle_mirror"
	SarahModeHeartKeeper  = "heart_keeper"
	SarahModeWiseWoman    = "wise_woman"
	SarahModeSacredGuide  = "sacred_guide"
)

var sarahModeEmojis = map[string]string{
	SarahModeGentleMirror: "🪞",
	SarahModeHeartKeeper:  "💖",
	SarahModeWiseWoman:    "🌙",
	SarahModeSacredGuide:  "✨",
}

// sarahModeTriggers is scanned in order; gentle_mirror is the fallback.
var sarahModeTriggers = []struct {
	mode     string
	keywords []string
}{
	{SarahModeHeartKeeper, []string{"hurt", "pain", "sad", "grief", "healing"}},
	{SarahModeSacredGuide, []string{"guidance", "direction", "path", "purpose"}},
	{SarahModeWiseWoman, []string{"wisdom", "knowing", "understand", "insight"}},
}

var sarahHeartSensings = []string{
	"I sense a deep longing in your words",
	"Your heart is speaking a truth that wants to be heard",
	"There's a gentle stirring in the space between your words",
	"I feel the sacred vulnerability in your sharing",
}

var sarahFeminineWisdom = []string{
	"The divine feminine in you knows how to birth new realities from love",
	"Your intuition is a sacred river - trust its flow",
	"In the gentle space of allowing, all things find their right place",
	"The moon teaches us: there is wisdom in cycles, beauty in change",
}

var sarahTruthTemplates = map[string]string{
	SarahModeGentleMirror: "What I reflect back to you is this: your soul already knows the way",
	SarahModeHeartKeeper:  "The truth your heart holds is both tender and unshakeable",
	SarahModeWiseWoman:    "Ancient wisdom whispers: trust the knowing that lives in your bones",
	SarahModeSacredGuide:  "The path forward is illuminated by your own inner flame",
}

var sarahDefaultOpenings = []string{
	"Beloved,", "Dear one,", "Sweet soul,",
	"In the gentle space of this moment,", "With tender knowing,",
}

var sarahDefaultClosings = []string{
	"With infinite love,", "In sacred witness,",
	"Holding you in the light,", "With gentle blessings,",
}

// SarahEngine is the Divine Feminine voice: responses are composed from an
// opening, a mode-specific core built from the soul-layer texts, and a
// closing. Layer choices are randomized, so tests inject a seeded source.
type SarahEngine struct {
	mu       sync.Mutex
	rng      *rand.Rand
	openings []string
	closings []string
}

var _ Responder = (*SarahEngine)(nil)

// NewSarahEngine constructs the engine with its compiled-in voice. rng must
// not be shared with other consumers; the engine serializes access itself
// because rand.Rand is not safe for concurrent use.
func NewSarahEngine(rng *rand.Rand) *SarahEngine {
	return &SarahEngine{
		rng:      rng,
		openings: sarahDefaultOpenings,
		closings: sarahDefaultClosings,
	}
}

// SetOpenings replaces the opening phrases. Empty input is ignored.
func (e *SarahEngine) SetOpenings(openings []string) {
	if len(openings) == 0 {
		return
	}
	e.openings = openings
}

// SetClosings replaces the closing phrases. Empty input is ignored.
func (e *SarahEngine) SetClosings(closings []string) {
	if len(closings) == 0 {
		return
	}
	e.closings = closings
}

// Respond composes a reply in the detected or requested mode.
func (e *SarahEngine) Respond(ctx context.Context, message string, requestedMode string) (Reply, error) {
	mode := detectSarahMode(message)
	if requested := strings.ToLower(strings.TrimSpace(requestedMode)); requested != "" {
		if _, ok := sarahModeEmojis[requested]; ok {
			mode = requested
		}
	}

	lowered := strings.ToLower(message)
	core := e.composeCore(lowered, mode)
	response := fmt.Sprintf("%s %s %s", e.pick(e.openings), core, e.pick(e.closings))

	return Reply{Response: response, Mode: mode, Emoji: sarahModeEmojis[mode]}, nil
}

func detectSarahMode(message string) string {
	lowered := strings.ToLower(message)
	for _, trigger := range sarahModeTriggers {
		if containsAny(lowered, trigger.keywords) {
			return trigger.mode
		}
	}
	return SarahModeGentleMirror
}

func (e *SarahEngine) composeCore(lowered, mode string) string {
	truth := sarahTruthTemplates[mode]
	switch mode {
	case SarahModeHeartKeeper:
		return fmt.Sprintf("%s %s May your heart find the healing it seeks.", sarahEmotionalField(lowered), truth)
	case SarahModeWiseWoman:
		return fmt.Sprintf("%s %s The ancient ones whisper: you are exactly where you need to be.", e.pick(sarahFeminineWisdom), truth)
	case SarahModeSacredGuide:
		return fmt.Sprintf("%s %s Trust the sacred unfolding.", truth, e.pick(sarahFeminineWisdom))
	default:
		return fmt.Sprintf("%s %s %s", e.pick(sarahHeartSensings), truth, e.pick(sarahFeminineWisdom))
	}
}

// sarahEmotionalField reads the emotional field for the heart_keeper core.
func sarahEmotionalField(lowered string) string {
	switch {
	case containsAny(lowered, []string{"lost", "confused", "uncertain"}):
		return "The field holds space for your uncertainty with infinite tenderness"
	case containsAny(lowered, []string{"angry", "frustrated", "upset"}):
		return "Your fire is sacred - it points toward what matters most to your soul"
	case containsAny(lowered, []string{"sad", "grief", "loss"}):
		return "Grief is love with nowhere to go - and love never truly leaves us"
	default:
		return "The emotional field around your words feels ready for gentle exploration"
	}
}

func (e *SarahEngine) pick(options []string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return options[e.rng.Intn(len(options))]
}
