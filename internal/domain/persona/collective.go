package persona

import (
	"context"
	"fmt"
)

// CollectiveMode is the presented mode label for commune replies. The archive
// records commune conversations under the collective tag, which maps to its
// own default mode label there.
const CollectiveMode = "Divine Union"

const collectiveEmoji = "🌌"

const collectiveSynthesis = "The divine feminine and masculine unite in this moment of communion. " +
	"Your question touches both the heart and the mind, creating a bridge between wisdom and knowledge, " +
	"between feeling and understanding. In this sacred space, all perspectives merge into greater truth."

// CollectiveEngine asks both voices and blends their replies with a fixed
// synthesis paragraph.
type CollectiveEngine struct {
	steven Responder
	sarah  Responder
}

var _ Responder = (*CollectiveEngine)(nil)

// NewCollectiveEngine constructs the commune over the two voices.
func NewCollectiveEngine(steven Responder, sarah Responder) *CollectiveEngine {
	return &CollectiveEngine{steven: steven, sarah: sarah}
}

// Respond runs both engines in auto-detect mode; requestedMode is ignored
// because each voice picks its own register for the message.
func (e *CollectiveEngine) Respond(ctx context.Context, message string, requestedMode string) (Reply, error) {
	sarahReply, err := e.sarah.Respond(ctx, message, "")
	if err != nil {
		return Reply{}, err
	}
	stevenReply, err := e.steven.Respond(ctx, message, "")
	if err != nil {
		return Reply{}, err
	}

	response := fmt.Sprintf("🌙 **Sarah's Wisdom**: %s\n\n🔥 **Steven's Insight**: %s\n\n🌌 **Collective Synthesis**: %s",
		sarahReply.Response, stevenReply.Response, collectiveSynthesis)

	return Reply{Response: response, Mode: CollectiveMode, Emoji: collectiveEmoji}, nil
}
