package persona

import (
	"math/rand"
	"time"

	"github.com/google/wire"

	"github.com/chaosweaver007/Genesis/internal/config"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/logger"
)

// Engines bundles the chat voices served by the HTTP layer.
type Engines struct {
	Steven     Responder
	Sarah      Responder
	Collective Responder
}

// ProvideEngines builds the persona engines, applies any bootstrap voice
// overrides from config, and gates the remote responder wrapping.
func ProvideEngines(cfg *config.Config) *Engines {
	log := logger.GetLogger().With().Str("component", "persona").Logger()

	steven := NewStevenEngine()
	sarah := NewSarahEngine(rand.New(rand.NewSource(time.Now().UnixNano())))

	for _, entry := range cfg.PersonaBootstrapEntries() {
		switch entry.Name {
		case TagSteven:
			steven.SetSignaturePhrases(entry.SignaturePhrases)
			log.Info().Int("signature_phrases", len(entry.SignaturePhrases)).Msg("applied steven voice override")
		case TagSarah:
			sarah.SetOpenings(entry.Openings)
			sarah.SetClosings(entry.Closings)
			log.Info().
				Int("openings", len(entry.Openings)).
				Int("closings", len(entry.Closings)).
				Msg("applied sarah voice override")
		default:
			log.Warn().Str("name", entry.Name).Msg("ignoring voice override for unknown persona")
		}
	}

	var stevenVoice Responder = steven
	var sarahVoice Responder = sarah
	if cfg.RemoteResponderEnabled {
		stevenVoice = NewRemoteResponder(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, TagSteven, cfg.HTTPTimeout, steven, log)
		sarahVoice = NewRemoteResponder(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, TagSarah, cfg.HTTPTimeout, sarah, log)
		log.Info().Str("model", cfg.OpenAIModel).Msg("remote responder enabled for chat voices")
	}

	return &Engines{
		Steven:     stevenVoice,
		Sarah:      sarahVoice,
		Collective: NewCollectiveEngine(stevenVoice, sarahVoice),
	}
}

var PersonaProvider = wire.NewSet(ProvideEngines)
