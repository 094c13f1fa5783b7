package domain

import (
	"github.com/google/wire"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/domain/consent"
	"github.com/chaosweaver007/Genesis/internal/domain/persona"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	// Consent domain
	consent.NewService,

	// Conversation archive domain
	archive.NewService,

	// Persona chat voices
	persona.PersonaProvider,
)
