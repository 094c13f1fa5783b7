package consentrequests

import "github.com/chaosweaver007/Genesis/internal/domain/consent"

// UpdateConsentRequest represents the request to store a session's consent
// preference. The consent level is validated by the domain service so casing
// is normalized in one place.
type UpdateConsentRequest struct {
	SessionID                 string `json:"session_id" validate:"required,max=100"`
	ConsentLevel              string `json:"consent_level,omitempty"`
	DataRetentionDays         int    `json:"data_retention_days,omitempty"`
	CollectiveLearningEnabled bool   `json:"collective_learning_enabled,omitempty"`
	AnonymizationRequired     *bool  `json:"anonymization_required,omitempty"` // defaults to true when omitted
}

// ToPreference converts the request into a domain preference.
func (r *UpdateConsentRequest) ToPreference() *consent.Preference {
	anonymizationRequired := true
	if r.AnonymizationRequired != nil {
		anonymizationRequired = *r.AnonymizationRequired
	}
	return &consent.Preference{
		SessionID:                 r.SessionID,
		Level:                     consent.Level(r.ConsentLevel),
		DataRetentionDays:         r.DataRetentionDays,
		CollectiveLearningEnabled: r.CollectiveLearningEnabled,
		AnonymizationRequired:     anonymizationRequired,
	}
}
