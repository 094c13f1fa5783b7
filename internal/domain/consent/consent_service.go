package consent

import (
	"context"

	"github.com/chaosweaver007/Genesis/internal/utils/platformerrors"
)

// Service manages consent preferences.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Set validates and upserts a session's preference. Retention days at or
// below zero fall back to the default.
func (s *Service) Set(ctx context.Context, preference *Preference) (*Preference, error) {
	if preference.SessionID == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"session id is required", nil, "c8f1d2a9-3e47-4b6a-9c5d-71e8f0a2b4c6")
	}

	level, ok := ParseLevel(string(preference.Level))
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"unknown consent level", nil, "5a9e3c71-d2b8-4f04-8a16-c93d5e7f2b08")
	}
	preference.Level = level

	if preference.DataRetentionDays <= 0 {
		preference.DataRetentionDays = DefaultRetentionDays
	}

	if err := s.repo.Upsert(ctx, preference); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to store consent preference")
	}
	return preference, nil
}

// Get returns the stored preference for a session.
func (s *Service) Get(ctx context.Context, sessionID string) (*Preference, error) {
	preference, err := s.repo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load consent preference")
	}
	if preference == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"no consent preference stored for session", nil, "0b7d4f92-6a1c-4e38-b5a0-d8c2e9f17a35")
	}
	return preference, nil
}

// Resolve returns the stored preference, or the implicit private default when
// the session never registered one.
func (s *Service) Resolve(ctx context.Context, sessionID string) (*Preference, error) {
	preference, err := s.repo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load consent preference")
	}
	if preference == nil {
		return DefaultPreference(sessionID), nil
	}
	return preference, nil
}
