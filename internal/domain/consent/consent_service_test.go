package consent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaosweaver007/Genesis/internal/domain/consent"
	"github.com/chaosweaver007/Genesis/internal/utils/platformerrors"
)

// mockRepository is an in-memory consent.Repository for testing.
type mockRepository struct {
	prefs map[string]*consent.Preference
}

func newMockRepository() *mockRepository {
	return &mockRepository{prefs: make(map[string]*consent.Preference)}
}

func (m *mockRepository) Upsert(ctx context.Context, preference *consent.Preference) error {
	copied := *preference
	m.prefs[preference.SessionID] = &copied
	return nil
}

func (m *mockRepository) FindBySessionID(ctx context.Context, sessionID string) (*consent.Preference, error) {
	preference, ok := m.prefs[sessionID]
	if !ok {
		return nil, nil
	}
	copied := *preference
	return &copied, nil
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  consent.Level
		valid bool
	}{
		{name: "empty defaults to private", raw: "", want: consent.LevelPrivate, valid: true},
		{name: "private", raw: "private", want: consent.LevelPrivate, valid: true},
		{name: "anonymous", raw: "anonymous", want: consent.LevelAnonymous, valid: true},
		{name: "collective", raw: "collective", want: consent.LevelCollective, valid: true},
		{name: "case and whitespace normalized", raw: "  Collective ", want: consent.LevelCollective, valid: true},
		{name: "unknown rejected", raw: "public", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := consent.ParseLevel(tt.raw)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, level)
			}
		})
	}
}

func TestLevelGating(t *testing.T) {
	assert.False(t, consent.LevelPrivate.AllowsAnonymizedHash())
	assert.False(t, consent.LevelPrivate.AllowsCollectiveLearning())

	assert.True(t, consent.LevelAnonymous.AllowsAnonymizedHash())
	assert.False(t, consent.LevelAnonymous.AllowsCollectiveLearning())

	assert.True(t, consent.LevelCollective.AllowsAnonymizedHash())
	assert.True(t, consent.LevelCollective.AllowsCollectiveLearning())
}

func TestServiceSet(t *testing.T) {
	repo := newMockRepository()
	service := consent.NewService(repo)
	ctx := context.Background()

	stored, err := service.Set(ctx, &consent.Preference{
		SessionID: "session-1",
		Level:     consent.LevelCollective,
	})
	require.NoError(t, err)
	assert.Equal(t, consent.DefaultRetentionDays, stored.DataRetentionDays)

	stored, err = service.Set(ctx, &consent.Preference{
		SessionID:         "session-1",
		Level:             consent.LevelAnonymous,
		DataRetentionDays: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, stored.DataRetentionDays)

	got, err := service.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, consent.LevelAnonymous, got.Level)
	assert.Equal(t, 7, got.DataRetentionDays)
}

func TestServiceSetRejectsInvalidInput(t *testing.T) {
	service := consent.NewService(newMockRepository())
	ctx := context.Background()

	_, err := service.Set(ctx, &consent.Preference{Level: consent.LevelPrivate})
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))

	_, err = service.Set(ctx, &consent.Preference{SessionID: "session-1", Level: "loud"})
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestServiceGetMissingSession(t *testing.T) {
	service := consent.NewService(newMockRepository())

	_, err := service.Get(context.Background(), "unknown")
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestServiceResolveDefaults(t *testing.T) {
	service := consent.NewService(newMockRepository())

	preference, err := service.Resolve(context.Background(), "fresh-session")
	require.NoError(t, err)
	assert.Equal(t, consent.LevelPrivate, preference.Level)
	assert.Equal(t, consent.DefaultRetentionDays, preference.DataRetentionDays)
	assert.True(t, preference.AnonymizationRequired)
	assert.False(t, preference.CollectiveLearningEnabled)
}
