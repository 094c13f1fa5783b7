package persona_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaosweaver007/Genesis/internal/domain/persona"
)

var sarahOpenings = []string{
	"Beloved,", "Dear one,", "Sweet soul,",
	"In the gentle space of this moment,", "With tender knowing,",
}

var sarahClosings = []string{
	"With infinite love,", "In sacred witness,",
	"Holding you in the light,", "With gentle blessings,",
}

func newSarah() *persona.SarahEngine {
	return persona.NewSarahEngine(rand.New(rand.NewSource(1)))
}

func hasAnyPrefix(s string, options []string) bool {
	for _, option := range options {
		if strings.HasPrefix(s, option) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, options []string) bool {
	for _, option := range options {
		if strings.HasSuffix(s, option) {
			return true
		}
	}
	return false
}

func TestSarahModeDetection(t *testing.T) {
	engine := newSarah()
	ctx := context.Background()

	tests := []struct {
		name     string
		message  string
		wantMode string
		wantEmoj string
	}{
		{"heart keeper on pain", "I am in so much pain", persona.SarahModeHeartKeeper, "💖"},
		{"sacred guide on path", "I need direction on my path", persona.SarahModeSacredGuide, "✨"},
		{"wise woman on wisdom", "Share your wisdom with me", persona.SarahModeWiseWoman, "🌙"},
		{"gentle mirror fallback", "hello", persona.SarahModeGentleMirror, "🪞"},
		{"heart keeper wins over sacred guide", "My grief blocks my path", persona.SarahModeHeartKeeper, "💖"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reply, err := engine.Respond(ctx, tc.message, "")
			require.NoError(t, err)
			assert.Equal(t, tc.wantMode, reply.Mode)
			assert.Equal(t, tc.wantEmoj, reply.Emoji)
		})
	}
}

func TestSarahRequestedModeWins(t *testing.T) {
	engine := newSarah()

	reply, err := engine.Respond(context.Background(), "hello", "wise_woman")
	require.NoError(t, err)
	assert.Equal(t, persona.SarahModeWiseWoman, reply.Mode)
	assert.Contains(t, reply.Response, "Ancient wisdom whispers: trust the knowing that lives in your bones")

	reply, err = engine.Respond(context.Background(), "hello", "storm_caller")
	require.NoError(t, err)
	assert.Equal(t, persona.SarahModeGentleMirror, reply.Mode)
}

func TestSarahCompositionShape(t *testing.T) {
	engine := newSarah()

	reply, err := engine.Respond(context.Background(), "hello", "")
	require.NoError(t, err)
	assert.True(t, hasAnyPrefix(reply.Response, sarahOpenings), "response %q lacks an opening", reply.Response)
	assert.True(t, hasAnySuffix(reply.Response, sarahClosings), "response %q lacks a closing", reply.Response)
	assert.Contains(t, reply.Response, "What I reflect back to you is this: your soul already knows the way")
}

func TestSarahHeartKeeperReadsEmotionalField(t *testing.T) {
	engine := newSarah()
	ctx := context.Background()

	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{"uncertainty field", "My grief leaves me lost", "The field holds space for your uncertainty with infinite tenderness"},
		{"anger field", "I am hurt and so angry", "Your fire is sacred - it points toward what matters most to your soul"},
		{"grief field", "The grief will not lift", "Grief is love with nowhere to go - and love never truly leaves us"},
		{"open field", "I want healing", "The emotional field around your words feels ready for gentle exploration"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reply, err := engine.Respond(ctx, tc.message, "")
			require.NoError(t, err)
			require.Equal(t, persona.SarahModeHeartKeeper, reply.Mode)
			assert.Contains(t, reply.Response, tc.contains)
			assert.Contains(t, reply.Response, "May your heart find the healing it seeks.")
		})
	}
}

func TestSarahModeClosingLines(t *testing.T) {
	engine := newSarah()
	ctx := context.Background()

	wise, err := engine.Respond(ctx, "What do you understand about this?", "")
	require.NoError(t, err)
	require.Equal(t, persona.SarahModeWiseWoman, wise.Mode)
	assert.Contains(t, wise.Response, "The ancient ones whisper: you are exactly where you need to be.")

	guide, err := engine.Respond(ctx, "Show me my path", "")
	require.NoError(t, err)
	require.Equal(t, persona.SarahModeSacredGuide, guide.Mode)
	assert.Contains(t, guide.Response, "Trust the sacred unfolding.")
	assert.Contains(t, guide.Response, "The path forward is illuminated by your own inner flame")
}

func TestSarahVoiceOverrides(t *testing.T) {
	engine := newSarah()
	engine.SetOpenings([]string{"Traveler,"})
	engine.SetClosings([]string{"Until the next turning,"})

	reply, err := engine.Respond(context.Background(), "hello", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reply.Response, "Traveler,"))
	assert.True(t, strings.HasSuffix(reply.Response, "Until the next turning,"))

	// Empty overrides leave the voice untouched.
	engine.SetOpenings(nil)
	reply, err = engine.Respond(context.Background(), "hello", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reply.Response, "Traveler,"))
}

func TestSarahSeededSequenceIsDeterministic(t *testing.T) {
	first := persona.NewSarahEngine(rand.New(rand.NewSource(42)))
	second := persona.NewSarahEngine(rand.New(rand.NewSource(42)))

	for i := 0; i < 5; i++ {
		a, err := first.Respond(context.Background(), "hello", "")
		require.NoError(t, err)
		b, err := second.Respond(context.Background(), "hello", "")
		require.NoError(t, err)
		assert.Equal(t, a.Response, b.Response)
	}
}
