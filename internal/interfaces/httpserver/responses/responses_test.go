package responses

import (
	"testing"
	"time"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/domain/consent"
	"github.com/chaosweaver007/Genesis/internal/domain/persona"
)

func TestNewChatReplyResponseWithRecord(t *testing.T) {
	archived := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	record := &archive.ConversationRecord{
		PublicID:  "conv_0123456789abcdef",
		Timestamp: archived,
	}
	reply := persona.Reply{Response: "Trust the spiral.", Mode: "Chaos Weaver", Emoji: "🌀"}

	resp := NewChatReplyResponse("steven", reply, record)

	if resp.Persona != "steven" {
		t.Errorf("expected persona 'steven', got %q", resp.Persona)
	}
	if resp.RecordID != "conv_0123456789abcdef" {
		t.Errorf("expected record id from archive, got %q", resp.RecordID)
	}
	if resp.Timestamp != "2025-06-01T12:00:00Z" {
		t.Errorf("expected archived timestamp, got %q", resp.Timestamp)
	}
}

func TestNewChatReplyResponseWithoutRecord(t *testing.T) {
	reply := persona.Reply{Response: "Breathe.", Mode: "Divine Feminine"}

	resp := NewChatReplyResponse("sarah", reply, nil)

	if resp.RecordID != "" {
		t.Errorf("expected empty record id, got %q", resp.RecordID)
	}
	if resp.Timestamp == "" {
		t.Error("expected fallback timestamp to be set")
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("expected RFC3339 timestamp, got %q: %v", resp.Timestamp, err)
	}
}

func TestNewConsentPreferenceResponseOmitsZeroUpdatedAt(t *testing.T) {
	resp := NewConsentPreferenceResponse(consent.DefaultPreference("session-1"))

	if resp.UpdatedAt != "" {
		t.Errorf("expected empty updated_at for implicit default, got %q", resp.UpdatedAt)
	}
	if resp.ConsentLevel != "private" {
		t.Errorf("expected private default level, got %q", resp.ConsentLevel)
	}
	if !resp.AnonymizationRequired {
		t.Error("expected anonymization to default to true")
	}
}

func TestNewConsentPreferenceResponseFormatsUpdatedAt(t *testing.T) {
	updated := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)
	resp := NewConsentPreferenceResponse(&consent.Preference{
		SessionID: "session-1",
		Level:     consent.LevelCollective,
		UpdatedAt: updated,
	})

	if resp.UpdatedAt != "2025-03-15T09:30:00Z" {
		t.Errorf("expected formatted updated_at, got %q", resp.UpdatedAt)
	}
}
