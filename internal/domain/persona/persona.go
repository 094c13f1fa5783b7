// Package persona implements the rule-based response engines behind the chat
// endpoints: the Steven and Sarah voices and the collective commune that
// blends them. Engines are deterministic keyword matchers over canned
// templates; they never call out unless the remote responder is enabled.
package persona

import (
	"context"
	"strings"
)

// Persona tags recorded on archived conversations.
const (
	TagSteven     = "steven"
	TagSarah      = "sarah"
	TagCollective = "collective"
)

// Reply is one generated persona response.
type Reply struct {
	Response string `json:"response"`
	Mode     string `json:"mode"`
	Emoji    string `json:"emoji"`
}

// Responder generates a reply for a user message. A non-empty requestedMode
// pins that persona mode; engines fall back to keyword detection otherwise.
// Unknown requested modes are ignored, not rejected.
type Responder interface {
	Respond(ctx context.Context, message string, requestedMode string) (Reply, error)
}

// containsAny reports whether lowered contains at least one keyword.
// Matching is substring based, so "artwork" hits "art".
func containsAny(lowered string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
