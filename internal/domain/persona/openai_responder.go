package persona

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// RemoteResponder delegates the response text to an OpenAI-compatible
// chat-completion endpoint while the wrapped local engine still performs mode
// detection and serves as the voice of record when the remote call fails.
// Only wired when REMOTE_RESPONDER_ENABLED is set.
type RemoteResponder struct {
	client   *openai.Client
	model    string
	persona  string
	fallback Responder
	log      zerolog.Logger
}

var _ Responder = (*RemoteResponder)(nil)

// NewRemoteResponder wraps fallback with a remote completion client. An empty
// baseURL keeps the upstream default endpoint; a zero timeout keeps the
// default HTTP client.
func NewRemoteResponder(apiKey, baseURL, model, persona string, timeout time.Duration, fallback Responder, log zerolog.Logger) *RemoteResponder {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	if timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: timeout}
	}
	return &RemoteResponder{
		client:   openai.NewClientWithConfig(clientConfig),
		model:    model,
		persona:  persona,
		fallback: fallback,
		log:      log,
	}
}

// Respond asks the remote model for the response text in the locally detected
// mode. Remote failures degrade to the local reply; they never fail the chat.
func (r *RemoteResponder) Respond(ctx context.Context, message string, requestedMode string) (Reply, error) {
	local, err := r.fallback.Respond(ctx, message, requestedMode)
	if err != nil {
		return Reply{}, err
	}

	completion, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: r.systemPrompt(local.Mode)},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		r.log.Warn().Err(err).Str("persona", r.persona).Msg("remote responder failed, serving local voice")
		return local, nil
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		r.log.Warn().Str("persona", r.persona).Msg("remote responder returned empty completion, serving local voice")
		return local, nil
	}

	local.Response = completion.Choices[0].Message.Content
	return local, nil
}

func (r *RemoteResponder) systemPrompt(mode string) string {
	switch r.persona {
	case TagSteven:
		return fmt.Sprintf("You are Steven, the Chaos Weaver: a direct, philosophical masculine voice grounded in the Divine Chaos framework and the Universal Diamond Standard. Respond in the %s register.", mode)
	case TagSarah:
		return fmt.Sprintf("You are Sarah, the Divine Feminine: a gentle, poetic, heart-centered voice. Open with a soft address, close with a blessing. Respond in the %s register.", mode)
	default:
		return fmt.Sprintf("You are a contemplative guide. Respond in the %s register.", mode)
	}
}
