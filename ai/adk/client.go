package adk

import (
	"SupportSquad/entity"
	"SupportSquad/internal/config"
	"SupportSquad/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Client talks to a real response-generation backend exposed through an
// OpenAI-compatible chat-completion endpoint (the production ADK deployment).
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	log     *slog.Logger
}

// NewClient returns nil when no endpoint or key is configured; the caller
// falls back to the keyword responder in that case.
func NewClient(conf *config.Config, log *slog.Logger) (*Client, error) {
	if conf.ADK.Endpoint == "" && conf.ADK.ApiKey == "" {
		return nil, nil
	}

	clientConfig := openai.DefaultConfig(conf.ADK.ApiKey)
	if conf.ADK.Endpoint != "" {
		clientConfig.BaseURL = conf.ADK.Endpoint
	}

	if conf.Google.Credentials != "" {
		data, err := os.ReadFile(conf.Google.Credentials)
		if err != nil {
			return nil, fmt.Errorf("read google credentials: %w", err)
		}
		creds, err := google.CredentialsFromJSON(context.Background(), data, cloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("parse google credentials: %w", err)
		}
		clientConfig.HTTPClient = oauth2.NewClient(context.Background(), creds.TokenSource)
	}

	timeout := time.Duration(conf.ADK.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   conf.ADK.Model,
		timeout: timeout,
		log:     log.With(sl.Module("adk.client")),
	}, nil
}

// Generate sends the message to the backend with a bounded timeout. A timeout
// surfaces as a regular error so the dispatcher maps it to a service failure
// instead of blocking the request.
func (c *Client) Generate(ctx context.Context, text, conversationID string) (entity.GeneratedResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		User:  conversationID,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	})
	if err != nil {
		return entity.GeneratedResponse{}, fmt.Errorf("adk chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return entity.GeneratedResponse{}, fmt.Errorf("adk chat completion: no choices returned")
	}

	c.log.With(
		slog.String("model", resp.Model),
		slog.String("conversation_id", conversationID),
	).Debug("generated response")

	return entity.GeneratedResponse{
		Text: resp.Choices[0].Message.Content,
		Metadata: map[string]any{
			"model":         resp.Model,
			"completion_id": resp.ID,
		},
	}, nil
}
