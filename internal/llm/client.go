package llm

import (
	"context"
	"errors"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
	"github.com/rs/zerolog/log"
)

// Client handles OpenAI API requests
type Client struct {
	api       *openai.Client
	maxTokens int
}

// NewClient creates a new OpenAI client.
func NewClient(apiKey, orgID string, maxTokens int) *Client {
	config := openai.DefaultConfig(apiKey)
	config.OrgID = orgID
	return &Client{
		api:       openai.NewClientWithConfig(config),
		maxTokens: maxTokens,
	}
}

// ErrContentFlagged is returned when moderation rejects the input.
var ErrContentFlagged = errors.New("content flagged by moderation")

// Moderate checks text against the moderation endpoint. A moderation
// transport failure counts as flagged rather than letting the text pass.
func (c *Client) Moderate(ctx context.Context, text string) error {
	resp, err := c.api.Moderations(ctx, openai.ModerationRequest{
		Input: text,
		Model: openai.ModerationTextLatest,
	})
	if err != nil {
		log.Warn().Err(err).Msg("moderation request failed, treating as flagged")
		return fmt.Errorf("moderation request: %w", err)
	}
	if len(resp.Results) > 0 && resp.Results[0].Flagged {
		return ErrContentFlagged
	}
	return nil
}

// StreamCompletion streams a chat completion, invoking onDelta for each
// content fragment. The returned Cost comes from the final usage chunk
// when the API sends one, or falls back to a character-count estimate.
func (c *Client) StreamCompletion(ctx context.Context, model, prompt string, onDelta func(string) error) (Cost, error) {
	stream, err := c.api.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a helpful assistant."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: c.maxTokens,
		Stream:    true,
		StreamOptions: &openai.StreamOptions{
			IncludeUsage: true,
		},
	})
	if err != nil {
		return Cost{}, fmt.Errorf("create completion stream: %w", err)
	}
	defer stream.Close()

	var usage *openai.Usage
	var contentLen int

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Cost{}, fmt.Errorf("receive stream chunk: %w", err)
		}

		// The usage-bearing chunk arrives last with no choices.
		if chunk.Usage != nil {
			usage = chunk.Usage
		}
		if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
			content := chunk.Choices[0].Delta.Content
			contentLen += len(content)
			if err := onDelta(content); err != nil {
				return Cost{}, fmt.Errorf("deliver stream chunk: %w", err)
			}
		}
	}

	if usage != nil {
		return CalculateCost(model, usage.PromptTokens, usage.CompletionTokens)
	}

	log.Warn().Str("model", model).Msg("no usage data in stream, estimating cost")
	cost, err := CalculateCost(model, len(prompt)/4, contentLen/4)
	if err != nil {
		return Cost{}, err
	}
	cost.Estimated = true
	return cost, nil
}
