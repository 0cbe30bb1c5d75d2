// Package gemini provides assistant.Generator and assistant.Embedder
// implementations backed by the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"spacescope/pkg/assistant"
	"spacescope/pkg/domain"
	"spacescope/pkg/remote"
	"spacescope/pkg/serrors"
	"strings"

	"google.golang.org/genai"
)

const (
	// DefaultModel answers chat, tutoring and RAG prompts.
	DefaultModel = "gemini-2.5-flash"
	// DefaultEmbeddingModel embeds RAG documents and questions.
	DefaultEmbeddingModel = "gemini-embedding-001"
)

// Options configure the Gemini client.
type Options struct {
	// APIKey is the Gemini API key. Required.
	APIKey string
	// Model is the generation model. Defaults to DefaultModel.
	Model string
	// EmbeddingModel is the embedding model. Defaults to DefaultEmbeddingModel.
	EmbeddingModel string
	// BaseURL overrides the API endpoint.
	BaseURL string
	// HTTPClient performs the requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// Client talks to the Gemini API. It is safe for concurrent use.
type Client struct {
	client         *genai.Client
	model          string
	embeddingModel string
}

// New creates a Client. It fails when no API key is given.
func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "gemini API key is required")
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.EmbeddingModel == "" {
		opts.EmbeddingModel = DefaultEmbeddingModel
	}

	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create genai client: %w", err)
	}

	return &Client{
		client:         client,
		model:          opts.Model,
		embeddingModel: opts.EmbeddingModel,
	}, nil
}

// Generate sends the prompt with its history and returns the answer text.
func (c *Client) Generate(ctx context.Context, p assistant.Prompt) (string, error) {
	contents := make([]*genai.Content, 0, len(p.History)+1)
	for _, turn := range p.History {
		role := genai.Role(genai.RoleUser)
		if turn.Role == domain.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(p.Message, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{}
	if p.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(p.System, genai.RoleUser)
	}
	if p.Temperature > 0 {
		cfg.Temperature = genai.Ptr(p.Temperature)
	}
	if p.MaxTokens > 0 {
		cfg.MaxOutputTokens = p.MaxTokens
	}
	if p.JSON {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", classify(err, "generate content")
	}

	return strings.TrimSpace(resp.Text()), nil
}

// Embed returns one vector per text, in order.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	resp, err := c.client.Models.EmbedContent(ctx, c.embeddingModel, contents, &genai.EmbedContentConfig{
		TaskType: "RETRIEVAL_DOCUMENT",
	})
	if err != nil {
		return nil, classify(err, "embed content")
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Embeddings))
	}

	out := make([][]float32, len(resp.Embeddings))
	for i, e := range resp.Embeddings {
		out[i] = e.Values
	}

	return out, nil
}

// classify marks errors the API answered with as rejections so callers
// report them as an error status rather than an unreachable backend.
func classify(err error, op string) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return serrors.Wrap(remote.ErrRejected, err, "gemini %s rejected with status %d", op, apiErr.Code)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return serrors.Wrap(remote.ErrRejected, err, "gemini %s rejected with status %d", op, apiErrPtr.Code)
	}

	return fmt.Errorf("could not %s: %w", op, err)
}

// Ensure Client conforms to the assistant interfaces at compile time.
var (
	_ assistant.Generator = (*Client)(nil)
	_ assistant.Embedder  = (*Client)(nil)
)
