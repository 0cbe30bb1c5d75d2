// Package assistant defines the generative AI backend the gateway calls for
// chat, tutoring, insights and retrieval-augmented answers.
package assistant

import (
	"context"
	"spacescope/pkg/domain"
)

// Prompt is a single generation request.
type Prompt struct {
	// System is the system instruction.
	System string
	// History holds the earlier turns of the conversation, oldest first.
	History []domain.ChatTurn
	// Message is the new user message.
	Message string
	// Temperature controls sampling. Zero uses the backend default.
	Temperature float32
	// MaxTokens caps the answer length. Zero uses the backend default.
	MaxTokens int32
	// JSON asks the backend to answer with a JSON document.
	JSON bool
}

// Generator produces text completions. Implementations must honor ctx and
// mark errors the backend answered with as remote.ErrRejected.
//
//go:generate mockgen -package mockassistant -source=interface.go -destination=mock/mockassistant.go *
type Generator interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}

// Embedder turns texts into vectors for similarity search.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
