// Package rag answers questions from a local corpus of text documents with a
// generative model, grounding every answer on the documents it retrieved.
package rag

import (
	"context"
	"fmt"
	"spacescope/internal/config"
	"spacescope/pkg/assistant"
	"spacescope/pkg/cache"
	"spacescope/pkg/domain"
	"spacescope/pkg/logger"
	"spacescope/pkg/remote"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultTopK is the number of documents used as context.
	DefaultTopK = 3

	unavailableAnswer   = "RAG Engine is unavailable."
	notConfiguredAnswer = "RAG Engine is not configured: no generative AI API key is set."

	promptTemplate = `You are SpaceScope AI, an assistant specialized in space weather,
satellites, and cosmic phenomena.

Answer the question using ONLY the context below.
Explain clearly in simple, student-friendly language.
If the answer is not in the context, say you do not have enough data.

Context:
%s

Question:
%s
`
)

// Options configure the engine. These settings are typically derived from
// application configuration.
type Options struct {
	// Dir holds the corpus.
	Dir string
	// TopK is the number of documents used as context.
	TopK int
	// Timeout is the time budget of embedding and generation calls.
	Timeout time.Duration
	// AnswerCacheSize caps the number of cached answers.
	AnswerCacheSize int
	// AnswerCacheTTL is how long an answer is reused.
	AnswerCacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Dir:             cfg.RAG.Dir,
		TopK:            cfg.RAG.TopK,
		Timeout:         cfg.Assistant.Timeout,
		AnswerCacheSize: cfg.RAG.AnswerCacheSize,
		AnswerCacheTTL:  cfg.RAG.AnswerCacheTTL,
	}
}

// engine is the concrete implementation of the Engine interface.
type engine struct {
	options  Options
	fetcher  *remote.Fetcher
	gen      assistant.Generator
	embedder assistant.Embedder

	docs []Document
	// vectors holds one embedding per document, nil when retrieval falls
	// back to term overlap.
	vectors [][]float32
	answers *cache.Cache[string, domain.RAGAnswer]
}

// Ask retrieves the most relevant documents and asks the generator to answer
// from them only. Successful answers are cached per question.
func (e *engine) Ask(ctx context.Context, question string) remote.Result[domain.RAGAnswer] {
	question = strings.TrimSpace(question)
	if e.gen == nil {
		return remote.Degrade(domain.RAGAnswer{Answer: notConfiguredAnswer, Sources: []string{}}, remote.StatusSimulated)
	}

	key := strings.ToLower(question)
	if cached, ok := e.answers.Get(key); ok {
		return remote.Live(cached)
	}

	hits := e.retrieve(ctx, question)
	texts := make([]string, len(hits))
	sources := make([]string, 0, len(hits))
	seen := map[string]struct{}{}
	for i, d := range hits {
		texts[i] = d.Text
		if _, ok := seen[d.Source]; !ok {
			seen[d.Source] = struct{}{}
			sources = append(sources, d.Source)
		}
	}
	prompt := fmt.Sprintf(promptTemplate, strings.Join(texts, "\n\n"), question)

	res := remote.Guard(ctx, e.fetcher, "rag.generate", e.options.Timeout, "",
		func(ctx context.Context) (string, error) {
			return e.gen.Generate(ctx, assistant.Prompt{
				Message:     prompt,
				Temperature: 0.2, //nolint: mnd
				MaxTokens:   512, //nolint: mnd
			})
		})

	answer := remote.Map(res, func(text string) domain.RAGAnswer {
		return domain.RAGAnswer{Answer: text, Sources: sources}
	}, domain.RAGAnswer{Answer: unavailableAnswer, Sources: []string{}})
	if answer.Status == remote.StatusLive {
		e.answers.Set(key, answer.Payload)
	}

	return answer
}

// retrieve ranks by embedding similarity when the corpus is embedded and the
// question can be embedded in time, by term overlap otherwise.
func (e *engine) retrieve(ctx context.Context, question string) []Document {
	var idx []int
	if e.vectors != nil {
		qv := remote.Guard(ctx, e.fetcher, "rag.embed", e.options.Timeout, [][]float32(nil),
			func(ctx context.Context) ([][]float32, error) {
				return e.embedder.Embed(ctx, []string{question})
			})
		if qv.Status == remote.StatusLive && len(qv.Payload) == 1 {
			idx = rankByVector(e.vectors, qv.Payload[0], e.options.TopK)
		}
	}
	if idx == nil {
		idx = rankByOverlap(e.docs, question, e.options.TopK)
	}

	out := make([]Document, len(idx))
	for i, j := range idx {
		out[i] = e.docs[j]
	}

	return out
}

// New loads the corpus in options.Dir and, when an embedder is given, embeds
// it. A failed embedding is logged and retrieval uses term overlap. A nil
// generator makes every answer a configuration notice.
func New(ctx context.Context,
	fetcher *remote.Fetcher,
	gen assistant.Generator,
	embedder assistant.Embedder,
	options Options) (Engine, error) {
	if options.TopK <= 0 {
		options.TopK = DefaultTopK
	}

	docs, err := LoadCorpus(ctx, options.Dir)
	if err != nil {
		return nil, fmt.Errorf("could not load corpus: %w", err)
	}

	e := &engine{
		options:  options,
		fetcher:  fetcher,
		gen:      gen,
		embedder: embedder,
		docs:     docs,
		answers:  cache.New[string, domain.RAGAnswer](options.AnswerCacheSize, options.AnswerCacheTTL),
	}

	if embedder != nil {
		texts := make([]string, len(docs))
		for i, d := range docs {
			texts[i] = d.Text
		}

		res := remote.Guard(ctx, fetcher, "rag.index", options.Timeout, [][]float32(nil),
			func(ctx context.Context) ([][]float32, error) {
				return embedder.Embed(ctx, texts)
			})
		if res.Status == remote.StatusLive && len(res.Payload) == len(docs) {
			e.vectors = res.Payload
		} else {
			logger.Warn(ctx, "could not embed the RAG corpus, using term overlap",
				zap.String("status", string(res.Status)))
		}
	}

	return e, nil
}
