// Package assistant implements the AI features of the dashboard on top of an
// assistant.Generator. Every call is bounded and degrades to a placeholder.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"spacescope/internal/config"
	"spacescope/internal/rag"
	"spacescope/pkg/assistant"
	"spacescope/pkg/cache"
	"spacescope/pkg/domain"
	"spacescope/pkg/remote"
	"spacescope/pkg/serrors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	chatSystem = "You are SpaceScope AI, an expert astronomer and astrophysicist. " +
		"Keep answers concise, engaging, and accurate."
	tutorSystem = `You are the SpaceScope Adaptive Mastery Engine for topic: %s.
Guide the user to 100%% mastery.
Return ONLY JSON in this format:
{
  "current_state": "QUESTION" | "REMEDIATION_CHOICE" | "EXPLANATION" | "MASTERY_CELEBRATION",
  "is_correct": boolean,
  "mastery_score": number,
  "content": {
    "text": string,
    "options": string[],
    "explanation_modes": object
  }
}`
	insightSystem = "You are SpaceScope AI, a mission analyst. Answer in at most two sentences."

	emptyChatAnswer  = "Signal lost."
	chatFallback     = "Uplink unstable."
	missionFallback  = "Analysis pending."
	metricFallback   = "Metric normal."
	searchFallback   = "RAG Uplink Offline."
	tutorOfflineText = "⚠ SYSTEM ALERT: Neural Uplink Offline using Fallback."

	temperature = 0.7
	maxTokens   = 1024
)

// fallbackImages are served for stellar image prompts.
var fallbackImages = []string{ //nolint: gochecknoglobals
	"https://images.unsplash.com/photo-1462331940025-496dfbfc7564?q=80&w=500&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1534972195531-d756b9bfa9f2?q=80&w=500&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1444703686981-a3abbc4d4fe3?q=80&w=500&auto=format&fit=crop",
}

// errNotConfigured makes every call degrade when no generator is wired.
var errNotConfigured = serrors.With(serrors.ErrUnavailable, "generative AI backend not configured") //nolint: gochecknoglobals

// Options configure the assistant. These settings are typically derived from
// application configuration.
type Options struct {
	// Timeout is the time budget of every generation call.
	Timeout time.Duration
	// TutorSessions caps the number of live tutoring sessions.
	TutorSessions int
	// TutorSessionTTL is how long an idle session is kept.
	TutorSessionTTL time.Duration
	// StellarImageCacheSize caps the number of cached stellar images.
	StellarImageCacheSize int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Timeout:               cfg.Assistant.Timeout,
		TutorSessions:         cfg.Assistant.TutorSessions,
		TutorSessionTTL:       cfg.Assistant.TutorSessionTTL,
		StellarImageCacheSize: cfg.Assistant.StellarImageCacheSize,
	}
}

// tutorSession is one adaptive mastery conversation.
type tutorSession struct {
	system string

	// mu serializes the turns of a session so history stays ordered.
	mu      sync.Mutex
	history []domain.ChatTurn
}

// service is the concrete implementation of the Assistant interface.
type service struct {
	options Options
	fetcher *remote.Fetcher
	gen     assistant.Generator
	rag     rag.Engine

	sessions *cache.Cache[string, *tutorSession]
	images   *cache.Cache[string, string]
}

// Chat answers message in the context of history as the astronomer persona.
func (s *service) Chat(ctx context.Context, message string, history []domain.ChatTurn) remote.Result[string] {
	return remote.Guard(ctx, s.fetcher, "assistant.chat", s.options.Timeout, chatFallback,
		func(ctx context.Context) (string, error) {
			answer, err := s.generate(ctx, assistant.Prompt{
				System:      chatSystem,
				History:     history,
				Message:     message,
				Temperature: temperature,
				MaxTokens:   maxTokens,
			})
			if err != nil {
				return "", err
			}
			if answer == "" {
				return emptyChatAnswer, nil
			}

			return answer, nil
		})
}

// StartTutor opens a tutoring session on topic and returns its id.
func (s *service) StartTutor(_ context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", serrors.With(serrors.ErrBadRequest, "topic is required")
	}

	id := uuid.NewString()
	s.sessions.Set(id, &tutorSession{system: fmt.Sprintf(tutorSystem, topic)})

	return id, nil
}

// Tutor sends the learner's message to the session and returns the next step.
// The exchange is appended to the session history only when the backend
// answered with a valid step.
func (s *service) Tutor(ctx context.Context, sessionID string, message string) (remote.Result[domain.MasteryResponse], error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return remote.Result[domain.MasteryResponse]{}, serrors.With(serrors.ErrNotFound, "tutor session not found")
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	type step struct {
		raw  string
		resp domain.MasteryResponse
	}
	history := append([]domain.ChatTurn(nil), sess.history...)
	res := remote.Guard(ctx, s.fetcher, "assistant.tutor", s.options.Timeout, step{resp: tutorFallback()},
		func(ctx context.Context) (step, error) {
			raw, err := s.generate(ctx, assistant.Prompt{
				System:      sess.system,
				History:     history,
				Message:     message,
				Temperature: temperature,
				MaxTokens:   maxTokens,
				JSON:        true,
			})
			if err != nil {
				return step{}, err
			}
			if raw == "" {
				raw = "{}"
			}

			var resp domain.MasteryResponse
			if err := json.Unmarshal([]byte(raw), &resp); err != nil {
				return step{}, fmt.Errorf("could not decode mastery response: %w", err)
			}

			return step{raw: raw, resp: resp}, nil
		})

	if res.Status == remote.StatusLive {
		sess.history = append(sess.history,
			domain.ChatTurn{Role: domain.RoleUser, Text: message},
			domain.ChatTurn{Role: domain.RoleModel, Text: res.Payload.raw})
	}

	return remote.Result[domain.MasteryResponse]{
		Payload: res.Payload.resp,
		Status:  res.Status,
		Origin:  res.Origin,
	}, nil
}

// StellarImage returns the image shown for prompt. There is no image backend;
// a fallback image is picked once per prompt and reused.
func (s *service) StellarImage(_ context.Context, prompt string) remote.Result[string] {
	url := s.images.GetOrSet(prompt, func() string {
		return fallbackImages[rand.IntN(len(fallbackImages))] //nolint: gosec
	})

	return remote.Degrade(url, remote.StatusSimulated)
}

// MissionInsight summarizes a mission in a sentence or two.
func (s *service) MissionInsight(ctx context.Context, name string, description string) remote.Result[string] {
	return s.insight(ctx, "assistant.mission_insight", missionFallback,
		fmt.Sprintf("Give a short insight about the space mission %q. Description: %s", name, description))
}

// MetricInsight explains what a dashboard metric means right now.
func (s *service) MetricInsight(ctx context.Context, label, value, detail, trend string) remote.Result[string] {
	return s.insight(ctx, "assistant.metric_insight", metricFallback,
		fmt.Sprintf("The dashboard metric %q reads %s (trend: %s). Context: %s. What does this mean for an observer?",
			label, value, trend, detail))
}

// SearchEvents answers a free-form question about space events from the RAG
// corpus.
func (s *service) SearchEvents(ctx context.Context, query string) remote.Result[string] {
	if s.rag == nil {
		return remote.Degrade(searchFallback, remote.StatusSimulated)
	}

	res := s.rag.Ask(ctx, query)

	return remote.Map(res, func(a domain.RAGAnswer) string { return a.Answer }, searchFallback)
}

func (s *service) insight(ctx context.Context, name, fallback, message string) remote.Result[string] {
	return remote.Guard(ctx, s.fetcher, name, s.options.Timeout, fallback,
		func(ctx context.Context) (string, error) {
			answer, err := s.generate(ctx, assistant.Prompt{
				System:      insightSystem,
				Message:     message,
				Temperature: temperature,
				MaxTokens:   256, //nolint: mnd
			})
			if err != nil {
				return "", err
			}
			if answer == "" {
				return fallback, nil
			}

			return answer, nil
		})
}

func (s *service) generate(ctx context.Context, p assistant.Prompt) (string, error) {
	if s.gen == nil {
		return "", errNotConfigured
	}

	answer, err := s.gen.Generate(ctx, p)
	if err != nil {
		return "", fmt.Errorf("could not generate: %w", err)
	}

	return strings.TrimSpace(answer), nil
}

func tutorFallback() domain.MasteryResponse {
	score := 0
	resp := domain.MasteryResponse{
		CurrentState: domain.TutorQuestion,
		MasteryScore: &score,
	}
	resp.Content.Text = tutorOfflineText
	resp.Content.Options = []string{"Option A", "Option B"}

	return resp
}

// New creates an Assistant. A nil generator makes every AI call serve its
// fallback; a nil engine does the same for event search.
func New(fetcher *remote.Fetcher, gen assistant.Generator, engine rag.Engine, options Options) Assistant {
	return &service{
		options:  options,
		fetcher:  fetcher,
		gen:      gen,
		rag:      engine,
		sessions: cache.New[string, *tutorSession](options.TutorSessions, options.TutorSessionTTL),
		images:   cache.New[string, string](options.StellarImageCacheSize, 0),
	}
}
