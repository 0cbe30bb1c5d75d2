package assistant_test

import (
	"context"
	"errors"
	"spacescope/internal/assistant"
	mockrag "spacescope/internal/rag/mock"
	pkgassistant "spacescope/pkg/assistant"
	mockassistant "spacescope/pkg/assistant/mock"
	"spacescope/pkg/domain"
	"spacescope/pkg/remote"
	"spacescope/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T, gen pkgassistant.Generator, engine *mockrag.MockEngine) assistant.Assistant {
	t.Helper()

	fetcher, err := remote.New(remote.Options{})
	require.NoError(t, err)

	options := assistant.Options{
		Timeout:               time.Second,
		TutorSessions:         8,
		TutorSessionTTL:       time.Hour,
		StellarImageCacheSize: 8,
	}
	if engine == nil {
		return assistant.New(fetcher, gen, nil, options)
	}

	return assistant.New(fetcher, gen, engine, options)
}

func TestChat(t *testing.T) {
	history := []domain.ChatTurn{{Role: domain.RoleUser, Text: "hi"}, {Role: domain.RoleModel, Text: "hello"}}

	tests := []struct {
		name     string
		answer   string
		err      error
		expected remote.Result[string]
	}{
		{
			name:     "answer",
			answer:   "  Mars has two moons.\n",
			expected: remote.Live("Mars has two moons."),
		},
		{
			name:     "empty answer",
			answer:   "",
			expected: remote.Live("Signal lost."),
		},
		{
			name:     "rejected",
			err:      serrors.With(remote.ErrRejected, "quota"),
			expected: remote.Degrade("Uplink unstable.", remote.StatusError),
		},
		{
			name:     "unreachable",
			err:      errors.New("dial tcp: refused"),
			expected: remote.Degrade("Uplink unstable.", remote.StatusSimulated),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gen := mockassistant.NewMockGenerator(ctrl)
			gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p pkgassistant.Prompt) (string, error) {
					require.Equal(t, "how many moons?", p.Message)
					require.Equal(t, history, p.History)
					require.Contains(t, p.System, "astronomer")
					require.False(t, p.JSON)

					return tt.answer, tt.err
				})

			res := newService(t, gen, nil).Chat(context.Background(), "how many moons?", history)
			require.Equal(t, tt.expected, res)
		})
	}
}

func TestChat_NoGenerator(t *testing.T) {
	res := newService(t, nil, nil).Chat(context.Background(), "hello", nil)
	require.Equal(t, remote.Degrade("Uplink unstable.", remote.StatusSimulated), res)
}

func TestTutor(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mockassistant.NewMockGenerator(ctrl)
	svc := newService(t, gen, nil)
	ctx := context.Background()

	_, err := svc.StartTutor(ctx, "   ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = svc.Tutor(ctx, "missing", "hi")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	id, err := svc.StartTutor(ctx, "black holes")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	first := `{"current_state":"QUESTION","is_correct":false,"mastery_score":10,` +
		`"content":{"text":"What is an event horizon?","options":["A","B"]}}`
	gomock.InOrder(
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p pkgassistant.Prompt) (string, error) {
				require.True(t, p.JSON)
				require.Contains(t, p.System, "black holes")
				require.Empty(t, p.History)

				return first, nil
			}),
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p pkgassistant.Prompt) (string, error) {
				require.Equal(t, []domain.ChatTurn{
					{Role: domain.RoleUser, Text: "start"},
					{Role: domain.RoleModel, Text: first},
				}, p.History)

				return "", errors.New("connection reset")
			}),
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p pkgassistant.Prompt) (string, error) {
				require.Len(t, p.History, 2, "failed turns are not recorded")

				return "not json", nil
			}),
	)

	res, err := svc.Tutor(ctx, id, "start")
	require.NoError(t, err)
	require.Equal(t, remote.StatusLive, res.Status)
	require.Equal(t, domain.TutorQuestion, res.Payload.CurrentState)
	require.Equal(t, "What is an event horizon?", res.Payload.Content.Text)
	require.NotNil(t, res.Payload.MasteryScore)
	require.Equal(t, 10, *res.Payload.MasteryScore)

	res, err = svc.Tutor(ctx, id, "A")
	require.NoError(t, err)
	require.Equal(t, remote.StatusSimulated, res.Status)
	require.Equal(t, "⚠ SYSTEM ALERT: Neural Uplink Offline using Fallback.", res.Payload.Content.Text)
	require.Equal(t, []string{"Option A", "Option B"}, res.Payload.Content.Options)

	res, err = svc.Tutor(ctx, id, "A")
	require.NoError(t, err)
	require.Equal(t, remote.StatusSimulated, res.Status, "malformed JSON degrades")
}

func TestStellarImage(t *testing.T) {
	svc := newService(t, nil, nil)
	ctx := context.Background()

	first := svc.StellarImage(ctx, "crab nebula")
	require.Equal(t, remote.StatusSimulated, first.Status)
	require.Contains(t, first.Payload, "https://images.unsplash.com/")

	for range 10 {
		require.Equal(t, first, svc.StellarImage(ctx, "crab nebula"), "image is stable per prompt")
	}
}

func TestInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mockassistant.NewMockGenerator(ctrl)
	svc := newService(t, gen, nil)
	ctx := context.Background()

	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p pkgassistant.Prompt) (string, error) {
			require.Contains(t, p.Message, "Artemis II")

			return "Crewed lunar flyby.", nil
		})
	require.Equal(t, remote.Live("Crewed lunar flyby."),
		svc.MissionInsight(ctx, "Artemis II", "lunar flyby"))

	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))
	require.Equal(t, remote.Degrade("Analysis pending.", remote.StatusSimulated),
		svc.MissionInsight(ctx, "Artemis II", "lunar flyby"))

	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p pkgassistant.Prompt) (string, error) {
			require.Contains(t, p.Message, `"Kp index"`)
			require.Contains(t, p.Message, "rising")

			return "", nil
		})
	require.Equal(t, remote.Live("Metric normal."),
		svc.MetricInsight(ctx, "Kp index", "5", "geomagnetic", "rising"))

	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", serrors.With(remote.ErrRejected, "blocked"))
	require.Equal(t, remote.Degrade("Metric normal.", remote.StatusError),
		svc.MetricInsight(ctx, "Kp index", "5", "geomagnetic", "rising"))
}

func TestSearchEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mockrag.NewMockEngine(ctrl)
	svc := newService(t, nil, engine)
	ctx := context.Background()

	engine.EXPECT().Ask(gomock.Any(), "next eclipse?").Return(
		remote.Live(domain.RAGAnswer{Answer: "April 2027.", Sources: []string{"eclipses.txt"}}))
	require.Equal(t, remote.Live("April 2027."), svc.SearchEvents(ctx, "next eclipse?"))

	engine.EXPECT().Ask(gomock.Any(), "next eclipse?").Return(
		remote.Degrade(domain.RAGAnswer{Answer: "RAG Engine is unavailable."}, remote.StatusSimulated))
	require.Equal(t, remote.Degrade("RAG Uplink Offline.", remote.StatusSimulated), svc.SearchEvents(ctx, "next eclipse?"))

	require.Equal(t, remote.Degrade("RAG Uplink Offline.", remote.StatusSimulated),
		newService(t, nil, nil).SearchEvents(ctx, "next eclipse?"))
}
