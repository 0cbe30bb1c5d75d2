package assistant

import (
	"context"
	"spacescope/pkg/domain"
	"spacescope/pkg/remote"
)

//go:generate mockgen -package mockassistant -source=interface.go -destination=mock/mockassistant.go *
type Assistant interface {
	Chat(ctx context.Context, message string, history []domain.ChatTurn) remote.Result[string]
	StartTutor(ctx context.Context, topic string) (string, error)
	Tutor(ctx context.Context, sessionID string, message string) (remote.Result[domain.MasteryResponse], error)
	StellarImage(ctx context.Context, prompt string) remote.Result[string]
	MissionInsight(ctx context.Context, name string, description string) remote.Result[string]
	MetricInsight(ctx context.Context, label, value, detail, trend string) remote.Result[string]
	SearchEvents(ctx context.Context, query string) remote.Result[string]
}
