package rag

import (
	"context"
	"spacescope/pkg/domain"
	"spacescope/pkg/remote"
)

//go:generate mockgen -package mockrag -source=interface.go -destination=mock/mockrag.go *
type Engine interface {
	// Ask answers question from the indexed documents. It never fails; a
	// degraded result carries a placeholder answer.
	Ask(ctx context.Context, question string) remote.Result[domain.RAGAnswer]
}
