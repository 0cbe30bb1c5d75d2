package status

import (
	"context"
	"spacescope/pkg/domain"
)

//go:generate mockgen -package mockstatus -source=interface.go -destination=mock/mockstatus.go *
type Monitor interface {
	Status(ctx context.Context) domain.SystemStatus
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
