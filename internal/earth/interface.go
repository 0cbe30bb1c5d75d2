package earth

import (
	"context"
	"spacescope/pkg/domain"
	"spacescope/pkg/remote"
)

//go:generate mockgen -package mockearth -source=interface.go -destination=mock/mockearth.go *
type Visualizer interface {
	Report(ctx context.Context, city string, mode string) (remote.Result[domain.LocationReport], error)
}
