package profile

import (
	"context"
	"spacescope/pkg/domain"
)

//go:generate mockgen -package mockprofile -source=interface.go -destination=mock/mockprofile.go *
type Service interface {
	Get(ctx context.Context, userID domain.UserID) (*domain.Profile, error)
	Update(ctx context.Context, userID domain.UserID, patch domain.ProfilePatch) (*domain.Profile, error)
	RecordMastery(ctx context.Context, userID domain.UserID, score int) (*domain.Profile, error)
}
