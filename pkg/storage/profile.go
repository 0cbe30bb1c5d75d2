package storage

import (
	"context"
	"spacescope/pkg/domain"
)

// ProfileUpdates describes the optional fields applied to a profile. Only
// non-nil fields are updated.
type ProfileUpdates struct {
	Username    *string
	AvatarURL   *string
	FlightHours *float64
	// CredentialsLevel is derived from the mastery score by the caller.
	CredentialsLevel *string
}

// ProfileStorage persists pilot profiles.
type ProfileStorage interface {
	// ProfileByUser returns the profile of userID, or nil when it does not exist.
	ProfileByUser(ctx context.Context, userID domain.UserID) (*domain.Profile, error)
	// CreateProfile inserts profile unless one already exists for its ID, and
	// returns the stored row.
	CreateProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error)
	// UpdateProfile applies updates and returns the updated row, or nil when the
	// profile does not exist. updated_at is set automatically.
	UpdateProfile(ctx context.Context, userID domain.UserID, updates ProfileUpdates) (*domain.Profile, error)
	// RecordMastery stores score when it beats the current best, recomputes
	// the credentials level and increments missions_logged. Returns nil when
	// the profile does not exist.
	RecordMastery(ctx context.Context, userID domain.UserID, score int) (*domain.Profile, error)
}
