package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the id.
func (u UserID) String() string { return uuid.UUID(u).String() }

// Profile limits.
const (
	UsernameMinLen   = 3
	UsernameMaxLen   = 32
	MasteryScoreMax  = 100
	DefaultCredLevel = "CADET"
)

// Profile is the pilot profile shown on the dashboard.
type Profile struct {
	// ID is the owner of the profile.
	ID UserID `json:"id"`
	// Username is the display name, 3 to 32 characters.
	Username string `json:"username"`
	// AvatarURL is optional.
	AvatarURL string `json:"avatar_url,omitempty"`
	// MasteryScore is the best score reached in the learning zone, 0 to 100.
	MasteryScore int `json:"mastery_score"`
	// MissionsLogged counts completed tutoring sessions.
	MissionsLogged int `json:"missions_logged"`
	// FlightHours is cumulative time spent in the dashboard.
	FlightHours float64 `json:"flight_hours"`
	// CredentialsLevel is derived from the mastery score.
	CredentialsLevel string `json:"credentials_level"`
	// UpdatedAt is the time of the last change.
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfilePatch carries the fields a user may change. Nil fields are left as is.
type ProfilePatch struct {
	Username    *string  `json:"username,omitempty"`
	AvatarURL   *string  `json:"avatar_url,omitempty"`
	FlightHours *float64 `json:"flight_hours,omitempty"`
}

// CredentialsFor maps a mastery score to a credentials level.
func CredentialsFor(score int) string {
	switch {
	case score >= 90:
		return "COMMANDER"
	case score >= 60:
		return "PILOT"
	case score >= 30:
		return "NAVIGATOR"
	default:
		return DefaultCredLevel
	}
}
