package postgres

import (
	"database/sql"
	"spacescope/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgProfile struct {
	ID uuid.UUID `db:"id"`

	Username         string         `db:"username"`
	AvatarURL        sql.NullString `db:"avatar_url"`
	MasteryScore     int            `db:"mastery_score"`
	MissionsLogged   int            `db:"missions_logged"`
	FlightHours      float64        `db:"flight_hours"`
	CredentialsLevel string         `db:"credentials_level"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgProfile) ToDomain() *domain.Profile {
	return &domain.Profile{
		ID:               domain.UserID(p.ID),
		Username:         p.Username,
		AvatarURL:        p.AvatarURL.String,
		MasteryScore:     p.MasteryScore,
		MissionsLogged:   p.MissionsLogged,
		FlightHours:      p.FlightHours,
		CredentialsLevel: p.CredentialsLevel,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (p *PgProfile) FromDomain(profile domain.Profile) {
	*p = PgProfile{
		ID:       uuid.UUID(profile.ID),
		Username: profile.Username,
		AvatarURL: sql.NullString{
			String: profile.AvatarURL,
			Valid:  profile.AvatarURL != "",
		},
		MasteryScore:     profile.MasteryScore,
		MissionsLogged:   profile.MissionsLogged,
		FlightHours:      profile.FlightHours,
		CredentialsLevel: profile.CredentialsLevel,
	}
}

type PgSnapshot struct {
	ID        int64     `db:"id"         goqu:"skipinsert"`
	Feed      string    `db:"feed"`
	Status    string    `db:"status"`
	Payload   []byte    `db:"payload"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSnapshot) ToDomain() domain.FeedSnapshot {
	return domain.FeedSnapshot{
		ID:        p.ID,
		Feed:      domain.Feed(p.Feed),
		Status:    p.Status,
		Payload:   p.Payload,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgSnapshot) FromDomain(snapshot domain.FeedSnapshot) {
	*p = PgSnapshot{
		Feed:    string(snapshot.Feed),
		Status:  snapshot.Status,
		Payload: snapshot.Payload,
	}
}

func domainSnapshotsToPg(snapshots []domain.FeedSnapshot) []PgSnapshot {
	out := make([]PgSnapshot, len(snapshots))
	for i := range out {
		out[i].FromDomain(snapshots[i])
	}

	return out
}

func pgSnapshotsToDomain(snapshots []PgSnapshot) []domain.FeedSnapshot {
	out := make([]domain.FeedSnapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		out = append(out, snapshot.ToDomain())
	}

	return out
}
