package postgres

import (
	"context"
	"fmt"
	"spacescope/pkg/domain"
	"spacescope/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	profilesTable = "profiles"
)

// ProfileByUser returns the profile of userID, or nil when it does not exist.
func (p *PgSQL) ProfileByUser(ctx context.Context, userID domain.UserID) (*domain.Profile, error) {
	var row PgProfile
	found, err := p.Builder.From(profilesTable).
		Where(goqu.I("id").Eq(uuid.UUID(userID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch profile from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// CreateProfile inserts profile, keeping the existing row on conflict.
func (p *PgSQL) CreateProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	var pgProfile PgProfile
	pgProfile.FromDomain(profile)

	var row PgProfile
	found, err := p.Builder.Insert(profilesTable).
		Rows(pgProfile).
		OnConflict(goqu.DoNothing()).
		Returning(&PgProfile{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store profile into pg: %w", err)
	}
	if !found {
		// created concurrently
		return p.ProfileByUser(ctx, profile.ID)
	}

	return row.ToDomain(), nil
}

// UpdateProfile applies the non-nil fields of updates.
func (p *PgSQL) UpdateProfile(ctx context.Context,
	userID domain.UserID,
	updates storage.ProfileUpdates) (*domain.Profile, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Username != nil {
		rec["username"] = *updates.Username
	}
	if updates.AvatarURL != nil {
		if *updates.AvatarURL == "" {
			rec["avatar_url"] = goqu.L("NULL")
		} else {
			rec["avatar_url"] = *updates.AvatarURL
		}
	}
	if updates.FlightHours != nil {
		rec["flight_hours"] = *updates.FlightHours
	}
	if updates.CredentialsLevel != nil {
		rec["credentials_level"] = *updates.CredentialsLevel
	}

	return p.updateProfile(ctx, userID, rec)
}

// RecordMastery keeps the best score and counts the mission.
func (p *PgSQL) RecordMastery(ctx context.Context, userID domain.UserID, score int) (*domain.Profile, error) {
	return p.updateProfile(ctx, userID, goqu.Record{
		"mastery_score":   goqu.L("GREATEST(mastery_score, ?)", score),
		"missions_logged": goqu.L("missions_logged + 1"),
		"updated_at":      goqu.L("CURRENT_TIMESTAMP"),
	})
}

func (p *PgSQL) updateProfile(ctx context.Context, userID domain.UserID, rec goqu.Record) (*domain.Profile, error) {
	var row PgProfile
	found, err := p.Builder.Update(profilesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(userID))).
		Returning(&PgProfile{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update profile in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
