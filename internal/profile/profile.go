// Package profile manages the pilot profile of authenticated users.
package profile

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"spacescope/pkg/domain"
	"spacescope/pkg/logger"
	"spacescope/pkg/serrors"
	"spacescope/pkg/storage"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// DefaultUsername is given to profiles created on first access.
const DefaultUsername = "New Explorer"

// service is the concrete implementation of the Service interface.
type service struct {
	storage storage.Storage
}

// Get returns the profile of userID, creating the default one on first access.
func (s service) Get(ctx context.Context, userID domain.UserID) (*domain.Profile, error) {
	p, err := s.storage.ProfileByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get profile: %w", err)
	}
	if p != nil {
		return p, nil
	}

	p, err = s.storage.CreateProfile(ctx, domain.Profile{
		ID:               userID,
		Username:         DefaultUsername,
		CredentialsLevel: domain.DefaultCredLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create profile: %w", err)
	}
	logger.Info(ctx, "profile created", zap.Stringer("userID", userID))

	return p, nil
}

// Update validates and applies patch. A missing profile is created first.
func (s service) Update(ctx context.Context, userID domain.UserID, patch domain.ProfilePatch) (*domain.Profile, error) {
	updates, err := validatePatch(patch)
	if err != nil {
		return nil, err
	}

	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}

	p, err := s.storage.UpdateProfile(ctx, userID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update profile: %w", err)
	}
	if p == nil {
		return nil, serrors.With(serrors.ErrNotFound, "profile not found")
	}

	return p, nil
}

// RecordMastery stores a finished tutoring session: the best score is kept,
// the mission is counted and the credentials level follows the best score.
func (s service) RecordMastery(ctx context.Context, userID domain.UserID, score int) (*domain.Profile, error) {
	if score < 0 || score > domain.MasteryScoreMax {
		return nil, serrors.With(serrors.ErrBadRequest, "mastery score must be between 0 and %d", domain.MasteryScoreMax)
	}

	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}

	var p *domain.Profile
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		p, err = tx.RecordMastery(ctx, userID, score)
		if err != nil {
			return fmt.Errorf("could not record mastery: %w", err)
		}
		if p == nil {
			return serrors.With(serrors.ErrNotFound, "profile not found")
		}

		level := domain.CredentialsFor(p.MasteryScore)
		if level == p.CredentialsLevel {
			return nil
		}

		p, err = tx.UpdateProfile(ctx, userID, storage.ProfileUpdates{CredentialsLevel: &level})
		if err != nil {
			return fmt.Errorf("could not update credentials: %w", err)
		}
		if p == nil {
			return serrors.With(serrors.ErrNotFound, "profile not found")
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return p, nil
}

func validatePatch(patch domain.ProfilePatch) (storage.ProfileUpdates, error) {
	var updates storage.ProfileUpdates

	if patch.Username != nil {
		name := strings.TrimSpace(*patch.Username)
		if n := utf8.RuneCountInString(name); n < domain.UsernameMinLen || n > domain.UsernameMaxLen {
			return updates, serrors.With(serrors.ErrBadRequest,
				"username must be %d to %d characters", domain.UsernameMinLen, domain.UsernameMaxLen)
		}
		updates.Username = &name
	}

	if patch.AvatarURL != nil {
		avatar := strings.TrimSpace(*patch.AvatarURL)
		if avatar != "" {
			u, err := url.Parse(avatar)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return updates, serrors.With(serrors.ErrBadRequest, "avatar_url must be an http(s) URL")
			}
		}
		updates.AvatarURL = &avatar
	}

	if patch.FlightHours != nil {
		hours := *patch.FlightHours
		if hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
			return updates, serrors.With(serrors.ErrBadRequest, "flight_hours must be a non-negative number")
		}
		updates.FlightHours = &hours
	}

	return updates, nil
}

// New creates a profile Service backed by storage.
func New(storage storage.Storage) Service {
	return &service{
		storage: storage,
	}
}
