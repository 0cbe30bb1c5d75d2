package v1handler

import (
	"net/http"
	"spacescope/pkg/controller"
	"spacescope/pkg/domain"
	"spacescope/pkg/serrors"
	"strconv"
)

type RecordMasteryRequest struct {
	Score *int `json:"score"`
}

type FeedHistoryResponse struct {
	Snapshots  []domain.FeedSnapshot `json:"snapshots"`
	NextCursor string                `json:"next_cursor,omitempty"`
}

type RefreshFeedsResponse struct {
	Enqueued bool `json:"enqueued"`
}

var errNoDatabase = serrors.With(serrors.ErrUnavailable, "database is not configured") //nolint: gochecknoglobals

func (h Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	if h.deps.Profile == nil {
		h.writeError(w, r, errNoDatabase)

		return
	}

	p, err := h.deps.Profile.Get(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, r, http.StatusOK, p)
}

func (h Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if h.deps.Profile == nil {
		h.writeError(w, r, errNoDatabase)

		return
	}

	var patch domain.ProfilePatch
	if err := controller.DecodeJSON(w, r, &patch); err != nil {
		h.writeError(w, r, err)

		return
	}

	p, err := h.deps.Profile.Update(r.Context(), GetUserIDFromContext(r.Context()), patch)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, r, http.StatusOK, p)
}

func (h Handler) RecordMastery(w http.ResponseWriter, r *http.Request) {
	if h.deps.Profile == nil {
		h.writeError(w, r, errNoDatabase)

		return
	}

	var req RecordMasteryRequest
	if err := controller.DecodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	if req.Score == nil {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "score is required"))

		return
	}

	p, err := h.deps.Profile.RecordMastery(r.Context(), GetUserIDFromContext(r.Context()), *req.Score)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, r, http.StatusOK, p)
}

// FeedHistory pages stored snapshots of a feed: ?cursor=<RFC3339>&limit=<n>.
func (h Handler) FeedHistory(w http.ResponseWriter, r *http.Request) {
	if h.deps.Snapshots == nil {
		h.writeError(w, r, errNoDatabase)

		return
	}

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit"))

			return
		}
	}

	snaps, next, err := h.deps.Snapshots.History(r.Context(),
		domain.Feed(r.PathValue("feed")),
		r.URL.Query().Get("cursor"),
		uint(limit))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if snaps == nil {
		snaps = []domain.FeedSnapshot{}
	}

	controller.WriteJSON(w, r, http.StatusOK, FeedHistoryResponse{Snapshots: snaps, NextCursor: next})
}

// RefreshFeeds enqueues an immediate snapshot of every feed.
func (h Handler) RefreshFeeds(w http.ResponseWriter, r *http.Request) {
	if h.deps.Snapshots == nil {
		h.writeError(w, r, errNoDatabase)

		return
	}

	enqueued, err := h.deps.Snapshots.RequestRefresh(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, r, http.StatusAccepted, RefreshFeedsResponse{Enqueued: enqueued})
}
