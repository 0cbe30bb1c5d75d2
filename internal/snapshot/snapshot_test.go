package snapshot_test

import (
	"context"
	"errors"
	"spacescope/internal/snapshot"
	"spacescope/pkg/domain"
	"spacescope/pkg/remote"
	"spacescope/pkg/serrors"
	"spacescope/pkg/spacefeed"
	mockspacefeed "spacescope/pkg/spacefeed/mock"
	"spacescope/pkg/storage"
	mockstorage "spacescope/pkg/storage/mock"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRecorder(t *testing.T, options snapshot.Options) (
	*mockstorage.MockStorage, *mockspacefeed.MockClient, snapshot.Recorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	feeds := mockspacefeed.NewMockClient(ctrl)

	return st, feeds, snapshot.New(st, feeds, options)
}

func TestRecorder_Refresh(t *testing.T) {
	st, feeds, r := newTestRecorder(t, snapshot.Options{})

	iss := domain.ISSPosition{Timestamp: 1700000000, Message: "success"}
	iss.Position.Latitude = "10.5"
	iss.Position.Longitude = "-20.25"
	feeds.EXPECT().ISSLocation(gomock.Any()).Return(remote.Live(iss))
	feeds.EXPECT().SolarActivity(gomock.Any()).Return(
		remote.Degrade(spacefeed.FallbackSolar(), remote.StatusError))

	st.EXPECT().StoreSnapshots(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, snaps ...domain.FeedSnapshot) ([]domain.FeedSnapshot, error) {
			require.Len(t, snaps, 2)

			require.Equal(t, domain.FeedISS, snaps[0].Feed)
			require.Equal(t, "live", snaps[0].Status)
			require.JSONEq(t, `{"timestamp":1700000000,"message":"success",`+
				`"iss_position":{"latitude":"10.5","longitude":"-20.25"}}`, string(snaps[0].Payload))

			require.Equal(t, domain.FeedSolar, snaps[1].Feed)
			require.Equal(t, "error", snaps[1].Status)
			require.Contains(t, string(snaps[1].Payload), "OFFLINE")

			for i := range snaps {
				snaps[i].ID = int64(i + 1)
			}

			return snaps, nil
		})

	stored, err := r.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 2)
	require.Equal(t, int64(2), stored[1].ID)
}

func TestRecorder_Refresh_StorageError(t *testing.T) {
	st, feeds, r := newTestRecorder(t, snapshot.Options{})

	feeds.EXPECT().ISSLocation(gomock.Any()).Return(
		remote.Degrade(spacefeed.FallbackISS(time.Now()), remote.StatusSimulated))
	feeds.EXPECT().SolarActivity(gomock.Any()).Return(remote.Live(spacefeed.FallbackSolar()))
	st.EXPECT().StoreSnapshots(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := r.Refresh(context.Background())
	require.Error(t, err)
}

func TestRecorder_Prune(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		_, _, r := newTestRecorder(t, snapshot.Options{})

		n, err := r.Prune(context.Background())
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("deletes older than retention", func(t *testing.T) {
		st, _, r := newTestRecorder(t, snapshot.Options{Retention: 24 * time.Hour})

		st.EXPECT().DeleteSnapshotsBefore(gomock.Any(), gomock.Cond(func(x any) bool {
			before, ok := x.(time.Time)

			return ok && time.Since(before) > 23*time.Hour && time.Since(before) < 25*time.Hour
		})).Return(int64(3), nil)

		n, err := r.Prune(context.Background())
		require.NoError(t, err)
		require.Equal(t, int64(3), n)
	})
}

func TestRecorder_RequestRefresh(t *testing.T) {
	st, _, r := newTestRecorder(t, snapshot.Options{RefreshInterval: time.Minute})

	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			require.Equal(t, "RefreshFeedsJob", args.Kind())
			withOpts, ok := args.(river.JobArgsWithInsertOpts)
			require.True(t, ok)
			require.Equal(t, time.Minute, withOpts.InsertOpts().UniqueOpts.ByPeriod)

			return false, nil
		})

	added, err := r.RequestRefresh(context.Background())
	require.NoError(t, err)
	require.False(t, added)
}

func TestRecorder_History(t *testing.T) {
	next := time.Date(2025, 3, 1, 12, 0, 0, 500, time.UTC)

	t.Run("pages", func(t *testing.T) {
		st, _, r := newTestRecorder(t, snapshot.Options{})
		cursor := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

		st.EXPECT().FeedSnapshots(gomock.Any(), domain.FeedISS, cursor, uint(snapshot.DefaultPageSize)).
			Return(storage.FeedSnapshots{
				Snapshots:  []domain.FeedSnapshot{{ID: 1, Feed: domain.FeedISS}},
				NextCursor: &next,
			}, nil)

		snaps, nextCursor, err := r.History(context.Background(), domain.FeedISS, "2025-03-02T00:00:00Z", 0)
		require.NoError(t, err)
		require.Len(t, snaps, 1)
		require.Equal(t, "2025-03-01T12:00:00.0000005Z", nextCursor)

		parsed, err := time.Parse(time.RFC3339, nextCursor)
		require.NoError(t, err)
		require.True(t, parsed.Equal(next), "next cursor round-trips")
	})

	t.Run("limit is capped", func(t *testing.T) {
		st, _, r := newTestRecorder(t, snapshot.Options{})
		st.EXPECT().FeedSnapshots(gomock.Any(), domain.FeedSolar, time.Time{}, uint(snapshot.MaxPageSize)).
			Return(storage.FeedSnapshots{}, nil)

		_, nextCursor, err := r.History(context.Background(), domain.FeedSolar, "", 1000)
		require.NoError(t, err)
		require.Empty(t, nextCursor)
	})

	t.Run("unknown feed", func(t *testing.T) {
		_, _, r := newTestRecorder(t, snapshot.Options{})

		_, _, err := r.History(context.Background(), domain.Feed("apod"), "", 10)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		_, _, r := newTestRecorder(t, snapshot.Options{})

		_, _, err := r.History(context.Background(), domain.FeedISS, "yesterday", 10)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}
