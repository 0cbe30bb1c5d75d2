package remote_test

import (
	"context"
	"errors"
	"spacescope/pkg/remote"
	"spacescope/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGuard(t *testing.T) {
	f := newFetcher(t, remote.Options{})

	tests := []struct {
		name     string
		timeout  time.Duration
		fn       func(ctx context.Context) (string, error)
		expected remote.Result[string]
	}{
		{
			name: "success",
			fn: func(ctx context.Context) (string, error) {
				return "answer", nil
			},
			expected: remote.Live("answer"),
		},
		{
			name: "rejected by remote",
			fn: func(ctx context.Context) (string, error) {
				return "", serrors.With(remote.ErrRejected, "quota exceeded")
			},
			expected: remote.Degrade("fallback", remote.StatusError),
		},
		{
			name: "transport error",
			fn: func(ctx context.Context) (string, error) {
				return "", errors.New("connection reset")
			},
			expected: remote.Degrade("fallback", remote.StatusSimulated),
		},
		{
			name: "panic",
			fn: func(ctx context.Context) (string, error) {
				panic("boom")
			},
			expected: remote.Degrade("fallback", remote.StatusSimulated),
		},
		{
			name:    "deadline",
			timeout: 50 * time.Millisecond,
			fn: func(ctx context.Context) (string, error) {
				<-ctx.Done()

				return "late", ctx.Err()
			},
			expected: remote.Degrade("fallback", remote.StatusSimulated),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			res := remote.Guard(context.Background(), f, "test", tt.timeout, "fallback", tt.fn)
			require.Equal(t, tt.expected, res)
			require.Less(t, time.Since(start), time.Second)
		})
	}
}

func TestGuard_ReturnsAtDeadlineEvenIfCallbackIgnoresIt(t *testing.T) {
	f := newFetcher(t, remote.Options{})
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	start := time.Now()
	res := remote.Guard(context.Background(), f, "stuck", 50*time.Millisecond, 0,
		func(ctx context.Context) (int, error) {
			<-release

			return 1, nil
		})

	require.Equal(t, remote.StatusSimulated, res.Status)
	require.Equal(t, 0, res.Payload)
	require.Less(t, time.Since(start), time.Second)
}
