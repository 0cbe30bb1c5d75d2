// Package remote implements bounded-time reads of third-party services that
// degrade to a caller-supplied fallback instead of failing.
//
// Every call resolves to a Result carrying a usable payload and a Status tag:
//   - StatusLive: the remote answered 2xx with a valid payload within budget.
//   - StatusError: the remote answered with a non-success status.
//   - StatusSimulated: the call timed out, failed at the transport level or
//     returned an unparseable payload.
//
// No retries are made and nothing is cached; a call is at most one attempt.
package remote

import "spacescope/pkg/serrors"

// Status tags where the payload of a Result came from.
type Status string

const (
	// StatusLive means the payload was fetched from the remote within budget.
	StatusLive Status = "live"
	// StatusSimulated means the fallback was used because the call timed out,
	// failed at the transport level or returned malformed data.
	StatusSimulated Status = "simulated"
	// StatusError means the remote responded with a non-success status and the
	// fallback was used.
	StatusError Status = "error"
)

// Origin describes which side produced the payload. It is exposed next to the
// status so dashboards can render an offline badge without knowing the rules.
type Origin string

const (
	OriginRemote   Origin = "remote-api"
	OriginGateway  Origin = "gateway-error"
	OriginFallback Origin = "local-fallback"
)

// ErrRejected marks an error returned by a Guard callback as an application
// level rejection by the remote (the equivalent of a non-2xx answer). Guard
// maps it to StatusError; every other error becomes StatusSimulated.
var ErrRejected = serrors.NewKind("REMOTE_REJECTED") //nolint: gochecknoglobals

// Origin returns the origin that accompanies the status.
func (s Status) Origin() Origin {
	switch s {
	case StatusLive:
		return OriginRemote
	case StatusError:
		return OriginGateway
	default:
		return OriginFallback
	}
}

// Degraded reports whether the payload is a fallback.
func (s Status) Degraded() bool { return s != StatusLive }

// Worst returns the most degraded of the given statuses. Simulated outranks
// error because it means the remote could not be reached at all.
func Worst(statuses ...Status) Status {
	worst := StatusLive
	for _, s := range statuses {
		switch {
		case s == StatusSimulated:
			return StatusSimulated
		case s == StatusError:
			worst = StatusError
		}
	}

	return worst
}
