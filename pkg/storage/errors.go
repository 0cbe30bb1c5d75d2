package storage

import "spacescope/pkg/serrors"

// Common errors returned by storage implementations. They carry
// serrors.ErrInternal: they reveal misuse of the storage, not bad input.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context (Begin, WithTx, Ping) is attempted while already inside a transaction.
	ErrAlreadyInTx = serrors.With(serrors.ErrInternal, "already in tx") //nolint: gochecknoglobals
	// ErrNotInTx is returned when Commit or Rollback is called outside a transaction.
	ErrNotInTx = serrors.With(serrors.ErrInternal, "not in tx") //nolint: gochecknoglobals
)
