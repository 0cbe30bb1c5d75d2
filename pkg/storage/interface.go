// Package storage declares the persistence contracts of the gateway: pilot
// profiles, feed snapshots and queued jobs. Package postgres implements them.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is every repository the gateway persists through. Handles
// inside and outside a transaction both satisfy it.
type AllStorage interface {
	ProfileStorage
	SnapshotStorage
	JobStorage
}

// TxStorage is a handle bound to one open transaction. It must not be used
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle held by services.
type Storage interface {
	AllStorage

	// Ping fails when the database cannot be reached.
	Ping(ctx context.Context) error
	Close() error

	// Begin returns ErrAlreadyInTx when called on a transactional handle.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and
	// rolling back on error or panic.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
