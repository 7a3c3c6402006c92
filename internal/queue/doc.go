// Package queue persists scanned items awaiting upload in a local SQLite
// database.
//
// A Store owns one collection (a table keyed by the record's "id" field) in a
// named database file. The handle is opened lazily on the first operation:
// the schema version row and the collection are created if missing, and
// concurrent first callers share the single handle that results. After that
// the store stays ready for the life of the process.
//
// Records are schema-agnostic maps. Add replaces any record with the same id,
// List returns independent copies, and Delete ignores ids that are not
// present. Every failure surfaces as a *StorageError matching
// ErrStorageUnavailable; the store never retries on its own.
//
// The database is transient storage for pending uploads. Schema changes bump
// schemaVersion in schema.go; users clear the database to adopt a new schema.
package queue
