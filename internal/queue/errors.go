package queue

import "errors"

var (
	// ErrStorageUnavailable matches every failure returned by Store operations.
	ErrStorageUnavailable = errors.New("queue storage unavailable")
	// ErrInvalidKey indicates a record without a usable "id" value.
	ErrInvalidKey = errors.New("invalid queue key")
	// ErrSchemaMismatch indicates the database was created with a different schema version.
	ErrSchemaMismatch = errors.New("schema version mismatch")
)

// StorageError reports a failed store operation. It matches
// ErrStorageUnavailable and unwraps to the underlying cause.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return "queue " + e.Op + ": " + ErrStorageUnavailable.Error()
	}
	return "queue " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorageUnavailable }

func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var existing *StorageError
	if errors.As(err, &existing) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
