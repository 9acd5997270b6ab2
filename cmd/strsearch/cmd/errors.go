package cmd

import (
	"errors"
	"strings"

	bolt "go.etcd.io/bbolt"
)

// isDBLockError returns true if the error chain contains a bbolt lock timeout.
// bbolt returns ErrTimeout when it cannot acquire the file lock within the
// configured deadline.
func isDBLockError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, bolt.ErrTimeout) || strings.Contains(err.Error(), "timeout")
}
