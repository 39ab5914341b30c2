package repository

import "fmt"

// MappingError reports a record that vanished between listing and
// dereferencing. Field-level absences never produce one; only a missing
// record does.
type MappingError struct {
	Collection string
	ID         string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping %s/%s: document data is missing", e.Collection, e.ID)
}

// RepositoryError reports a failed write or a post-write read-back miss.
// Read paths degrade to nil/empty results instead of raising one.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("repository %s failed", e.Op)
	}
	return fmt.Sprintf("repository %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}
