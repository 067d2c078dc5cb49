package shared

import (
	"github.com/google/uuid"
)

// Keyed is implemented by sub-records that live inside an aggregate's
// ordered embedded collection. The key must be unique within the parent
// collection and must never change once the record is inserted.
type Keyed interface {
	CollectionKey() uuid.UUID
}

// InsertFront prepends a record to the collection so the newest record is
// always first. The caller is responsible for generating a fresh key before
// insertion; a key already present in the collection is rejected with
// ErrDuplicateKey. The input slice is left untouched.
func InsertFront[T Keyed](records []T, record T) ([]T, error) {
	key := record.CollectionKey()
	for _, r := range records {
		if r.CollectionKey() == key {
			return nil, ErrDuplicateKey
		}
	}

	result := make([]T, 0, len(records)+1)
	result = append(result, record)
	result = append(result, records...)
	return result, nil
}

// FindByKey locates a record by its key with a linear scan. Collections are
// expected to stay small (tens of entries), so no index structure is kept.
func FindByKey[T Keyed](records []T, key uuid.UUID) (T, bool) {
	for _, r := range records {
		if r.CollectionKey() == key {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// ReplaceByKey overwrites the record with the given key using apply,
// preserving its position in the collection. apply receives the current
// record and returns the updated one; it must not change the key. Returns
// ErrNotFound when the key is absent. The input slice is left untouched.
func ReplaceByKey[T Keyed](records []T, key uuid.UUID, apply func(T) T) ([]T, error) {
	for i, r := range records {
		if r.CollectionKey() == key {
			result := make([]T, len(records))
			copy(result, records)
			result[i] = apply(r)
			return result, nil
		}
	}
	return nil, ErrNotFound
}

// RemoveByKey removes exactly one record by key, preserving the relative
// order of the remainder. Returns ErrNotFound when the key is absent. The
// input slice is left untouched.
func RemoveByKey[T Keyed](records []T, key uuid.UUID) ([]T, error) {
	for i, r := range records {
		if r.CollectionKey() == key {
			result := make([]T, 0, len(records)-1)
			result = append(result, records[:i]...)
			result = append(result, records[i+1:]...)
			return result, nil
		}
	}
	return nil, ErrNotFound
}
