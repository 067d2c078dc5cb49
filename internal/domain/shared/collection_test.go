package shared

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	key   uuid.UUID
	value string
}

func (r record) CollectionKey() uuid.UUID {
	return r.key
}

func TestInsertFront(t *testing.T) {
	t.Run("prepends newest first", func(t *testing.T) {
		a := record{key: uuid.New(), value: "a"}
		b := record{key: uuid.New(), value: "b"}

		records, err := InsertFront(nil, a)
		require.NoError(t, err)
		records, err = InsertFront(records, b)
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, "b", records[0].value)
		assert.Equal(t, "a", records[1].value)
	})

	t.Run("rejects duplicate key", func(t *testing.T) {
		a := record{key: uuid.New(), value: "a"}
		records, err := InsertFront(nil, a)
		require.NoError(t, err)

		_, err = InsertFront(records, record{key: a.key, value: "clone"})
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("leaves input untouched", func(t *testing.T) {
		a := record{key: uuid.New(), value: "a"}
		original := []record{a}

		_, err := InsertFront(original, record{key: uuid.New(), value: "b"})
		require.NoError(t, err)

		require.Len(t, original, 1)
		assert.Equal(t, "a", original[0].value)
	})
}

func TestFindByKey(t *testing.T) {
	a := record{key: uuid.New(), value: "a"}
	records := []record{a}

	found, ok := FindByKey(records, a.key)
	assert.True(t, ok)
	assert.Equal(t, "a", found.value)

	_, ok = FindByKey(records, uuid.New())
	assert.False(t, ok)
}

func TestReplaceByKey(t *testing.T) {
	t.Run("replaces in place", func(t *testing.T) {
		a := record{key: uuid.New(), value: "a"}
		b := record{key: uuid.New(), value: "b"}
		records := []record{a, b}

		updated, err := ReplaceByKey(records, b.key, func(r record) record {
			r.value = "b2"
			return r
		})

		require.NoError(t, err)
		assert.Equal(t, "a", updated[0].value)
		assert.Equal(t, "b2", updated[1].value)
		assert.Equal(t, "b", records[1].value)
	})

	t.Run("absent key is not found", func(t *testing.T) {
		_, err := ReplaceByKey([]record{}, uuid.New(), func(r record) record { return r })
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRemoveByKey(t *testing.T) {
	t.Run("removes one and keeps order", func(t *testing.T) {
		a := record{key: uuid.New(), value: "a"}
		b := record{key: uuid.New(), value: "b"}
		c := record{key: uuid.New(), value: "c"}
		records := []record{a, b, c}

		updated, err := RemoveByKey(records, b.key)

		require.NoError(t, err)
		require.Len(t, updated, 2)
		assert.Equal(t, "a", updated[0].value)
		assert.Equal(t, "c", updated[1].value)
		assert.Len(t, records, 3)
	})

	t.Run("absent key is not found", func(t *testing.T) {
		_, err := RemoveByKey([]record{}, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
