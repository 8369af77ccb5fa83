package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySecureStorage()

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrItemNotFound)

	value := []byte("v1")
	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got, "stored value must not alias the caller's slice")

	require.NoError(t, s.Remove(ctx, "k"))
	require.NoError(t, s.Remove(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestMemoryStorage_ApplyInOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySecureStorage()
	require.NoError(t, s.Set(ctx, "gone", []byte("1")))

	batch := NewBatch().
		Put("a", []byte("1")).
		Put("a", []byte("2")).
		Delete("gone").
		Put("b", []byte("3")).
		Delete("b")
	require.NoError(t, s.Apply(ctx, batch))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)

	_, err = s.Get(ctx, "gone")
	assert.ErrorIs(t, err, ErrItemNotFound)
	_, err = s.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestBatch_Ops(t *testing.T) {
	var nilBatch *Batch
	assert.Equal(t, 0, nilBatch.Len())

	b := NewBatch().Put("a", []byte("1")).Delete("b")
	require.Equal(t, 2, b.Len())
	assert.Equal(t, BatchOp{Key: "a", Value: []byte("1")}, b.Ops()[0])
	assert.Equal(t, BatchOp{Key: "b", Remove: true}, b.Ops()[1])
}
