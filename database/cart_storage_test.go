package database_test

import (
	"context"
	"testing"

	"storefront-service/database"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCartStorage_MissingKeyYieldsNilNil(t *testing.T) {
	s := database.NewMemoryCartStorage()

	data, err := s.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryCartStorage_SetGetClear(t *testing.T) {
	s := database.NewMemoryCartStorage()
	ctx := context.Background()

	assert.NoError(t, s.Set(ctx, "k", []byte("v1")))

	data, err := s.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte("v1"), data)

	assert.NoError(t, s.Clear(ctx, "k"))
	data, err = s.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryCartStorage_ReturnsCopies(t *testing.T) {
	s := database.NewMemoryCartStorage()
	ctx := context.Background()

	original := []byte("payload")
	assert.NoError(t, s.Set(ctx, "k", original))

	// Mutating the caller's slice or a returned slice must not leak into
	// the store.
	original[0] = 'X'
	data, err := s.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	data[0] = 'Y'
	again, err := s.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte("payload"), again)
}
