package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedShelves_Idempotent(t *testing.T) {
	r := NewRepo(newTestDB(t))
	ctx := context.Background()

	res, err := r.SeedShelves(ctx, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Shelves: 3, Levels: 12}, res)

	res, err = r.SeedShelves(ctx, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{}, res)

	// 扩容只补新的
	res, err = r.SeedShelves(ctx, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Shelves: 1, Levels: 4}, res)

	shelves, err := r.ListShelves(ctx)
	require.NoError(t, err)
	require.Len(t, shelves, 4)
	for i, sh := range shelves {
		assert.Equal(t, i+1, sh.Number)
		require.Len(t, sh.Levels, 4)
		assert.Equal(t, 1, sh.Levels[0].Number)
		assert.Equal(t, 4, sh.Levels[3].Number)
	}
}
