package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/wild-tictactoe/internal/entity"
	"github.com/rocketscienceinc/wild-tictactoe/testing/suite"
)

func TestPlayerRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	playerRepo := NewPlayerRepository(st.Storage)

	// Given: standings of an agent
	player := &entity.Player{ID: "random", Won: 1}

	// When: CreateOrUpdate is called twice
	require.NoError(t, playerRepo.CreateOrUpdate(ctx, player))
	player.Won++
	require.NoError(t, playerRepo.CreateOrUpdate(ctx, player))

	// Then: the latest standings are stored
	stored, err := playerRepo.GetByID(ctx, "random")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Won)
}

func TestPlayerRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage)

		// Given: stored standings
		player := &entity.Player{ID: "greedy", Won: 7, Drawn: 2, Lost: 1, Failed: 1}
		err := playerRepo.CreateOrUpdate(ctx, player)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrieved, err := playerRepo.GetByID(ctx, player.ID)

		// Then: the retrieved standings should match the saved ones
		require.NoError(t, err)
		require.Equal(t, player, retrieved)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage)

		// When: GetByID is called with non-existent ID
		retrieved, err := playerRepo.GetByID(ctx, "9999999")

		// Then: an ErrPlayerNotFound error should be returned
		require.ErrorIs(t, err, ErrPlayerNotFound)
		assert.Nil(t, retrieved)
	})
}
