package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
)

var errRedisDown = errors.New("redis down")

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newManager(repo gameRepo) *GameManager {
	manager := NewGameManager(discardLogger(), repo)
	manager.newID = func() string { return "g1" }
	return manager
}

func TestGameManager_NewGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates and stores a fresh game", func(t *testing.T) {
		// Given: a repository that accepts writes
		repo := &mockGameRepo{}
		repo.On("CreateOrUpdate", ctx, entity.NewGame("g1")).Return(nil).Once()
		manager := newManager(repo)

		// When: creating a new game
		game, err := manager.NewGame(ctx)

		// Then: the initial game is returned and stored
		require.NoError(t, err)
		assert.Equal(t, entity.NewGame("g1"), game)
		repo.AssertExpectations(t)
	})

	t.Run("Returns error if the repository fails", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("CreateOrUpdate", ctx, mock.AnythingOfType("*entity.Game")).Return(errRedisDown).Once()
		manager := newManager(repo)

		game, err := manager.NewGame(ctx)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})

	t.Run("Uses unique ids by default", func(t *testing.T) {
		manager := NewGameManager(discardLogger(), repository.NewMemoryGameRepository())

		first, err := manager.NewGame(ctx)
		require.NoError(t, err)
		second, err := manager.NewGame(ctx)
		require.NoError(t, err)

		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestGameManager_DropToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful drop is stored", func(t *testing.T) {
		// Given: a stored game in progress
		repo := &mockGameRepo{}
		repo.On("GetByID", ctx, "g1").Return(entity.NewGame("g1"), nil).Once()
		repo.On("CreateOrUpdate", ctx, mock.MatchedBy(func(game *entity.Game) bool {
			return game.Board[entity.BottomRow][2] == entity.CellOf(entity.Player1) && game.Turn == entity.Player2
		})).Return(nil).Once()
		manager := newManager(repo)

		// When: Player 1 drops into column 2
		game, move, err := manager.DropToken(ctx, "g1", 2)

		// Then: the updated game and the move are returned
		require.NoError(t, err)
		assert.Equal(t, entity.BottomRow, move.Row)
		assert.Equal(t, entity.Player1, move.Player)
		assert.Equal(t, entity.Player2, game.Turn)
		repo.AssertExpectations(t)
	})

	t.Run("Rejected drop is not stored", func(t *testing.T) {
		// Given: a stored game with a full column 0
		full := entity.NewGame("g1")
		for row := 0; row < entity.Rows; row++ {
			full.Board[row][0] = entity.CellOf(entity.PlayerID(row%2 + 1))
		}

		repo := &mockGameRepo{}
		repo.On("GetByID", ctx, "g1").Return(full, nil).Once()
		manager := newManager(repo)

		// When: dropping into the full column
		game, _, err := manager.DropToken(ctx, "g1", 0)

		// Then: ErrColumnFull is returned with the untouched game
		require.ErrorIs(t, err, apperror.ErrColumnFull)
		assert.True(t, apperror.IsRejection(err))
		assert.Equal(t, entity.Player1, game.Turn)
		repo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Unknown game", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("GetByID", ctx, "nope").Return(nil, apperror.ErrGameNotFound).Once()
		manager := newManager(repo)

		game, _, err := manager.DropToken(ctx, "nope", 0)

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})

	t.Run("Empty id never reaches the repository", func(t *testing.T) {
		repo := &mockGameRepo{}
		manager := newManager(repo)

		_, _, err := manager.DropToken(ctx, "", 0)

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Storage failure after a valid move", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("GetByID", ctx, "g1").Return(entity.NewGame("g1"), nil).Once()
		repo.On("CreateOrUpdate", ctx, mock.AnythingOfType("*entity.Game")).Return(errRedisDown).Once()
		manager := newManager(repo)

		game, _, err := manager.DropToken(ctx, "g1", 0)

		require.ErrorIs(t, err, errRedisDown)
		assert.False(t, apperror.IsRejection(err))
		assert.Nil(t, game)
	})
}

func TestGameManager_FullGame(t *testing.T) {
	ctx := context.Background()

	// Given: a manager backed by the memory store
	manager := newManager(repository.NewMemoryGameRepository())
	game, err := manager.NewGame(ctx)
	require.NoError(t, err)

	// When: Player 1 builds a bottom-row four while Player 2 plays column 6
	var move entity.Move
	for _, col := range []int{0, 6, 1, 6, 2, 6, 3} {
		_, move, err = manager.DropToken(ctx, game.ID, col)
		require.NoError(t, err)
	}

	// Then: the stored game is won by Player 1
	assert.Equal(t, entity.StatusWon, move.Status)

	stored, err := manager.GetGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Player1, stored.Winner)
	assert.Equal(t, 7, stored.Moves)

	cell, err := manager.GetCell(ctx, game.ID, entity.BottomRow, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.CellOf(entity.Player1), cell)

	_, err = manager.GetCell(ctx, game.ID, entity.Rows, 0)
	require.ErrorIs(t, err, apperror.ErrInvalidCell)

	// Then: further moves are rejected
	_, _, err = manager.DropToken(ctx, game.ID, 4)
	require.ErrorIs(t, err, apperror.ErrGameOver)

	// When: restarting
	restarted, err := manager.Restart(ctx, game.ID)
	require.NoError(t, err)

	// Then: the session is back to the initial configuration
	assert.Equal(t, entity.NewGame(game.ID), restarted)

	// When: ending the session
	require.NoError(t, manager.EndGame(ctx, game.ID))

	// Then: the game is gone
	_, err = manager.GetGame(ctx, game.ID)
	require.ErrorIs(t, err, apperror.ErrGameNotFound)
	require.ErrorIs(t, manager.EndGame(ctx, game.ID), apperror.ErrGameNotFound)
}
