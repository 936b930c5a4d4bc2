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

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

var errRepoDown = errors.New("repository down")

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

func newManager(t *testing.T) (*GameManager, *mockGameRepo) {
	t.Helper()

	repo := &mockGameRepo{}
	t.Cleanup(func() {
		repo.AssertExpectations(t)
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := NewGameManager(logger, repo, BoardSize{Width: 19, Height: 19})
	manager.newID = func() string { return "g1" }

	return manager, repo
}

func TestGameManager_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Uses the default size when none is given", func(t *testing.T) {
		// Given: a repository accepting the new game
		manager, repo := newManager(t)
		repo.On("CreateOrUpdate", ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		// When: creating a game without dimensions
		game, err := manager.CreateGame(ctx, 0, 0)

		// Then: a 19x19 game is stored
		require.NoError(t, err)
		assert.Equal(t, "g1", game.ID)
		assert.Equal(t, 19, game.View().Width)
		assert.Equal(t, 19, game.View().Height)
	})

	t.Run("Uses the requested size", func(t *testing.T) {
		manager, repo := newManager(t)
		repo.On("CreateOrUpdate", ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		game, err := manager.CreateGame(ctx, 15, 9)

		require.NoError(t, err)
		assert.Equal(t, 15, game.View().Width)
		assert.Equal(t, 9, game.View().Height)
	})

	t.Run("Rejects invalid dimensions", func(t *testing.T) {
		// Given: no repository calls are expected
		manager, _ := newManager(t)

		// When: creating a game with a negative width
		game, err := manager.CreateGame(ctx, -3, 19)

		// Then: ErrInvalidDimensions is returned
		require.ErrorIs(t, err, apperror.ErrInvalidDimensions)
		assert.Nil(t, game)
	})

	t.Run("Rejects oversized dimensions", func(t *testing.T) {
		manager, repo := newManager(t)

		game, err := manager.CreateGame(ctx, 100000, 100000)

		require.ErrorIs(t, err, apperror.ErrInvalidDimensions)
		assert.Nil(t, game)
		repo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Returns error if repository fails", func(t *testing.T) {
		manager, repo := newManager(t)
		repo.On("CreateOrUpdate", ctx, mock.AnythingOfType("*entity.Game")).Return(errRepoDown).Once()

		game, err := manager.CreateGame(ctx, 0, 0)

		require.ErrorIs(t, err, errRepoDown)
		assert.Nil(t, game)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Places the stone and saves the game", func(t *testing.T) {
		// Given: a stored game
		manager, repo := newManager(t)
		game, err := entity.NewGame("g1", 19, 19)
		require.NoError(t, err)

		repo.On("GetByID", ctx, "g1").Return(game, nil).Once()
		repo.On("CreateOrUpdate", ctx, game).Return(nil).Once()

		// When: black plays (4, 5)
		updated, err := manager.MakeTurn(ctx, "g1", 4, 5)

		// Then: the game holds the stone and white moves next
		require.NoError(t, err)
		assert.Equal(t, "black", updated.View().Board[5][4])
		assert.Equal(t, "white", updated.View().Turn)
	})

	t.Run("Occupied point is rejected without saving", func(t *testing.T) {
		manager, repo := newManager(t)
		game, err := entity.NewGame("g1", 19, 19)
		require.NoError(t, err)
		require.NoError(t, game.MakeTurn(0, 0))

		repo.On("GetByID", ctx, "g1").Return(game, nil).Once()

		updated, err := manager.MakeTurn(ctx, "g1", 0, 0)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Same(t, game, updated)
	})

	t.Run("Finished game is rejected", func(t *testing.T) {
		// Given: a game black has already won
		manager, repo := newManager(t)
		game, err := entity.NewGame("g1", 19, 19)
		require.NoError(t, err)
		for x := 0; x < 4; x++ {
			require.NoError(t, game.MakeTurn(x, 0))
			require.NoError(t, game.MakeTurn(x, 1))
		}
		require.NoError(t, game.MakeTurn(4, 0))

		repo.On("GetByID", ctx, "g1").Return(game, nil).Once()

		// When: white tries to move
		_, err = manager.MakeTurn(ctx, "g1", 4, 1)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Unknown game", func(t *testing.T) {
		manager, repo := newManager(t)
		repo.On("GetByID", ctx, "nope").Return(nil, apperror.ErrGameNotFound).Once()

		game, err := manager.MakeTurn(ctx, "nope", 0, 0)

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})
}

func TestGameManager_DeleteGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes the game", func(t *testing.T) {
		manager, repo := newManager(t)
		repo.On("DeleteByID", ctx, "g1").Return(nil).Once()

		require.NoError(t, manager.DeleteGame(ctx, "g1"))
	})

	t.Run("Unknown game", func(t *testing.T) {
		manager, repo := newManager(t)
		repo.On("DeleteByID", ctx, "g1").Return(apperror.ErrGameNotFound).Once()

		err := manager.DeleteGame(ctx, "g1")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
