package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// BoardSize is the board used when a game is created without dimensions.
type BoardSize struct {
	Width  int
	Height int
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	defaultSize BoardSize
	newID       func() string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, defaultSize BoardSize) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "gameManager"),
		gameRepo: gameRepo,

		defaultSize: defaultSize,
		newID:       uuid.NewString,
	}
}

// CreateGame starts a new game. Zero dimensions fall back to the default size.
func (that *GameManager) CreateGame(ctx context.Context, width, height int) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	if width == 0 && height == 0 {
		width, height = that.defaultSize.Width, that.defaultSize.Height
	}

	game, err := entity.NewGame(that.newID(), width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	gameLog := that.logger.With("game", game.ID)
	game.OnPlace(func(move gomoku.Move) {
		gameLog.Info("stone placed",
			"player", move.Player.String(),
			"x", move.Point.X,
			"y", move.Point.Y,
			"state", move.State.String(),
		)

		if move.State.IsTerminal() {
			gameLog.Info("game over", "result", move.State.Message())
		}
	})

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	log.Info("game created", "game", game.ID, "width", width, "height", height)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn places the current player's stone at (x, y) in the given game.
// Rejected moves return the game together with the reason.
func (that *GameManager) MakeTurn(ctx context.Context, id string, x, y int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "game", id)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(x, y); err != nil {
		log.Debug("turn rejected", "x", x, "y", y, "error", err)
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	log := that.logger.With("method", "DeleteGame")

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game deleted", "game", id)

	return nil
}
