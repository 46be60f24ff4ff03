package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager hosts game sessions. Every event loads the session, applies
// one engine transition and stores the result; events are handled one at a
// time.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	mu    sync.Mutex
	newID func() string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		newID:    uuid.NewString,
	}
}

func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	engine := connectfour.NewEngine(that.newID())

	if err := that.updateGame(ctx, engine.Game()); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", engine.Game().ID)

	return engine.Game(), nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.getGameByID(ctx, id)
}

// DropToken applies a column drop. Rules rejections come back wrapped with
// the game untouched in storage.
func (that *GameManager) DropToken(ctx context.Context, id string, column int) (*entity.Game, entity.Move, error) {
	log := that.logger.With("method", "DropToken", "gameID", id, "column", column)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, entity.Move{}, err
	}

	engine := connectfour.Resume(game)

	move, err := engine.DropToken(column)
	if err != nil {
		log.Debug("move rejected", "error", err)
		return game, entity.Move{}, fmt.Errorf("failed to drop token: %w", err)
	}

	if err = that.updateGame(ctx, engine.Game()); err != nil {
		return nil, entity.Move{}, err
	}

	log.Debug("token dropped", "row", move.Row, "player", move.Player, "board", engine.Game().Board.String())

	if engine.Game().IsFinished() {
		log.Info("game finished", "status", move.Status, "winner", move.Winner, "moves", engine.Game().Moves)
	}

	return engine.Game(), move, nil
}

func (that *GameManager) Restart(ctx context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	engine := connectfour.Resume(game)
	engine.Restart()

	if err = that.updateGame(ctx, engine.Game()); err != nil {
		return nil, err
	}

	that.logger.Info("game restarted", "gameID", id)

	return engine.Game(), nil
}

func (that *GameManager) GetCell(ctx context.Context, id string, row, col int) (entity.Cell, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return entity.EmptyCell, err
	}

	cell, err := connectfour.Resume(game).Cell(row, col)
	if err != nil {
		return entity.EmptyCell, fmt.Errorf("failed to get cell: %w", err)
	}

	return cell, nil
}

// EndGame destroys the session.
func (that *GameManager) EndGame(ctx context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game ended", "gameID", id)

	return nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", apperror.ErrGameNotFound)
	}

	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
