package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/wild-tictactoe/internal/entity"
)

var ErrEmptyGameID = errors.New("game id is empty")

type GameService interface {
	SaveGame(ctx context.Context, record *entity.GameRecord) error
	GetGameByID(ctx context.Context, id string) (*entity.GameRecord, error)
	DeleteGame(ctx context.Context, id string) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, record *entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameService struct {
	gameRepo gameRepo
}

func NewGameService(gameRepo gameRepo) GameService {
	return &gameService{
		gameRepo: gameRepo,
	}
}

func (that *gameService) SaveGame(ctx context.Context, record *entity.GameRecord) error {
	if record.ID == "" {
		return ErrEmptyGameID
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, record); err != nil {
		return fmt.Errorf("failed to save game to storage: %w", err)
	}

	return nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	record, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return record, nil
}

func (that *gameService) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game from storage: %w", err)
	}

	return nil
}
