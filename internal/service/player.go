package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/wild-tictactoe/internal/entity"
	"github.com/rocketscienceinc/wild-tictactoe/internal/repository"
)

type PlayerService interface {
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	AddStandings(ctx context.Context, delta *entity.Player) (*entity.Player, error)
}

type playerService struct {
	playerRepo playerRepo
}

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

func NewPlayerService(playerRepo playerRepo) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
	}
}

func (that *playerService) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	existingPlayer, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get player by id: %w", err)
	}

	return existingPlayer, nil
}

// AddStandings - adds delta's results to the stored standings of delta.ID, creating them on first use.
func (that *playerService) AddStandings(ctx context.Context, delta *entity.Player) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, delta.ID)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		player = &entity.Player{ID: delta.ID}
	} else if err != nil {
		return nil, fmt.Errorf("get player by id: %w", err)
	}

	player.Won += delta.Won
	player.Drawn += delta.Drawn
	player.Lost += delta.Lost
	player.Failed += delta.Failed

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("update player: %w", err)
	}

	return player, nil
}
