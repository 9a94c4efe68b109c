package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/wild-tictactoe/internal/entity"
)

type mockPlayerRepo struct {
	mock.Mock
}

func (that *mockPlayerRepo) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	args := that.Called(ctx, player)
	return args.Error(0)
}

func (that *mockPlayerRepo) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	args := that.Called(ctx, id)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, record *entity.GameRecord) error {
	args := that.Called(ctx, record)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	args := that.Called(ctx, id)
	record, _ := args.Get(0).(*entity.GameRecord)
	return record, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}
