package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/wild-tictactoe/internal/entity"
)

var ErrValueTableNotFound = errors.New("value table not found")

const valuesKeyPrefix = "values:"

// ValueTableRepository keeps each value table as one redis hash: board key -> value.
type ValueTableRepository interface {
	Save(ctx context.Context, name string, table entity.ValueTable) error
	Load(ctx context.Context, name string) (entity.ValueTable, error)
	Delete(ctx context.Context, name string) error
}

type dbValueTable struct {
	client *redis.Client
}

func NewValueTableRepository(client *redis.Client) ValueTableRepository {
	return &dbValueTable{
		client: client,
	}
}

// Save replaces the stored table with the given one.
func (that *dbValueTable) Save(ctx context.Context, name string, table entity.ValueTable) error {
	key := valuesKeyPrefix + name

	fields := make(map[string]any, len(table))
	for boardKey, value := range table {
		fields[boardKey] = strconv.FormatFloat(value, 'g', -1, 64)
	}

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(fields) > 0 {
			pipe.HSet(ctx, key, fields)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save value table %s: %w", name, err)
	}

	return nil
}

func (that *dbValueTable) Load(ctx context.Context, name string) (entity.ValueTable, error) {
	response, err := that.client.HGetAll(ctx, valuesKeyPrefix+name).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load value table %s: %w", name, err)
	}

	// redis has no empty hashes
	if len(response) == 0 {
		return nil, ErrValueTableNotFound
	}

	table := make(entity.ValueTable, len(response))
	for boardKey, raw := range response {
		if _, err = entity.ParseBoard(boardKey); err != nil {
			return nil, fmt.Errorf("value table %s: %w", name, err)
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("value table %s: bad value for %s: %w", name, boardKey, err)
		}
		table[boardKey] = value
	}

	return table, nil
}

func (that *dbValueTable) Delete(ctx context.Context, name string) error {
	deleted, err := that.client.Del(ctx, valuesKeyPrefix+name).Result()
	if err != nil {
		return fmt.Errorf("failed to delete value table %s: %w", name, err)
	}

	if deleted == 0 {
		return ErrValueTableNotFound
	}

	return nil
}
