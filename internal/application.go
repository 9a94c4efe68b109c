package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/wild-tictactoe/internal/config"
	"github.com/rocketscienceinc/wild-tictactoe/internal/entity"
	"github.com/rocketscienceinc/wild-tictactoe/internal/repository"
	"github.com/rocketscienceinc/wild-tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/wild-tictactoe/internal/service"
	"github.com/rocketscienceinc/wild-tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/wild-tictactoe/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	seed := conf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info("Starting arena", "seed", seed, "episodes", conf.Episodes)

	var opts []usecase.Option
	var valueTableRepo repository.ValueTableRepository

	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func(client *redis.Client) {
			if closeErr := client.Close(); closeErr != nil {
				log.Error("could not close redis storage", "error", closeErr)
			}
		}(redisStorage)

		valueTableRepo = repository.NewValueTableRepository(redisStorage)
		opts = append(opts,
			usecase.WithGameService(service.NewGameService(repository.NewGameRepository(redisStorage))),
			usecase.WithPlayerService(service.NewPlayerService(repository.NewPlayerRepository(redisStorage))),
		)
	}

	player, err := newAgent(ctx, conf.Player, valueTableRepo, rand.New(rand.NewSource(seed+1)))
	if err != nil {
		return fmt.Errorf("could not build player: %w", err)
	}

	opponent, err := newAgent(ctx, conf.Opponent, valueTableRepo, rand.New(rand.NewSource(seed+2)))
	if err != nil {
		return fmt.Errorf("could not build opponent: %w", err)
	}

	env := tictactoe.NewEnvironment(logger, opponent, rand.New(rand.NewSource(seed)))

	runID := conf.RunID
	if runID == "" {
		runID = fmt.Sprintf("run-%d", seed)
	}

	opts = append(opts,
		usecase.WithNames(conf.Player.DisplayName(), conf.Opponent.DisplayName()),
		usecase.WithRunID(runID),
	)
	arena := usecase.NewArena(logger, env, player, opts...)

	summary, err := arena.Run(ctx, conf.Episodes)
	if summary != nil {
		log.Info("Arena summary",
			"player", summary.Player,
			"opponent", summary.Opponent,
			"games", summary.Games,
			"won", summary.Won,
			"drawn", summary.Drawn,
			"lost", summary.Lost,
			"failed", summary.Failed,
			"mean_return", summary.MeanReturn,
			"std_return", summary.StdReturn,
		)
	}
	if err != nil {
		return fmt.Errorf("arena run: %w", err)
	}

	return nil
}

// newAgent - builds the bot for one side, loading its value table when it needs one.
func newAgent(
	ctx context.Context,
	agent config.Agent,
	valueTableRepo repository.ValueTableRepository,
	rng *rand.Rand,
) (service.Bot, error) {
	var values entity.ValueTable

	if agent.Kind == config.KindGreedy {
		if valueTableRepo == nil {
			return nil, config.ErrGreedyNeedsRedis
		}

		table, err := valueTableRepo.Load(ctx, agent.ValueTable)
		if err != nil {
			return nil, fmt.Errorf("could not load value table %q: %w", agent.ValueTable, err)
		}
		values = table
	}

	return service.NewBot(agent.Kind, values, agent.DefaultValue, rng)
}
