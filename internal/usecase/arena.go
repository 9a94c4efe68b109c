package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/stat"

	"github.com/rocketscienceinc/wild-tictactoe/internal/entity"
	"github.com/rocketscienceinc/wild-tictactoe/internal/tictactoe"
)

const (
	defaultPlayerName   = "player"
	defaultOpponentName = "opponent"
	defaultRunID        = "run"
)

type environment interface {
	Reset() (tictactoe.Transition, error)
	Step(action entity.Action) (tictactoe.Transition, error)
	WentFirst() entity.Side
	Winner() entity.Side
	History() []entity.Move
}

type gameService interface {
	SaveGame(ctx context.Context, record *entity.GameRecord) error
}

type playerService interface {
	AddStandings(ctx context.Context, delta *entity.Player) (*entity.Player, error)
}

// Summary is the outcome of one arena run seen from the player's side.
type Summary struct {
	Player   string
	Opponent string

	Games  int
	Won    int
	Drawn  int
	Lost   int
	Failed int

	MeanReturn float64
	StdReturn  float64
}

func (that *Summary) add(record *entity.GameRecord) {
	that.Games++

	switch record.Winner {
	case entity.SidePlayer:
		that.Won++
	case entity.SideOpponent:
		that.Lost++
	default:
		that.Drawn++
	}
}

// Arena plays a player policy against the opponent inside an environment, one episode after another.
type Arena struct {
	logger *slog.Logger

	env    environment
	player tictactoe.Policy

	playerName   string
	opponentName string
	runID        string

	gameService   gameService
	playerService playerService
}

type Option func(*Arena)

// WithNames - names under which standings are kept.
func WithNames(player, opponent string) Option {
	return func(that *Arena) {
		that.playerName = player
		that.opponentName = opponent
	}
}

// WithRunID - prefix of the stored game ids.
func WithRunID(runID string) Option {
	return func(that *Arena) {
		that.runID = runID
	}
}

// WithGameService - stores every finished episode.
func WithGameService(gameService gameService) Option {
	return func(that *Arena) {
		that.gameService = gameService
	}
}

// WithPlayerService - accumulates standings of both agents after the run.
func WithPlayerService(playerService playerService) Option {
	return func(that *Arena) {
		that.playerService = playerService
	}
}

func NewArena(logger *slog.Logger, env environment, player tictactoe.Policy, opts ...Option) *Arena {
	arena := &Arena{
		logger:       logger.With("component", "arena"),
		env:          env,
		player:       player,
		playerName:   defaultPlayerName,
		opponentName: defaultOpponentName,
		runID:        defaultRunID,
	}

	for _, opt := range opts {
		opt(arena)
	}

	return arena
}

// Run plays the given number of episodes. A failed episode is counted and the run goes on;
// the returned error holds every failure of the run.
func (that *Arena) Run(ctx context.Context, episodes int) (*Summary, error) {
	log := that.logger.With("method", "Run", "run_id", that.runID)

	summary := &Summary{Player: that.playerName, Opponent: that.opponentName}
	returns := make([]float64, 0, episodes)

	var errs *multierror.Error

	for i := 0; i < episodes; i++ {
		if err := ctx.Err(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("run stopped after %d episodes: %w", i, err))
			break
		}

		record, err := that.playEpisode(fmt.Sprintf("%s:%d", that.runID, i))
		if err != nil {
			log.Error("episode failed", "episode", i, "error", err)
			summary.Failed++
			errs = multierror.Append(errs, fmt.Errorf("episode %d: %w", i, err))
			continue
		}

		summary.add(record)
		returns = append(returns, float64(record.Return))

		if that.gameService != nil {
			if err = that.gameService.SaveGame(ctx, record); err != nil {
				log.Error("could not save game", "game_id", record.ID, "error", err)
				errs = multierror.Append(errs, fmt.Errorf("episode %d: %w", i, err))
			}
		}
	}

	if len(returns) > 0 {
		summary.MeanReturn = stat.Mean(returns, nil)
	}
	if len(returns) > 1 {
		summary.StdReturn = stat.StdDev(returns, nil)
	}

	if that.playerService != nil {
		if err := that.updateStandings(ctx, summary); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	log.Info("run finished",
		"games", summary.Games,
		"won", summary.Won,
		"drawn", summary.Drawn,
		"lost", summary.Lost,
		"failed", summary.Failed,
		"mean_return", summary.MeanReturn,
	)

	return summary, errs.ErrorOrNil()
}

func (that *Arena) playEpisode(id string) (*entity.GameRecord, error) {
	transition, err := that.env.Reset()
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}

	total := transition.Reward
	for !transition.Done {
		action, err := that.player.ChooseMove(transition.Board)
		if err != nil {
			return nil, fmt.Errorf("player move: %w", err)
		}

		transition, err = that.env.Step(action)
		if err != nil {
			return nil, fmt.Errorf("step: %w", err)
		}

		total += transition.Reward
	}

	return &entity.GameRecord{
		ID:        id,
		WentFirst: that.env.WentFirst(),
		Moves:     that.env.History(),
		Board:     transition.Board,
		Winner:    that.env.Winner(),
		Return:    total,
	}, nil
}

// updateStandings - the opponent's standings mirror the player's.
func (that *Arena) updateStandings(ctx context.Context, summary *Summary) error {
	deltas := []*entity.Player{
		{ID: that.playerName, Won: summary.Won, Drawn: summary.Drawn, Lost: summary.Lost, Failed: summary.Failed},
		{ID: that.opponentName, Won: summary.Lost, Drawn: summary.Drawn, Lost: summary.Won, Failed: summary.Failed},
	}

	var errs *multierror.Error
	for _, delta := range deltas {
		if _, err := that.playerService.AddStandings(ctx, delta); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("standings of %s: %w", delta.ID, err))
		}
	}

	return errs.ErrorOrNil()
}
