package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	KindRandom      = "random"
	KindFirstEmptyX = "first-empty-x"
	KindFirstEmptyO = "first-empty-o"
	KindGreedy      = "greedy"
)

var (
	ErrUnknownAgentKind  = errors.New("unknown agent kind")
	ErrInvalidEpisodes   = errors.New("episodes must be positive")
	ErrGreedyNeedsRedis  = errors.New("greedy agent needs redis enabled")
	ErrGreedyNeedsTable  = errors.New("greedy agent needs a value table name")
	ErrRedisAddrNotFound = errors.New("redis address string is empty")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Seed     uint64 `yaml:"seed" env:"SEED" env-default:"0"`
	Episodes int    `yaml:"episodes" env:"EPISODES" env-default:"1000"`
	RunID    string `yaml:"run-id" env:"RUN_ID"`
	Player   Agent  `yaml:"player" env-prefix:"PLAYER_"`
	Opponent Agent  `yaml:"opponent" env-prefix:"OPPONENT_"`
	Redis    Redis  `yaml:"redis" env-prefix:"REDIS_"`
}

type Agent struct {
	Name         string  `yaml:"name" env:"NAME"`
	Kind         string  `yaml:"kind" env:"KIND" env-default:"random"`
	ValueTable   string  `yaml:"value-table" env:"VALUE_TABLE"`
	DefaultValue float64 `yaml:"default-value" env:"DEFAULT_VALUE" env-default:"0"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Episodes <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidEpisodes, that.Episodes)
	}

	for _, agent := range []Agent{that.Player, that.Opponent} {
		switch agent.Kind {
		case KindRandom, KindFirstEmptyX, KindFirstEmptyO, KindGreedy:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownAgentKind, agent.Kind)
		}

		if agent.Kind != KindGreedy {
			continue
		}

		if !that.Redis.Enabled {
			return fmt.Errorf("%w: %s", ErrGreedyNeedsRedis, agent.DisplayName())
		}

		if agent.ValueTable == "" {
			return fmt.Errorf("%w: %s", ErrGreedyNeedsTable, agent.DisplayName())
		}
	}

	if that.Redis.Enabled && that.Redis.GetRedisAddr() == "" {
		return ErrRedisAddrNotFound
	}

	return nil
}

// DisplayName - configured name, or the kind when no name is set.
func (that *Agent) DisplayName() string {
	if that.Name != "" {
		return that.Name
	}
	return that.Kind
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
