package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverFile  = "file"
	DriverRedis = "redis"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
	Players  Players `yaml:"players"`
}

type Storage struct {
	Driver   string `yaml:"driver" env:"TICTACTOE_STORAGE_DRIVER" env-default:"file"`
	FilePath string `yaml:"file-path" env:"TICTACTOE_SAVE_FILE" env-default:"savegame.json"`
	RedisKey string `yaml:"redis-key" env:"TICTACTOE_REDIS_KEY" env-default:"tictactoe:savegame"`
}

type Redis struct {
	Host string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
}

type Players struct {
	MarkA string `yaml:"mark-a" env:"TICTACTOE_MARK_A" env-default:"X"`
	MarkB string `yaml:"mark-b" env:"TICTACTOE_MARK_B" env-default:"O"`
}

// Load - reads the config file at path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Storage.Driver {
	case DriverFile, DriverRedis:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, that.Storage.Driver)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
