package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

var ErrInvalidBoard = errors.New("invalid default board size")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	HTTP     HTTP   `yaml:"http"`
	Board    Board  `yaml:"board"`
}

type HTTP struct {
	ReadTimeout  time.Duration `yaml:"read-timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write-timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `yaml:"idle-timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"30s"`
}

// Board holds the dimensions used for games created without explicit ones.
type Board struct {
	Width  int `yaml:"width" env:"BOARD_WIDTH" env-default:"19"`
	Height int `yaml:"height" env:"BOARD_HEIGHT" env-default:"19"`
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
	if that.Board.Width <= 0 || that.Board.Height <= 0 {
		return fmt.Errorf("%w: %dx%d is not positive", ErrInvalidBoard, that.Board.Width, that.Board.Height)
	}

	if that.Board.Width > gomoku.MaxSide || that.Board.Height > gomoku.MaxSide {
		return fmt.Errorf("%w: %dx%d exceeds %d per side", ErrInvalidBoard, that.Board.Width, that.Board.Height, gomoku.MaxSide)
	}

	return nil
}

func (that *Config) GetHTTPAddr() string {
	return ":" + that.HTTPPort
}
