package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	AI       AI     `yaml:"ai"`
	Window   Window `yaml:"window"`
	Theme    Theme  `yaml:"theme"`
}

type AI struct {
	// MoveDelayMS delays the computer's reply so the window does not
	// answer a click in the same frame.
	MoveDelayMS int `yaml:"move-delay-ms" env:"AI_MOVE_DELAY_MS" env-default:"500"`
}

type Window struct {
	Title  string `yaml:"title" env:"WINDOW_TITLE" env-default:"Tic-Tac-Toe vs AI"`
	Width  int    `yaml:"width" env:"WINDOW_WIDTH" env-default:"450"`
	Height int    `yaml:"height" env:"WINDOW_HEIGHT" env-default:"550"`
}

// Theme holds the color palette as #RRGGBB strings.
type Theme struct {
	Background string `yaml:"background" env:"THEME_BACKGROUND" env-default:"#000000"`
	Button     string `yaml:"button" env:"THEME_BUTTON" env-default:"#333333"`
	Text       string `yaml:"text" env:"THEME_TEXT" env-default:"#FFFFFF"`
	XColor     string `yaml:"x-color" env:"THEME_X_COLOR" env-default:"#00BFFF"`
	OColor     string `yaml:"o-color" env:"THEME_O_COLOR" env-default:"#FF4444"`
}

// MustLoad reads the config file at path, overlaying environment
// variables. A missing file is fine for a desktop game: defaults and
// environment alone are used then.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
