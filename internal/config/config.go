package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeBot = "bot"
	ModePVP = "pvp"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env-default:"info"`
	Mode     string  `yaml:"mode" env-default:"bot"`
	Players  Players `yaml:"players"`
	Redis    Redis   `yaml:"redis"`
}

type Players struct {
	RedName    string `yaml:"red-name" env-default:"Red"`
	YellowName string `yaml:"yellow-name" env-default:"Yellow"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env-default:"false"`
	Host    string `yaml:"host" env-default:"localhost"`
	Port    string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file. A missing file is
// fine for a local game; defaults apply.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read default config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
