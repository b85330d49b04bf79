package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// DatabaseURL is the only hard requirement: without it there is
	// nothing to persist to, so startup aborts.
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	Environment string `envconfig:"ENV" default:"production"`

	// NoAnswerText is stored in place of the assistant's reply when the
	// model returned no content at all.
	NoAnswerText string `envconfig:"NO_ANSWER_TEXT" default:"Sorry, I could not generate an answer."`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
