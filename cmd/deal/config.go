package main

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config holds the settings for a deal, read from the environment
type Config struct {
	Seed     int64  `env:"DEAL_SEED,default=0"`
	Hands    int    `env:"DEAL_HANDS,default=2"`
	HandSize int    `env:"DEAL_HAND_SIZE,default=5"`
	Remove   string `env:"DEAL_REMOVE"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Hands < 1 {
		return errors.New("DEAL_HANDS must be at least 1")
	}
	if c.HandSize < 1 {
		return errors.New("DEAL_HAND_SIZE must be at least 1")
	}
	return nil
}
