package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type TallyDigestConfig struct {
	App     App
	Logger  Logger
	DB      DB
	Voting  Voting
	Digest  Digest
	Bot     Bot
	Discord Discord
}

type MigrateConfig struct {
	App    App
	Logger Logger
	DB     DB
	Voting Voting
}

func LoadTallyDigestConfig() (TallyDigestConfig, error) {
	var config TallyDigestConfig

	if err := load(&config); err != nil {
		return TallyDigestConfig{}, err
	}

	return config, nil
}

func LoadMigrateConfig() (MigrateConfig, error) {
	var config MigrateConfig

	if err := load(&config); err != nil {
		return MigrateConfig{}, err
	}

	return config, nil
}

func load(config interface{}) error {
	// A missing .env file is fine, the environment may already be set.
	_ = godotenv.Load()

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return nil
}
