package main

import (
	"flag"
	"os"

	"thumbs_up/configs"
	"thumbs_up/internal/db"
	"thumbs_up/internal/db/migrations"
	"thumbs_up/internal/di"
)

const usage = `usage: votes_migrate <command> [args]

Commands:
  init        creates the migrations version table
  up          runs all available migrations
  up [target] runs available migrations up to the target one
  down        reverts the last migration
  reset       reverts all migrations
  version     prints the current db version
  set_version [version] sets the db version without running migrations
`

func main() {
	flag.Usage = func() {
		_, _ = os.Stderr.WriteString(usage)
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	config, err := configs.LoadMigrateConfig()
	logger := di.NewLogger(config.Logger, config.App)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}

	database, err := db.Connect(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to connect to db", "error", err)
	}
	defer database.Close()

	oldVersion, newVersion, err := migrations.NewCollection(config.Voting.UniqueVoting).Run(database, flag.Args()...)
	if err != nil {
		logger.Fatalw("failed to run migrations", "command", flag.Arg(0), "error", err)
	}

	if newVersion != oldVersion {
		logger.Infof("migrated from version %d to %d", oldVersion, newVersion)
	} else {
		logger.Infof("version is %d", oldVersion)
	}
}
