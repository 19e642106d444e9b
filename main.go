package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/techagentng/socialgraph/config"
	"github.com/techagentng/socialgraph/db"
	"github.com/techagentng/socialgraph/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	conf, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	log, err := logger.New(conf.Env)
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}
	defer log.Sync()

	gormDB, err := db.GetDB(conf, log)
	if err != nil {
		log.Errorw("database initialisation failed", "error", err)
		return err
	}

	sqlDB, err := gormDB.DB.DB()
	if err != nil {
		log.Errorw("unable to reach connection pool", "error", err)
		return err
	}
	defer sqlDB.Close()

	log.Infow("social graph schema is up to date", "env", conf.Env)
	return nil
}
