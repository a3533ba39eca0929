// Command migrate applies, rolls back or lists the embedded database migrations.
//
//	migrate up|down|status
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"bookmarks/config"
	"bookmarks/internal/domain/lifecycle"
	"bookmarks/internal/errors"
	logs "bookmarks/internal/infra/log"
	"bookmarks/internal/infra/persistence/postgres"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: migrate up|down|status")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(command string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*lifecycle.DefaultTimeout)
	defer cancel()

	migrator := postgres.NewMigrator(sqlDB, logger)

	switch command {
	case "up":
		return migrator.Up(ctx)
	case "down":
		return migrator.Down(ctx)
	case "status":
		return migrator.Status(ctx)
	default:
		return errors.Errorf("unknown command %q", command)
	}
}
