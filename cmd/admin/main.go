package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/dbx"
	"github.com/dmitrijs2005/staffdesk/internal/server/admin"
	"github.com/dmitrijs2005/staffdesk/internal/server/config"
	"github.com/dmitrijs2005/staffdesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/staffdesk/internal/server/services"
)

func main() {
	os.Exit(run())
}

func run() int {
	if !admin.HasCommand(os.Args[1:]) {
		admin.Usage(os.Stderr)
		return 2
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	db, err := dbx.Open(ctx, "pgx", cfg.DatabaseDSN)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	tool := admin.NewTool(services.NewAccountService(db, rm), cfg.SecretKey, cfg.APIKeyValidityDuration, os.Stdout)

	err = tool.Run(ctx, os.Args[1:])
	switch {
	case err == nil:
		return 0
	case errors.Is(err, admin.ErrUnknownCommand):
		admin.Usage(os.Stderr)
		return 2
	case errors.Is(err, common.ErrorInputInvalid):
		fmt.Fprintln(os.Stderr, err)
		return 2
	default:
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
}
