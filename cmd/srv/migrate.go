package main

import (
	"context"

	"github.com/chirp-lab/backend/migration"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()

	ctx := xcontext.WithConfigs(context.Background(), *s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	ctx = xcontext.WithDB(ctx, s.db)

	if err := migration.Migrate(ctx); err != nil {
		return err
	}

	s.logger.Infof("Database is up to date")
	return nil
}
