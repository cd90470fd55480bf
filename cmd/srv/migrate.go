package main

import (
	"github.com/urfave/cli/v2"
	"github.com/userhub/backend/migration"
	"github.com/userhub/backend/pkg/xcontext"
)

func (s *srv) startMigrate(ct *cli.Context) error {
	if err := s.loadConfig(ct); err != nil {
		return err
	}

	if err := s.loadLogger(); err != nil {
		return err
	}

	if err := s.loadDatabase(); err != nil {
		return err
	}

	ctx := xcontext.WithDB(ct.Context, s.db)
	ctx = xcontext.WithLogger(ctx, s.logger)
	if err := migration.AutoMigrate(ctx); err != nil {
		return err
	}

	s.logger.Infof("Migration completed")
	return nil
}
