package main

import (
	"errors"
	"net/http"

	"github.com/urfave/cli/v2"
	"github.com/userhub/backend/internal/middleware"
	"github.com/userhub/backend/migration"
	"github.com/userhub/backend/pkg/prometheus"
	"github.com/userhub/backend/pkg/router"
	"github.com/userhub/backend/pkg/xcontext"
)

func (s *srv) startApi(ct *cli.Context) error {
	if err := s.loadConfig(ct); err != nil {
		return err
	}

	if err := s.loadLogger(); err != nil {
		return err
	}

	if err := s.loadDatabase(); err != nil {
		return err
	}

	if err := s.loadRepos(); err != nil {
		return err
	}

	if err := s.loadDomains(); err != nil {
		return err
	}

	s.loadRouter()

	ctx := xcontext.WithDB(ct.Context, s.db)
	if err := migration.AutoMigrate(ctx); err != nil {
		return err
	}

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on %s", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	s.logger.Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, s.configs, s.logger)

	router.GET(s.router, "/{$}", s.infoDomain.ServiceInfo)
	s.router.Handle("GET /metrics", prometheus.NewHandler())

	// User API
	userRouter := s.router.Branch()
	userRouter.Before(middleware.Identity())
	userRouter.AddCloser(middleware.Logger())
	userRouter.AddCloser(middleware.Prometheus())
	router.POST(userRouter, "/users", s.userDomain.Create)
	router.GET(userRouter, "/users", s.userDomain.GetList)
	router.GET(userRouter, "/users/{id}", s.userDomain.Get)
	router.PUT(userRouter, "/users/{id}", s.userDomain.Update)
	router.PATCH(userRouter, "/users/{id}", s.userDomain.Patch)
	router.DELETE(userRouter, "/users/{id}", s.userDomain.Delete)
	router.GET(userRouter, "/users/search/{term}", s.userDomain.Search)
}
