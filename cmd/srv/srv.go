package main

import (
	"net/http"

	"github.com/urfave/cli/v2"
	"github.com/userhub/backend/config"
	"github.com/userhub/backend/internal/domain"
	"github.com/userhub/backend/internal/repository"
	"github.com/userhub/backend/pkg/logger"
	"github.com/userhub/backend/pkg/router"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs config.Configs
	logger  logger.Logger
	db      *gorm.DB
	router  *router.Router

	userRepo repository.UserRepository

	userDomain domain.UserDomain
	infoDomain domain.InfoDomain

	server *http.Server
}

func (s *srv) loadConfig(ct *cli.Context) error {
	var err error
	s.configs, err = config.Load(ct.String("config"))
	return err
}

func (s *srv) loadLogger() error {
	s.logger = logger.NewZapLogger(s.configs.LogLevel, s.configs.Env != "local")
	return nil
}

func (s *srv) loadDatabase() error {
	var dialector gorm.Dialector
	switch s.configs.Database.Driver {
	case "mysql":
		dialector = mysql.Open(s.configs.Database.ConnectionString())
	default:
		dialector = sqlite.Open(s.configs.Database.File)
	}

	var err error
	s.db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
	return err
}

func (s *srv) loadRepos() error {
	s.userRepo = repository.NewUserRepository()
	return nil
}

func (s *srv) loadDomains() error {
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.infoDomain = domain.NewInfoDomain()
	return nil
}
