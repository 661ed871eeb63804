package main

import (
	"fmt"
	"net/http"

	"github.com/chirp-lab/backend/config"
	"github.com/chirp-lab/backend/internal/domain"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/logger"
	"github.com/chirp-lab/backend/pkg/router"
	"github.com/chirp-lab/backend/pkg/storage"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	fileStorage storage.Storage

	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	likeRepo   repository.LikeRepository
	tweetRepo  repository.TweetRepository
	mediaRepo  repository.TweetMediaRepository

	userDomain  domain.UserDomain
	tweetDomain domain.TweetDomain
	mediaDomain domain.MediaDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(cctx *cli.Context) {
	configs, err := config.Load(cctx.String("config"))
	if err != nil {
		panic(err)
	}

	s.configs = configs
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(s.configs.LogLevel)
}

func (s *srv) loadDatabase() {
	var dialector gorm.Dialector
	switch s.configs.Database.Driver {
	case "mysql":
		dialector = mysql.Open(s.configs.Database.ConnectionString())
	case "sqlite":
		dialector = sqlite.Open(
			fmt.Sprintf("file:%s?_foreign_keys=on", s.configs.Database.SQLitePath))
	default:
		panic(fmt.Sprintf("unknown database driver %s", s.configs.Database.Driver))
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		panic(err)
	}

	s.db = db
}

func (s *srv) loadStorage() {
	switch s.configs.Storage.Type {
	case "s3":
		s.fileStorage = storage.NewS3Storage(s.configs.Storage.S3)
	case "local":
		s.fileStorage = storage.NewLocalStorage(s.configs.Storage.Local)
	default:
		panic(fmt.Sprintf("unknown storage type %s", s.configs.Storage.Type))
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.followRepo = repository.NewFollowRepository()
	s.likeRepo = repository.NewLikeRepository()
	s.tweetRepo = repository.NewTweetRepository()
	s.mediaRepo = repository.NewTweetMediaRepository()
}

func (s *srv) loadDomains() {
	s.userDomain = domain.NewUserDomain(s.userRepo, s.followRepo)
	s.tweetDomain = domain.NewTweetDomain(s.tweetRepo, s.likeRepo, s.mediaRepo, s.fileStorage)
	s.mediaDomain = domain.NewMediaDomain(s.mediaRepo, s.fileStorage)
}
