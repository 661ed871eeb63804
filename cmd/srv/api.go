package main

import (
	"net/http"

	"github.com/chirp-lab/backend/internal/middleware"
	"github.com/chirp-lab/backend/pkg/prometheus"
	"github.com/chirp-lab/backend/pkg/router"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.loadStorage()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on %s", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	s.logger.Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.Before(middleware.WithStartTime)
	s.router.AddCloser(middleware.Logger)
	s.router.AddCloser(middleware.Prometheus)

	s.router.Handle("/metrics", prometheus.NewHandler())
	if s.configs.Storage.Type == "local" {
		s.router.Static("/images/", s.configs.Storage.Local.ImagesRoot)
	}

	// Every api route except the public profile requires the Api-Key header.
	apiKeyVerifier := middleware.NewAPIKeyVerifier(s.userRepo)
	apiRouter := s.router.Branch()
	apiRouter.Before(apiKeyVerifier.Middleware())
	{
		router.GET(apiRouter, "/api/users/me", s.userDomain.GetMe)
		router.POST(apiRouter, "/api/users/{id}/follow", s.userDomain.Follow)
		router.DELETE(apiRouter, "/api/users/{id}/follow", s.userDomain.Unfollow)

		router.GET(apiRouter, "/api/tweets", s.tweetDomain.GetFeed)
		router.POST(apiRouter, "/api/tweets", s.tweetDomain.Create)
		router.DELETE(apiRouter, "/api/tweets/{id}", s.tweetDomain.Delete)
		router.POST(apiRouter, "/api/tweets/{id}/likes", s.tweetDomain.Like)
		router.DELETE(apiRouter, "/api/tweets/{id}/likes", s.tweetDomain.Unlike)

		router.POST(apiRouter, "/api/medias", s.mediaDomain.Upload)
	}

	// Profiles of other users are readable without a key. Registered after
	// /api/users/me, mux matches routes in registration order.
	publicRouter := s.router.Branch()
	{
		router.GET(publicRouter, "/api/users/{id}", s.userDomain.GetByID)
	}
}
