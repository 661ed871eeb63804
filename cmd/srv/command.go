package main

import "github.com/urfave/cli/v2"

var configFlag = &cli.StringFlag{
	Name:  "config",
	Usage: "Path to the toml configuration file",
	Value: "config.toml",
}

// loadApp creates an app with sane defaults.
func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "Chirp"
	app.Usage = ""
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Flags:       []cli.Flag{configFlag},
			Category:    "Api",
			Description: `Starts the http api serving tweets, medias, likes, and follows.`,
		},
		{
			Action:      server.startMigrate,
			Name:        "migrate",
			Usage:       "Migrate database to the latest version",
			Flags:       []cli.Flag{configFlag},
			Category:    "Database",
			Description: `Applies pending database migrations and seeds demo users.`,
		},
	}

	s.app = app
}
