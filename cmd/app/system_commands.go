package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/creditcards/cmd/app/commands"
	"github.com/allisson/creditcards/internal/app"
	"github.com/allisson/creditcards/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server, the metrics server and the outbox processor",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "path",
					Value: "migrations",
					Usage: "Directory holding the postgresql and mysql migration folders",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)

				return commands.RunMigrations(
					container.Logger(),
					cmd.String("path"),
					cfg.DBDriver,
					cfg.DBConnectionString,
				)
			},
		},
	}
}
