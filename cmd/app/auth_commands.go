package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/creditcards/cmd/app/commands"
	authService "github.com/allisson/creditcards/internal/auth/service"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-api-key",
			Usage: "Generate an API key and the API_KEY_HASH value that accepts it",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateAPIKey(
					authService.NewAPIKeyService(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
	}
}
