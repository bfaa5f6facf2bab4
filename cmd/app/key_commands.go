package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/creditcards/cmd/app/commands"
	"github.com/allisson/creditcards/internal/app"
	"github.com/allisson/creditcards/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-encryption-keys",
			Usage: "Generate random ENCRYPTION_KEY and ENCRYPTION_HMAC_KEY values",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateEncryptionKeys(commands.DefaultIO().Writer, cmd.String("format"))
			},
		},
		{
			Name:  "hash-card-number",
			Usage: "Print the lookup hash of a card number using the configured HMAC key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "card-number",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Card number to hash",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				encryptor, err := container.FieldEncryptor()
				if err != nil {
					return err
				}

				return commands.RunHashCardNumber(
					encryptor,
					commands.DefaultIO().Writer,
					cmd.String("card-number"),
				)
			},
		},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}
