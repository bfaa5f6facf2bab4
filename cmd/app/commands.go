package main

import (
	"github.com/urfave/cli/v3"
)

// commandGroup is a set of subcommands listed under one heading in --help.
type commandGroup struct {
	category string
	commands []*cli.Command
}

// getCommands flattens the command groups, tagging each command with its group's category.
func getCommands(version string) []*cli.Command {
	groups := []commandGroup{
		{category: "operations", commands: getSystemCommands(version)},
		{category: "card data keys", commands: getKeyCommands()},
		{category: "api access", commands: getAuthCommands()},
	}

	var cmds []*cli.Command
	for _, group := range groups {
		for _, cmd := range group.commands {
			cmd.Category = group.category
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
