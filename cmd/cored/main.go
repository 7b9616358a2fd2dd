package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/invarch/weave"
	cored "github.com/invarch/weave/cmd/cored/app"
	"github.com/invarch/weave/commands"
	"github.com/invarch/weave/commands/server"
	"github.com/invarch/weave/x/cores"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/urfave/cli"
)

// addressPrefix is the human readable part of bech32 encoded addresses.
const addressPrefix = "core"

func main() {
	app := cli.NewApp()
	app.Name = "cored"
	app.Usage = "governance cores node"
	app.Version = weave.Version()

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "home",
			Value: filepath.Join(os.ExpandEnv("$HOME"), ".cored"),
			Usage: "directory to store files under `DIR`",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: "logging `LEVEL` [debug|info|error|none]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "init",
			Usage:     "initialize app options in genesis file",
			ArgsUsage: "[ticker] [address]",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "force, f",
					Usage: "overwrite an existing app_state",
				},
			},
			Action: runInit,
		},
		{
			Name:  "start",
			Usage: "run the abci server",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "bind",
					Value: server.DefaultBind,
					Usage: "address server listens on `ADDR`",
				},
				cli.BoolFlag{
					Name:  "debug",
					Usage: "call stack returned on error",
				},
			},
			Action: runStart,
		},
		{
			Name:      "validate",
			Usage:     "check that the app_state of genesis files can be loaded",
			ArgsUsage: "[genesis.json...]",
			Action:    runValidate,
		},
		{
			Name:      "core-address",
			Usage:     "print the account of a core",
			ArgsUsage: "CORE_ID",
			Action:    runCoreAddress,
		},
		{
			Name:      "testgen",
			Usage:     "write example encodings for client tests",
			ArgsUsage: "[DIR]",
			Action:    runTestGen,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func newLogger(c *cli.Context) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).With("module", "cored")
	level, err := log.AllowLevel(c.GlobalString("log-level"))
	if err != nil {
		return nil, err
	}
	return log.NewFilter(logger, level), nil
}

func runInit(c *cli.Context) error {
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	return server.InitCmd(cored.GenInitOptions, logger, c.GlobalString("home"), c.Bool("force"), c.Args())
}

func runStart(c *cli.Context) error {
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	return server.StartCmd(cored.GenerateApp, logger, c.GlobalString("home"), c.String("bind"), c.Bool("debug"))
}

func runValidate(c *cli.Context) error {
	paths := []string(c.Args())
	if len(paths) == 0 {
		paths = []string{server.GenesisFile(c.GlobalString("home"))}
	}
	if err := server.ValidateGenesis(cored.Initializers(), paths); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "genesis valid")
	return nil
}

func runCoreAddress(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected one core id")
	}
	id, err := strconv.ParseUint(c.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid core id: %s", err)
	}
	addr := cores.Account(id)
	b32, err := addr.Bech32(addressPrefix)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "hex:    %s\nbech32: %s\n", addr, b32)
	return nil
}

func runTestGen(c *cli.Context) error {
	return commands.TestGenCmd(cored.Examples(), c.Args().First())
}
