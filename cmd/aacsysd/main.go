package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aacio/aacsys"
	"gopkg.in/urfave/cli.v1"
)

var (
	homeFlag = cli.StringFlag{
		Name:  "home",
		Usage: "directory to store files under",
		Value: filepath.Join(os.ExpandEnv("$HOME"), ".aacsysd"),
	}
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file (default: <home>/config.toml)",
	}
	chainIDFlag = cli.StringFlag{
		Name:  "chain-id",
		Usage: "chain id written to a new genesis file",
		Value: "aacsys-local",
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "aacsysd"
	app.Usage = "AAC system contract node"
	app.Version = aacsys.Version()
	app.Flags = []cli.Flag{homeFlag, configFlag}
	app.Commands = []cli.Command{
		{
			Name:   "init",
			Usage:  "Initialize the configuration and the genesis file",
			Flags:  []cli.Flag{chainIDFlag},
			Action: initCmd,
		},
		{
			Name:      "replay",
			Usage:     "Apply blocks read from a JSON file on top of the stored state",
			ArgsUsage: "<blocks.json>",
			Action:    replayCmd,
		},
		{
			Name:   "state",
			Usage:  "Print the system contract state",
			Action: stateCmd,
		},
		{
			Name:  "version",
			Usage: "Print the app version",
			Action: func(ctx *cli.Context) error {
				fmt.Fprintln(ctx.App.Writer, aacsys.Version())
				return nil
			},
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
